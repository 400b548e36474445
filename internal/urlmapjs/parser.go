package urlmapjs

import (
	"fmt"
	"io"

	"github.com/specialistvlad/urlmap/internal/config"
)

// VariableName is the name gi-docgen reads the table from.
const VariableName = "baseURLs"

type parser struct {
	lex *lexer
	tok token
}

// Parse reads a urlmap.js document. filename is used in diagnostics and in
// the Source of each definition.
func Parse(r io.Reader, filename string) (*config.Model, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	p := &parser{lex: newLexer(src, filename)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseFile()
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, p.lex.errorf(tok.Pos, "expected %s, found %s", kind, describe(tok))
	}
	return tok, p.advance()
}

func describe(tok token) string {
	switch tok.Kind {
	case tokIdent:
		return fmt.Sprintf("identifier %q", tok.Value)
	case tokString:
		return fmt.Sprintf("string %q", tok.Value)
	case tokOther:
		return fmt.Sprintf("'%s'", tok.Value)
	}
	return tok.Kind.String()
}

// parseFile handles `[var|let|const] baseURLs = [ pair, ... ] [;]`.
func (p *parser) parseFile() (*config.Model, error) {
	if p.tok.Kind == tokIdent {
		switch p.tok.Value {
		case "var", "let", "const":
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	if name.Value != VariableName {
		return nil, p.lex.errorf(name.Pos, "expected assignment to %s, found %q", VariableName, name.Value)
	}
	if _, err := p.expect(tokAssign); err != nil {
		return nil, err
	}

	model, err := p.parseTable()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind == tokSemicolon {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	return model, nil
}

func (p *parser) parseTable() (*config.Model, error) {
	if _, err := p.expect(tokLBracket); err != nil {
		return nil, err
	}

	model := &config.Model{}
	for p.tok.Kind != tokRBracket {
		def, err := p.parsePair()
		if err != nil {
			return nil, err
		}
		model.Namespaces = append(model.Namespaces, def)

		if p.tok.Kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(tokRBracket); err != nil {
		return nil, err
	}
	return model, nil
}

// parsePair handles `[ 'Namespace', 'URL' [,] ]`.
func (p *parser) parsePair() (*config.NamespaceDefinition, error) {
	open, err := p.expect(tokLBracket)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(tokString)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma); err != nil {
		return nil, err
	}
	url, err := p.expect(tokString)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind == tokComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.tok.Kind != tokRBracket {
		return nil, p.lex.errorf(p.tok.Pos, "namespace entry must have exactly two elements, found %s", describe(p.tok))
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return &config.NamespaceDefinition{
		Name:   name.Value,
		URL:    url.Value,
		Source: fmt.Sprintf("%s:%d", p.lex.filename, open.Pos.Line),
	}, nil
}
