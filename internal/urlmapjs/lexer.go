package urlmapjs

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokAssign
	tokLBracket
	tokRBracket
	tokComma
	tokSemicolon
	tokOther
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	case tokAssign:
		return "'='"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokComma:
		return "','"
	case tokSemicolon:
		return "';'"
	}
	return "token"
}

// pos is a 1-based line and column.
type pos struct {
	Line int
	Col  int
}

type token struct {
	Kind  tokenKind
	Value string
	Pos   pos
}

// lexer narrows the JavaScript token stream down to the tokens a urlmap.js
// file is made of. Whitespace and comments are dropped.
type lexer struct {
	filename string
	js       *js.Lexer
	line     int
	col      int
}

func newLexer(src []byte, filename string) *lexer {
	return &lexer{
		filename: filename,
		js:       js.NewLexer(parse.NewInputBytes(src)),
		line:     1,
		col:      1,
	}
}

func (l *lexer) errorf(p pos, format string, args ...any) error {
	return fmt.Errorf("%s:%d:%d: %s", l.filename, p.Line, p.Col, fmt.Sprintf(format, args...))
}

func (l *lexer) here() pos {
	return pos{Line: l.line, Col: l.col}
}

// consume moves the position past text.
func (l *lexer) consume(text []byte) {
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		if r == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
}

// next returns the following token.
func (l *lexer) next() (token, error) {
	for {
		start := l.here()
		tt, text := l.js.Next()
		if tt == js.ErrorToken {
			err := l.js.Err()
			if errors.Is(err, io.EOF) {
				return token{Kind: tokEOF, Pos: start}, nil
			}
			var perr *parse.Error
			if errors.As(err, &perr) {
				return token{}, l.errorf(start, "%s", perr.Message)
			}
			return token{}, l.errorf(start, "%v", err)
		}
		l.consume(text)

		switch tt {
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		case js.StringToken:
			s, offset, err := unquote(text)
			if err != nil {
				return token{}, l.errorf(pos{Line: start.Line, Col: start.Col + offset}, "%v", err)
			}
			return token{Kind: tokString, Value: s, Pos: start}, nil
		case js.EqToken:
			return token{Kind: tokAssign, Pos: start}, nil
		case js.OpenBracketToken:
			return token{Kind: tokLBracket, Pos: start}, nil
		case js.CloseBracketToken:
			return token{Kind: tokRBracket, Pos: start}, nil
		case js.CommaToken:
			return token{Kind: tokComma, Pos: start}, nil
		case js.SemicolonToken:
			return token{Kind: tokSemicolon, Pos: start}, nil
		}

		if js.IsIdentifierStart(text) {
			return token{Kind: tokIdent, Value: string(text), Pos: start}, nil
		}
		return token{Kind: tokOther, Value: string(text), Pos: start}, nil
	}
}

// unquote decodes a quoted string literal. On failure offset is the rune
// offset of the offending character from the opening quote.
func unquote(lit []byte) (s string, offset int, err error) {
	body := []rune(string(lit[1 : len(lit)-1]))
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		r := body[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		if i+1 >= len(body) {
			return "", i + 2, errors.New("unterminated escape sequence")
		}
		i++
		switch esc := body[i]; esc {
		case '\\', '\'', '"', '/':
			b.WriteRune(esc)
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		default:
			return "", i + 1, fmt.Errorf("unsupported escape sequence \\%c", esc)
		}
	}
	return b.String(), 0, nil
}
