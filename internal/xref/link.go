package xref

import (
	"fmt"
	"regexp"
	"strings"
)

// Resolver maps a namespace to its documentation base URL.
// *registry.Registry implements it.
type Resolver interface {
	Resolve(namespace string) (string, error)
}

// Link returns the absolute URL of ref's page.
func Link(res Resolver, ref Ref) (string, error) {
	base, err := res.Resolve(ref.Namespace)
	if err != nil {
		return "", fmt.Errorf("cannot link %s: %w", ref, err)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + ref.Page(), nil
}

// LinkString parses raw and links it.
func LinkString(res Resolver, raw string) (string, error) {
	ref, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Link(res, ref)
}

var refRegex = regexp.MustCompile(`\[(` + kindAlternation() + `)@([^\]\s]+)\]`)

func kindAlternation() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, "|")
}

// Expand rewrites each cross-reference in text as a Markdown link
// "[Target](url)". References that cannot be parsed or resolved are kept
// verbatim and reported in errs, in order of appearance.
func Expand(text string, res Resolver) (out string, errs []error) {
	var b strings.Builder
	last := 0
	for _, loc := range refRegex.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		b.WriteString(text[last:loc[0]])
		last = loc[1]

		ref, err := Parse(raw)
		if err != nil {
			errs = append(errs, err)
			b.WriteString(raw)
			continue
		}
		url, err := Link(res, ref)
		if err != nil {
			errs = append(errs, err)
			b.WriteString(raw)
			continue
		}
		fmt.Fprintf(&b, "[%s](%s)", ref.Target(), url)
	}
	b.WriteString(text[last:])
	return b.String(), errs
}
