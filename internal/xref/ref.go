package xref

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the fragment before '@' in a cross-reference.
type Kind string

const (
	KindAlias    Kind = "alias"
	KindCallback Kind = "callback"
	KindClass    Kind = "class"
	KindConst    Kind = "const"
	KindCtor     Kind = "ctor"
	KindEnum     Kind = "enum"
	KindError    Kind = "error"
	KindFlags    Kind = "flags"
	KindFunc     Kind = "func"
	KindIface    Kind = "iface"
	KindMethod   Kind = "method"
	KindProperty Kind = "property"
	KindSignal   Kind = "signal"
	KindStruct   Kind = "struct"
	KindVfunc    Kind = "vfunc"
)

// Kinds lists every supported kind.
var Kinds = []Kind{
	KindAlias, KindCallback, KindClass, KindConst, KindCtor, KindEnum, KindError,
	KindFlags, KindFunc, KindIface, KindMethod, KindProperty, KindSignal, KindStruct, KindVfunc,
}

var (
	typeTargetRegex     = regexp.MustCompile(`^([A-Za-z_]\w*)\.([A-Za-z_]\w*)$`)
	memberTargetRegex   = regexp.MustCompile(`^([A-Za-z_]\w*)\.([A-Za-z_]\w*)\.([A-Za-z_]\w*)$`)
	propertyTargetRegex = regexp.MustCompile(`^([A-Za-z_]\w*)\.([A-Za-z_]\w*):([A-Za-z_][\w-]*)$`)
	signalTargetRegex   = regexp.MustCompile(`^([A-Za-z_]\w*)\.([A-Za-z_]\w*)::([A-Za-z_][\w-]*)$`)
)

// Ref is a parsed cross-reference.
type Ref struct {
	Kind      Kind
	Namespace string
	// Type is the owning type for members (methods, properties, ...) and
	// type-scoped functions. Empty otherwise.
	Type string
	// Name is the type name for type kinds, the member name otherwise.
	Name string
}

// Parse reads a cross-reference in either bracketed ("[class@Gtk.Widget]")
// or bare ("class@Gtk.Widget") form.
func Parse(raw string) (Ref, error) {
	s := raw
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}

	kindStr, target, found := strings.Cut(s, "@")
	if !found {
		return Ref{}, fmt.Errorf("invalid reference %q: missing '@'", raw)
	}
	if target == "" {
		return Ref{}, fmt.Errorf("invalid reference %q: empty target", raw)
	}

	kind := Kind(kindStr)
	switch kind {
	case KindAlias, KindCallback, KindClass, KindConst, KindEnum, KindError, KindFlags, KindIface, KindStruct:
		if m := typeTargetRegex.FindStringSubmatch(target); m != nil {
			return Ref{Kind: kind, Namespace: m[1], Name: m[2]}, nil
		}
		return Ref{}, fmt.Errorf("invalid reference %q: %s targets must look like Namespace.Name", raw, kind)

	case KindCtor, KindMethod, KindVfunc:
		if m := memberTargetRegex.FindStringSubmatch(target); m != nil {
			return Ref{Kind: kind, Namespace: m[1], Type: m[2], Name: m[3]}, nil
		}
		return Ref{}, fmt.Errorf("invalid reference %q: %s targets must look like Namespace.Type.name", raw, kind)

	case KindFunc:
		if m := typeTargetRegex.FindStringSubmatch(target); m != nil {
			return Ref{Kind: kind, Namespace: m[1], Name: m[2]}, nil
		}
		if m := memberTargetRegex.FindStringSubmatch(target); m != nil {
			return Ref{Kind: kind, Namespace: m[1], Type: m[2], Name: m[3]}, nil
		}
		return Ref{}, fmt.Errorf("invalid reference %q: func targets must look like Namespace.name or Namespace.Type.name", raw)

	case KindProperty:
		if m := propertyTargetRegex.FindStringSubmatch(target); m != nil {
			return Ref{Kind: kind, Namespace: m[1], Type: m[2], Name: m[3]}, nil
		}
		return Ref{}, fmt.Errorf("invalid reference %q: property targets must look like Namespace.Type:name", raw)

	case KindSignal:
		if m := signalTargetRegex.FindStringSubmatch(target); m != nil {
			return Ref{Kind: kind, Namespace: m[1], Type: m[2], Name: m[3]}, nil
		}
		return Ref{}, fmt.Errorf("invalid reference %q: signal targets must look like Namespace.Type::name", raw)
	}

	return Ref{}, fmt.Errorf("invalid reference %q: unsupported kind %q", raw, kindStr)
}

// Target renders the part after '@', e.g. "Gtk.Widget:visible".
func (r Ref) Target() string {
	switch {
	case r.Type == "":
		return r.Namespace + "." + r.Name
	case r.Kind == KindProperty:
		return r.Namespace + "." + r.Type + ":" + r.Name
	case r.Kind == KindSignal:
		return r.Namespace + "." + r.Type + "::" + r.Name
	default:
		return r.Namespace + "." + r.Type + "." + r.Name
	}
}

// String renders the bracketed form.
func (r Ref) String() string {
	return "[" + string(r.Kind) + "@" + r.Target() + "]"
}

// Page returns the documentation page for the reference, relative to the
// namespace base URL.
func (r Ref) Page() string {
	if r.Type == "" {
		return fmt.Sprintf("%s.%s.html", r.Kind, r.Name)
	}
	if r.Kind == KindFunc {
		return fmt.Sprintf("type_func.%s.%s.html", r.Type, r.Name)
	}
	return fmt.Sprintf("%s.%s.%s.html", r.Kind, r.Type, r.Name)
}
