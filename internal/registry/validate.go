package registry

import (
	"net/url"
	"regexp"
)

// namespaceRegex matches GIR namespace identifiers such as "GLib" or "GdkPixbuf".
var namespaceRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validateEntry checks that the namespace is an identifier and the URL is
// absolute. Hierarchical URLs need a host; file URLs need a path.
func validateEntry(e Entry) error {
	if e.Namespace == "" {
		return &InvalidEntryError{Entry: e, Reason: "namespace cannot be empty"}
	}
	if !namespaceRegex.MatchString(e.Namespace) {
		return &InvalidEntryError{Entry: e, Reason: "namespace must be an identifier"}
	}
	if e.URL == "" {
		return &InvalidEntryError{Entry: e, Reason: "url cannot be empty"}
	}

	u, err := url.Parse(e.URL)
	if err != nil {
		return &InvalidEntryError{Entry: e, Reason: err.Error()}
	}
	if !u.IsAbs() {
		return &InvalidEntryError{Entry: e, Reason: "url must be absolute"}
	}
	switch u.Scheme {
	case "file":
		if u.Path == "" {
			return &InvalidEntryError{Entry: e, Reason: "file url must have a path"}
		}
	default:
		if u.Host == "" {
			return &InvalidEntryError{Entry: e, Reason: "url must have a host"}
		}
	}
	return nil
}
