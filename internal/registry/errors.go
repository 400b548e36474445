package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateNamespace matches any *DuplicateNamespaceError.
	ErrDuplicateNamespace = errors.New("duplicate namespace")
	// ErrUnknownNamespace matches any *UnknownNamespaceError.
	ErrUnknownNamespace = errors.New("unknown namespace")
	// ErrInvalidEntry matches any *InvalidEntryError.
	ErrInvalidEntry = errors.New("invalid entry")
)

// DuplicateNamespaceError is returned when a namespace is registered more
// than once. Existing is the entry that was registered first.
type DuplicateNamespaceError struct {
	Existing Entry
	Rejected Entry
}

func (e *DuplicateNamespaceError) Error() string {
	msg := fmt.Sprintf("namespace %q is already registered", e.Rejected.Namespace)
	if e.Existing.Source != "" {
		msg += fmt.Sprintf(" at %s", e.Existing.Source)
	}
	if e.Rejected.Source != "" {
		msg += fmt.Sprintf(", duplicate declared at %s", e.Rejected.Source)
	}
	return msg
}

func (e *DuplicateNamespaceError) Unwrap() error { return ErrDuplicateNamespace }

// UnknownNamespaceError is returned by Resolve for a namespace that was
// never registered. Suggestion holds the closest known namespace, if any.
type UnknownNamespaceError struct {
	Namespace  string
	Suggestion string
}

func (e *UnknownNamespaceError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown namespace %q; did you mean %q?", e.Namespace, e.Suggestion)
	}
	return fmt.Sprintf("unknown namespace %q", e.Namespace)
}

func (e *UnknownNamespaceError) Unwrap() error { return ErrUnknownNamespace }

// InvalidEntryError is returned when an entry fails validation on
// registration.
type InvalidEntryError struct {
	Entry  Entry
	Reason string
}

func (e *InvalidEntryError) Error() string {
	if e.Entry.Source != "" {
		return fmt.Sprintf("invalid entry for namespace %q at %s: %s", e.Entry.Namespace, e.Entry.Source, e.Reason)
	}
	return fmt.Sprintf("invalid entry for namespace %q: %s", e.Entry.Namespace, e.Reason)
}

func (e *InvalidEntryError) Unwrap() error { return ErrInvalidEntry }
