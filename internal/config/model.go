package config

// Model is the unified, format-agnostic result of loading one or more
// configuration files.
type Model struct {
	Namespaces []*NamespaceDefinition
}

// NamespaceDefinition is a single namespace declaration as read from a file.
type NamespaceDefinition struct {
	Name        string
	URL         string
	Description string
	// Source is "file:line" of the declaration, used in diagnostics.
	Source string
}

// Merge appends other's definitions after m's, preserving order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Namespaces = append(m.Namespaces, other.Namespaces...)
}
