package registry

// Entry associates a namespace with the base URL of its documentation.
type Entry struct {
	Namespace string
	URL       string
	// Description is a human-readable summary of the namespace. Optional.
	Description string
	// Source is where the entry was declared, e.g. "urlmap.hcl:12". Optional.
	Source string
}

// Registry is an immutable, ordered namespace-to-URL table.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// Builder accumulates entries and produces a Registry. A Builder is not safe
// for concurrent use.
type Builder struct {
	entries []Entry
	index   map[string]int
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Register adds a namespace with its base URL.
func (b *Builder) Register(namespace, url string) error {
	return b.RegisterEntry(Entry{Namespace: namespace, URL: url})
}

// RegisterEntry adds an entry. It fails with *InvalidEntryError when the entry
// is malformed and with *DuplicateNamespaceError when the namespace is already
// present; in both cases the builder is left unchanged.
func (b *Builder) RegisterEntry(e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	if i, exists := b.index[e.Namespace]; exists {
		return &DuplicateNamespaceError{Existing: b.entries[i], Rejected: e}
	}
	b.index[e.Namespace] = len(b.entries)
	b.entries = append(b.entries, e)
	return nil
}

// Build returns a Registry holding a snapshot of the entries registered so far.
func (b *Builder) Build() *Registry {
	r := &Registry{
		entries: make([]Entry, len(b.entries)),
		index:   make(map[string]int, len(b.index)),
	}
	copy(r.entries, b.entries)
	for k, v := range b.index {
		r.index[k] = v
	}
	return r
}

// New builds a Registry from entries, stopping at the first failure.
func New(entries ...Entry) (*Registry, error) {
	b := NewBuilder()
	for _, e := range entries {
		if err := b.RegisterEntry(e); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Resolve returns the base URL registered for namespace, exactly as it was
// registered.
func (r *Registry) Resolve(namespace string) (string, error) {
	e, ok := r.Lookup(namespace)
	if !ok {
		return "", &UnknownNamespaceError{Namespace: namespace, Suggestion: r.suggest(namespace)}
	}
	return e.URL, nil
}

// Lookup returns the entry for namespace and whether it exists.
func (r *Registry) Lookup(namespace string) (Entry, bool) {
	i, ok := r.index[namespace]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of all entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Namespaces returns the registered namespaces in registration order.
func (r *Registry) Namespaces() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Namespace)
	}
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
