// Package config defines the format-agnostic model produced by loading
// namespace tables, along with the Loader and FileLoader interfaces that
// format-specific packages implement.
//
// The Model is the single input to registry.FromModel. Concrete loaders for
// HCL, YAML and urlmap.js live in their own packages.
package config
