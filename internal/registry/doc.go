// Package registry holds the namespace-to-URL table used to resolve
// cross-references into external API documentation.
//
// A Registry is produced once by a Builder during startup and is read-only
// afterwards, so it can be shared freely between goroutines. Every namespace
// maps to exactly one base URL: registering a namespace twice fails with a
// DuplicateNamespaceError, and resolving a namespace that was never registered
// fails with an UnknownNamespaceError instead of falling back to a default.
package registry
