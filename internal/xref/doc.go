// Package xref turns gi-docgen cross-references such as [class@Gtk.Widget]
// or [method@Gtk.Widget.show] into URLs inside another namespace's
// published documentation.
//
// The base URL of a namespace comes from a Resolver, normally a
// *registry.Registry; the page name follows gi-docgen's layout
// (class.Widget.html, method.Widget.show.html, ...).
package xref
