// Package urlmapjs reads and writes the urlmap.js file consumed by
// gi-docgen:
//
//	// A map between namespaces and base URLs for their online documentation
//	baseURLs = [
//	    [ 'GLib', 'https://docs.gtk.org/glib/' ],
//	    [ 'Gtk', 'https://docs.gtk.org/gtk3/' ],
//	]
//
// Only this assignment is understood; it is not a JavaScript parser.
package urlmapjs
