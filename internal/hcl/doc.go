// Package hcl loads namespace tables written in HCL.
//
//	locals {
//	  gtk_docs = "https://docs.gtk.org"
//	}
//
//	namespace "GLib" {
//	  url         = "${local.gtk_docs}/glib/"
//	  description = "Low-level core library"
//	}
//
// Locals are evaluated first and exposed as local.<name> when the namespace
// attributes are evaluated. A handful of string functions (lower, upper,
// format, join, trimsuffix) are available in every expression.
package hcl
