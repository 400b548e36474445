package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a namespace table file.
type fileRoot struct {
	Locals     []*localsBlock    `hcl:"locals,block"`
	Namespaces []*namespaceBlock `hcl:"namespace,block"`
}

// localsBlock holds free-form attributes that are evaluated before namespaces.
type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// namespaceBlock represents a `namespace "Name" { ... }` block. Its body is
// decoded against namespaceSchema so that a missing url is reported by HCL.
type namespaceBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

var namespaceSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "url", Required: true},
		{Name: "description"},
	},
}
