// Package hcl parses Terraform-style configuration files into graph blocks.
//
// The loader walks the given paths for .tf files, decodes every top-level
// block the Terraform grammar knows (resource, data, variable, module,
// output, provider, locals, terraform) and converts literal attribute
// expressions into native Go values. Attribute expressions that refer to
// other blocks are not evaluated; they are surfaced as Reference records for
// the rendering layer to wire.
package hcl
