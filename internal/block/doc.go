// Package block models a single vertex in the configuration dependency
// graph: one parsed resource, data source, variable, module, output, locals
// set, or provider.
//
// A Block owns two views of its configuration: the raw nested form, deep
// copied at construction and immutable afterwards, and a flat dot-path keyed
// attribute index kept structurally consistent with the nested form by the
// flatten codec. The rendering engine mutates the index through
// UpdateAttribute as it resolves cross-block references; every mutation
// threads a provenance chain of breadcrumbs so the final state remains fully
// auditable.
//
// Blocks are not safe for concurrent mutation. The engine that owns the
// graph traversal serializes writes; ExportAttributes is a pure read.
package block
