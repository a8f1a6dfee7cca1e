package block

// Breadcrumb is one hop in an attribute's provenance chain: the graph vertex
// whose resolution produced the change, and the attribute path on that
// vertex the value came from. Breadcrumbs are immutable once appended.
type Breadcrumb struct {
	VertexID        int    `json:"vertex_id" yaml:"vertex_id"`
	AttributeAtDest string `json:"attribute_at_dest,omitempty" yaml:"attribute_at_dest,omitempty"`
}
