// Package graphutil holds the small collaborator primitives the graph block
// core consumes: deterministic content hashing over canonical JSON, trimmed
// dot-path joining, and deep copying of parsed configuration values.
package graphutil
