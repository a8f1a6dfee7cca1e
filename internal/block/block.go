package block

import (
	"fmt"
	"sort"

	"github.com/zeroc0d3/iacgraph/internal/blocktype"
	"github.com/zeroc0d3/iacgraph/internal/flatten"
	"github.com/zeroc0d3/iacgraph/internal/graphutil"
)

// ModuleLink carries the linkage details of a block instantiated from a
// reusable module. Plain blocks have no ModuleLink.
type ModuleLink struct {
	Dependency    string
	DependencyNum int
}

// Block is a single vertex in the configuration dependency graph.
type Block struct {
	// Name is the human-readable local name of the block.
	Name string
	// RawConfig is a deep-copied snapshot of the parsed configuration.
	// It is never mutated after construction.
	RawConfig map[string]any
	// Path is the file the block was parsed from.
	Path string
	// Kind is the block's kind from the closed enumeration.
	Kind blocktype.BlockType
	// Attributes is the flat, dot-path keyed attribute index. For every leaf
	// key "a.b.c" the entries "a.b" and "a" exist as well, holding nested
	// containers consistent with all deeper leaves under the same prefix.
	Attributes map[string]any
	// ID uniquely identifies the block within the graph,
	// e.g. "aws_instance.web".
	ID string
	// Source names the origin of the block within a scan.
	Source string

	// Module holds module linkage for blocks instantiated from a reusable
	// module; nil otherwise.
	Module *ModuleLink

	// changedAttributes records the provenance chain of every attribute key
	// mutated after construction. It only ever influences the content hash
	// and is never exported verbatim.
	changedAttributes map[string][]Breadcrumb
	// breadcrumbs is the externally visible audit trail, kept separate from
	// changedAttributes so internal sequencing is not over-exposed.
	breadcrumbs map[string][]Breadcrumb
}

// New constructs a block from a parsed configuration section. The config map
// is deep copied; attributes whose value is a map, or a non-empty sequence
// starting with a map, are expanded through the flatten codec so that nested
// leaves become addressable by dot-path. The block takes ownership of the
// attributes map. No hash is computed at construction.
func New(name string, config map[string]any, path string, kind blocktype.BlockType, attributes map[string]any, id string, source string) *Block {
	if attributes == nil {
		attributes = make(map[string]any)
	}
	b := &Block{
		Name:              name,
		RawConfig:         graphutil.DeepCopyConfig(config),
		Path:              path,
		Kind:              kind,
		Attributes:        attributes,
		ID:                id,
		Source:            source,
		changedAttributes: make(map[string][]Breadcrumb),
		breadcrumbs:       make(map[string][]Breadcrumb),
	}

	inner := make(map[string]any)
	for key, value := range b.Attributes {
		if flatten.ShouldFlatten(value) {
			for k, v := range flatten.Flatten(key, value) {
				inner[k] = v
			}
		}
	}
	for k, v := range inner {
		b.Attributes[k] = v
	}

	return b
}

// String returns the block's human-readable label, e.g. "resource: web".
func (b *Block) String() string {
	return fmt.Sprintf("%s: %s", b.Kind, b.Name)
}

// Summary is the minimal view of a block used for listing and logging.
type Summary struct {
	Kind blocktype.BlockType `json:"type" yaml:"type"`
	Name string              `json:"name" yaml:"name"`
	Path string              `json:"path" yaml:"path"`
}

// Summary returns the block's minimal listing view.
func (b *Block) Summary() Summary {
	return Summary{Kind: b.Kind, Name: b.Name, Path: b.Path}
}

// Breadcrumbs returns a copy of the block's exportable provenance trails,
// keyed by attribute dot-path.
func (b *Block) Breadcrumbs() map[string][]Breadcrumb {
	out := make(map[string][]Breadcrumb, len(b.breadcrumbs))
	for key, chain := range b.breadcrumbs {
		out[key] = append([]Breadcrumb(nil), chain...)
	}
	return out
}

// ChangedAttributeKeys returns the sorted names of every attribute mutated
// since construction.
func (b *Block) ChangedAttributeKeys() []string {
	keys := make([]string, 0, len(b.changedAttributes))
	for key := range b.changedAttributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
