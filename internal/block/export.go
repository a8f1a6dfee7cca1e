package block

import (
	"strings"

	"github.com/zeroc0d3/iacgraph/internal/blocktype"
	"github.com/zeroc0d3/iacgraph/internal/customattr"
	"github.com/zeroc0d3/iacgraph/internal/flatten"
	"github.com/zeroc0d3/iacgraph/internal/graphutil"
)

// ExportAttributes assembles the externally visible attribute dictionary:
// block metadata, the flattened origin attributes, module linkage when
// present, the provenance trails, and (optionally) a deterministic content
// hash. The sorted list of changed attribute names participates in the hash
// but is stripped from the returned dictionary.
//
// ExportAttributes is a pure read: repeated calls on identical block state
// yield identical output.
func (b *Block) ExportAttributes(includeHash bool) map[string]any {
	base := b.baseAttributes()
	b.mergeOriginAttributes(base)

	if b.Module != nil {
		base[customattr.ModuleDependency] = b.Module.Dependency
		base[customattr.ModuleDependencyNum] = b.Module.DependencyNum
	}

	if len(b.changedAttributes) > 0 {
		// Hash input only; removed again below.
		base[customattr.ChangedAttributes] = b.ChangedAttributeKeys()
	}

	if len(b.breadcrumbs) > 0 {
		base[customattr.RenderingBreadcrumbs] = b.Breadcrumbs()
	}

	if includeHash {
		base[customattr.Hash] = graphutil.CalculateHash(base)
	}

	if b.Kind == blocktype.Data {
		// Synthesized after the hash so it never participates in it.
		base[customattr.ResourceType] = "data." + strings.SplitN(b.ID, ".", 2)[0]
	}

	delete(base, customattr.ChangedAttributes)
	return base
}

// Hash runs a full export and returns the content hash field.
func (b *Block) Hash() string {
	exported := b.ExportAttributes(true)
	if h, ok := exported[customattr.Hash].(string); ok {
		return h
	}
	return ""
}

func (b *Block) baseAttributes() map[string]any {
	return map[string]any{
		customattr.BlockName: b.Name,
		customattr.BlockType: b.Kind.String(),
		customattr.FilePath:  b.Path,
		customattr.Config:    graphutil.DeepCopyConfig(b.RawConfig),
		customattr.Label:     b.String(),
		customattr.ID:        b.ID,
		customattr.Source:    b.Source,
	}
}

// mergeOriginAttributes folds the stored attribute index into base. Singleton
// sequences are unwrapped, the reserved self-reference key is renamed, and
// container values are re-expanded through the codec so the exported view
// always presents fully flattened structures.
func (b *Block) mergeOriginAttributes(base map[string]any) {
	for key, value := range b.Attributes {
		value = flatten.UnwrapSingleton(value)
		if key == customattr.SelfReference {
			base[customattr.SelfReferenceAlias] = value
			continue
		}
		switch value.(type) {
		case map[string]any, []any:
			for k, v := range flatten.Flatten(key, value) {
				base[k] = v
			}
		default:
			base[key] = value
		}
	}
}
