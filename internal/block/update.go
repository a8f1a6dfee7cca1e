package block

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zeroc0d3/iacgraph/internal/graphutil"
)

var errEmptyAttributeKey = errors.New("block: attribute key must not be empty")

// UpdateAttribute applies a resolved value to the attribute at key, threading
// the provenance chain accumulated so far.
//
// The breadcrumb chain is extended with (changeOriginID, attributeAtDest)
// unless its last hop already came from the same origin vertex; consecutive
// same-origin hops collapse into one.
//
// Sequence values eagerly materialize their indexed leaves "key.0", "key.1",
// ... so numeric sub-access stays consistent even when the dotted-path walk
// below stops early.
//
// A single-segment key is written directly and always counts as a change,
// even when the new value equals the old one. A dotted key is written from
// the full path down to progressively shorter prefixes, re-wrapping the value
// one map level per step; the root segment itself is never rewritten. During
// a transform step, trimming off a "1" or "2" segment stops the walk at once:
// conditional-expression rewriting encodes ternary branches under those
// segments and writing further levels would corrupt them.
func (b *Block) UpdateAttribute(key string, value any, changeOriginID int, previousBreadcrumbs []Breadcrumb, attributeAtDest string, transformStep bool) error {
	if key == "" {
		return errEmptyAttributeKey
	}

	crumbs := previousBreadcrumbs
	if len(crumbs) == 0 || crumbs[len(crumbs)-1].VertexID != changeOriginID {
		crumbs = append(crumbs, Breadcrumb{VertexID: changeOriginID, AttributeAtDest: attributeAtDest})
	}

	if seq, ok := value.([]any); ok {
		for idx, item := range seq {
			b.Attributes[key+"."+strconv.Itoa(idx)] = item
		}
	}

	parts := strings.Split(key, ".")
	if len(parts) == 1 {
		b.Attributes[key] = value
		b.recordChange(key, crumbs)
		return nil
	}

	current := value
	for i := range parts {
		trimmed := graphutil.JoinTrimmed(".", parts, i)
		if !strings.Contains(trimmed, ".") {
			continue
		}
		b.Attributes[trimmed] = current
		last := parts[len(parts)-1-i]
		if transformStep && (last == "1" || last == "2") {
			return nil
		}
		current = map[string]any{last: current}
		b.recordChange(trimmed, crumbs)
	}
	return nil
}

func (b *Block) recordChange(key string, crumbs []Breadcrumb) {
	b.changedAttributes[key] = crumbs
	b.breadcrumbs[key] = append([]Breadcrumb(nil), crumbs...)
}
