// Package render wires resolved values between graph blocks. It is a
// deliberately small stand-in for a full rendering engine: it pushes variable
// defaults and locals values into the attributes that reference them, with
// provenance, in a single pass. It does not evaluate expressions, order
// resolution, or detect cycles.
package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeroc0d3/iacgraph/internal/block"
	"github.com/zeroc0d3/iacgraph/internal/blocktype"
	"github.com/zeroc0d3/iacgraph/internal/ctxlog"
	"github.com/zeroc0d3/iacgraph/internal/hcl"
)

// Engine resolves cross-block references over a set of parsed blocks.
// The vertex id of a block is its index in the input slice.
type Engine struct {
	blocks []*block.Block
	refs   []hcl.Reference
	byID   map[string]int
}

// NewEngine creates an engine over the given blocks and references.
func NewEngine(blocks []*block.Block, refs []hcl.Reference) *Engine {
	e := &Engine{
		blocks: blocks,
		refs:   refs,
		byID:   make(map[string]int, len(blocks)),
	}
	for i, b := range blocks {
		e.byID[b.ID] = i
	}
	return e
}

// Blocks returns the engine's blocks in vertex order.
func (e *Engine) Blocks() []*block.Block {
	return e.blocks
}

// Resolve pushes every resolvable reference value into its destination
// attribute via Block.UpdateAttribute, threading provenance. Unresolvable
// references (unknown target, no value on the origin) are skipped.
func (e *Engine) Resolve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for _, ref := range e.refs {
		originIdx, originAttr, ok := e.origin(ref.Target)
		if !ok {
			logger.Debug("Skipping unresolvable reference.", "target", ref.Target, "block", ref.BlockID)
			continue
		}
		value, ok := e.blocks[originIdx].Attributes[originAttr]
		if !ok {
			logger.Debug("Origin has no value for reference.", "target", ref.Target, "attribute", originAttr)
			continue
		}
		destIdx, ok := e.byID[ref.BlockID]
		if !ok {
			continue
		}
		if err := e.blocks[destIdx].UpdateAttribute(ref.Attribute, value, originIdx, nil, originAttr, false); err != nil {
			return fmt.Errorf("resolving %s on %s: %w", ref.Attribute, ref.BlockID, err)
		}
	}
	return nil
}

// origin maps a reference target to its origin vertex and the attribute that
// holds the resolved value. Variable targets ("var.name") resolve to the
// variable's default; locals targets ("local.name") to the locals entry.
func (e *Engine) origin(target string) (int, string, bool) {
	switch {
	case strings.HasPrefix(target, "var."):
		name := firstSegment(strings.TrimPrefix(target, "var."))
		for i, b := range e.blocks {
			if b.Kind == blocktype.Variable && b.Name == name {
				return i, "default", true
			}
		}
	case strings.HasPrefix(target, "local."):
		name := firstSegment(strings.TrimPrefix(target, "local."))
		for i, b := range e.blocks {
			if b.Kind == blocktype.Locals && b.Name == name {
				return i, name, true
			}
		}
	}
	return 0, "", false
}

func firstSegment(path string) string {
	if idx := strings.IndexByte(path, '.'); idx >= 0 {
		return path[:idx]
	}
	return path
}

// Export assembles the exported attribute dictionary of every block in
// vertex order.
func (e *Engine) Export(includeHash bool) []map[string]any {
	out := make([]map[string]any, 0, len(e.blocks))
	for _, b := range e.blocks {
		out = append(out, b.ExportAttributes(includeHash))
	}
	return out
}
