package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zeroc0d3/iacgraph/internal/block"
	"github.com/zeroc0d3/iacgraph/internal/blocktype"
	"github.com/zeroc0d3/iacgraph/internal/ctxlog"
	"github.com/zeroc0d3/iacgraph/internal/fsutil"
)

// Reference records an attribute whose expression refers to another block,
// e.g. the "instance_type" attribute of "aws_instance.web" targeting
// "var.instance_type". References are wired by the rendering layer.
type Reference struct {
	BlockID   string
	Attribute string
	Target    string
}

// Loader parses Terraform-style configuration into graph blocks.
type Loader struct{}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// terraformSchema covers the top-level Terraform block grammar.
var terraformSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "resource", LabelNames: []string{"type", "name"}},
		{Type: "data", LabelNames: []string{"type", "name"}},
		{Type: "variable", LabelNames: []string{"name"}},
		{Type: "module", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
		{Type: "provider", LabelNames: []string{"name"}},
		{Type: "locals", LabelNames: []string{}},
		{Type: "terraform", LabelNames: []string{}},
	},
}

// Load parses every .tf file under the given paths. It returns the parsed
// blocks in file order together with the cross-block references found in
// their attribute expressions.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*block.Block, []Reference, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.findTerraformFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered Terraform files.", "count", len(files))

	parser := hclparse.NewParser()
	var blocks []*block.Block
	var refs []Reference

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}
		fileBlocks, fileRefs := l.translateBody(ctx, hclFile.Body, file)
		blocks = append(blocks, fileBlocks...)
		refs = append(refs, fileRefs...)
	}

	logger.Debug("Loading complete.", "files", len(files), "blocks", len(blocks), "references", len(refs))
	return blocks, refs, nil
}

// LoadSource parses a single in-memory configuration document. The filename
// is used for diagnostics and block source paths only.
func (l *Loader) LoadSource(ctx context.Context, src []byte, filename string) ([]*block.Block, []Reference, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	blocks, refs := l.translateBody(ctx, hclFile.Body, filename)
	return blocks, refs, nil
}

// findTerraformFiles resolves the given paths into a deduplicated list of
// .tf files. A configured path that does not exist is not an error.
func (l *Loader) findTerraformFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	add := func(file string) {
		if _, ok := seen[file]; !ok {
			all = append(all, file)
			seen[file] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if info.IsDir() {
			files, err := fsutil.FindFilesByExtension(path, ".tf")
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				add(f)
			}
		} else if filepath.Ext(path) == ".tf" {
			add(path)
		}
	}
	return all, nil
}

func (l *Loader) translateBody(ctx context.Context, body hcl.Body, filename string) ([]*block.Block, []Reference) {
	logger := ctxlog.FromContext(ctx)

	// PartialContent tolerates vendor-specific top-level blocks outside the
	// schema instead of failing the whole file.
	content, _, _ := body.PartialContent(terraformSchema)

	var blocks []*block.Block
	var refs []Reference

	for _, raw := range content.Blocks {
		kind, err := blocktype.Parse(raw.Type)
		if err != nil {
			logger.Debug("Skipping unknown block type.", "type", raw.Type, "file", filename)
			continue
		}

		attrs, attrRefs := l.extractAttributes(ctx, raw.Body)

		if kind == blocktype.Locals {
			// Each locals entry is its own graph vertex.
			names := make([]string, 0, len(attrs))
			for name := range attrs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				cfg := map[string]any{name: attrs[name]}
				blocks = append(blocks, block.New(name, cfg, filename, kind, map[string]any{name: attrs[name]}, name, ""))
			}
			for _, ar := range attrRefs {
				refs = append(refs, Reference{BlockID: ar.attribute, Attribute: ar.attribute, Target: ar.target})
			}
			continue
		}

		id := blockID(kind, raw)
		blocks = append(blocks, block.New(blockName(kind, raw), attrs, filename, kind, attrs, id, ""))
		for _, ar := range attrRefs {
			refs = append(refs, Reference{BlockID: id, Attribute: ar.attribute, Target: ar.target})
		}
	}

	return blocks, refs
}

// attrRef is an intra-file reference before its owning block id is known.
type attrRef struct {
	attribute string
	target    string
}

// extractAttributes evaluates every literal attribute of a block body into
// native Go values. Attributes whose expressions reference other blocks are
// left out of the value map and reported as references instead.
func (l *Loader) extractAttributes(ctx context.Context, body hcl.Body) (map[string]any, []attrRef) {
	logger := ctxlog.FromContext(ctx)

	// Nested blocks produce diagnostics here; the attributes still decode.
	attrs, _ := body.JustAttributes()

	values := make(map[string]any, len(attrs))
	var refs []attrRef

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() || !val.IsWhollyKnown() {
			for _, traversal := range attr.Expr.Variables() {
				// A bare root name (e.g. the type keyword "string") does not
				// address another block.
				if target := traversalString(traversal); strings.Contains(target, ".") {
					refs = append(refs, attrRef{attribute: name, target: target})
				}
			}
			continue
		}
		native, err := ctyToNative(val)
		if err != nil {
			logger.Debug("Skipping unconvertible attribute.", "attribute", name, "error", err)
			continue
		}
		values[name] = native
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].attribute != refs[j].attribute {
			return refs[i].attribute < refs[j].attribute
		}
		return refs[i].target < refs[j].target
	})
	return values, refs
}

// traversalString renders a variable traversal as a dotted path, e.g.
// "var.instance_type". Index steps are ignored; only the attribute chain
// identifies the referenced block.
func traversalString(traversal hcl.Traversal) string {
	var sb strings.Builder
	for _, step := range traversal {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			sb.WriteString(s.Name)
		case hcl.TraverseAttr:
			sb.WriteString(".")
			sb.WriteString(s.Name)
		}
	}
	return sb.String()
}

func blockName(kind blocktype.BlockType, raw *hcl.Block) string {
	if len(raw.Labels) == 0 {
		return kind.String()
	}
	return raw.Labels[len(raw.Labels)-1]
}

func blockID(kind blocktype.BlockType, raw *hcl.Block) string {
	switch kind {
	case blocktype.Resource, blocktype.Data:
		return raw.Labels[0] + "." + raw.Labels[1]
	case blocktype.Module:
		return "module." + raw.Labels[0]
	case blocktype.Output:
		return "output." + raw.Labels[0]
	case blocktype.Provider:
		return "provider." + raw.Labels[0]
	case blocktype.Variable:
		return raw.Labels[0]
	default:
		return kind.String()
	}
}
