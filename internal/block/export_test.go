package block

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeroc0d3/iacgraph/internal/blocktype"
	"github.com/zeroc0d3/iacgraph/internal/customattr"
	"github.com/zeroc0d3/iacgraph/internal/graphutil"
)

func TestExportAttributesBaseMetadata(t *testing.T) {
	b := newTestBlock(map[string]any{"ami": "ami-1"})

	exported := b.ExportAttributes(false)

	assert.Equal(t, "web", exported[customattr.BlockName])
	assert.Equal(t, "resource", exported[customattr.BlockType])
	assert.Equal(t, "main.tf", exported[customattr.FilePath])
	assert.Equal(t, "resource: web", exported[customattr.Label])
	assert.Equal(t, "aws_instance.web", exported[customattr.ID])
	assert.Equal(t, "ami-1", exported["ami"])
	assert.NotContains(t, exported, customattr.Hash)
}

func TestExportAttributesFlattensContainers(t *testing.T) {
	b := newTestBlock(map[string]any{
		"tags": map[string]any{"env": "prod", "team": "x"},
	})

	exported := b.ExportAttributes(false)

	assert.Equal(t, "prod", exported["tags.env"])
	assert.Equal(t, "x", exported["tags.team"])
	assert.Equal(t, map[string]any{"env": "prod", "team": "x"}, exported["tags"])
}

func TestExportAttributesUnwrapsSingletonSequences(t *testing.T) {
	b := newTestBlock(map[string]any{"azs": []any{"us-east-1a"}})

	exported := b.ExportAttributes(false)

	assert.Equal(t, "us-east-1a", exported["azs"])
}

func TestExportAttributesRenamesSelfReference(t *testing.T) {
	b := newTestBlock(map[string]any{"self": "ref"})

	exported := b.ExportAttributes(false)

	assert.Equal(t, "ref", exported[customattr.SelfReferenceAlias])
	assert.NotContains(t, exported, customattr.SelfReference)
}

func TestExportAttributesNeverContainsChangedAttributesKey(t *testing.T) {
	b := newTestBlock(map[string]any{"ami": "ami-1"})
	require.NoError(t, b.UpdateAttribute("ami", "ami-2", 1, nil, "ami", false))

	for _, includeHash := range []bool{true, false} {
		exported := b.ExportAttributes(includeHash)
		assert.NotContains(t, exported, customattr.ChangedAttributes)
	}
}

func TestExportAttributesBreadcrumbs(t *testing.T) {
	b := newTestBlock(map[string]any{
		"tags": map[string]any{"env": "prod"},
	})
	require.NoError(t, b.UpdateAttribute("tags.env", "staging", 7, nil, "tags.env", false))

	assert.Equal(t, "staging", b.Attributes["tags.env"])

	exported := b.ExportAttributes(true)
	crumbs, ok := exported[customattr.RenderingBreadcrumbs].(map[string][]Breadcrumb)
	require.True(t, ok)
	assert.Equal(t, []Breadcrumb{{VertexID: 7, AttributeAtDest: "tags.env"}}, crumbs["tags.env"])
}

func TestExportAttributesModuleLinkage(t *testing.T) {
	b := newTestBlock(nil)
	b.Module = &ModuleLink{Dependency: "module.vpc", DependencyNum: 0}

	exported := b.ExportAttributes(false)

	assert.Equal(t, "module.vpc", exported[customattr.ModuleDependency])
	assert.Equal(t, 0, exported[customattr.ModuleDependencyNum])
}

func TestExportAttributesDataResourceType(t *testing.T) {
	b := New("b1", nil, "main.tf", blocktype.Data, nil, "aws_s3_bucket.b1", "")

	exported := b.ExportAttributes(true)

	assert.Equal(t, "data.aws_s3_bucket", exported[customattr.ResourceType])
}

func TestExportAttributesIsPure(t *testing.T) {
	b := newTestBlock(map[string]any{"tags": map[string]any{"env": "prod"}})
	require.NoError(t, b.UpdateAttribute("tags.env", "staging", 7, nil, "tags.env", false))

	first := b.ExportAttributes(true)
	second := b.ExportAttributes(true)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated export differs (-first +second):\n%s", diff)
	}
}

func TestHashDeterministicForIdenticalBlocks(t *testing.T) {
	build := func() *Block {
		return New("web", map[string]any{"ami": "ami-1"}, "main.tf", blocktype.Resource, map[string]any{"ami": "ami-1"}, "aws_instance.web", "")
	}

	assert.Equal(t, build().Hash(), build().Hash())
	assert.NotEmpty(t, build().Hash())
}

func TestHashChangesWhenAttributesWereMutated(t *testing.T) {
	pristine := New("web", nil, "main.tf", blocktype.Resource, map[string]any{"ami": "ami-1"}, "aws_instance.web", "")
	mutated := New("web", nil, "main.tf", blocktype.Resource, map[string]any{"ami": "ami-1"}, "aws_instance.web", "")

	// Same final value, but the mutation is recorded and must show in the hash.
	require.NoError(t, mutated.UpdateAttribute("ami", "ami-1", 2, nil, "ami", false))

	assert.NotEqual(t, pristine.Hash(), mutated.Hash())
}

func TestDataResourceTypeNotPartOfHash(t *testing.T) {
	data := New("b1", nil, "main.tf", blocktype.Data, map[string]any{"bucket": "logs"}, "aws_s3_bucket.b1", "")

	exported := data.ExportAttributes(true)
	hash, ok := exported[customattr.Hash].(string)
	require.True(t, ok)

	// Recomputing the digest over the export without the synthesized field
	// (and without the hash itself) reproduces it, proving resource_type_
	// was added after hashing.
	delete(exported, customattr.Hash)
	delete(exported, customattr.ResourceType)
	assert.Equal(t, hash, graphutil.CalculateHash(exported))
}
