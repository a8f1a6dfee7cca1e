// Package blocktype defines the closed set of block kinds that can appear as
// vertices in the configuration graph. The set is fixed at compile time; the
// graph never grows new kinds at runtime.
package blocktype

import "fmt"

// BlockType identifies the kind of a configuration block.
type BlockType string

const (
	Resource  BlockType = "resource"
	Data      BlockType = "data"
	Variable  BlockType = "variable"
	Module    BlockType = "module"
	Output    BlockType = "output"
	Locals    BlockType = "locals"
	Provider  BlockType = "provider"
	Terraform BlockType = "terraform"
	// TFVar marks values supplied through variable files rather than parsed
	// blocks. The loader never produces it; graph builders may.
	TFVar BlockType = "tfvar"
)

// All returns every known block kind.
func All() []BlockType {
	return []BlockType{Resource, Data, Variable, Module, Output, Locals, Provider, Terraform, TFVar}
}

// String returns the canonical lower-case name of the kind.
func (t BlockType) String() string {
	return string(t)
}

// Parse maps a raw top-level block type label, as it appears in source files,
// to its BlockType. Unknown labels are an error; the enumeration is closed.
func Parse(raw string) (BlockType, error) {
	switch BlockType(raw) {
	case Resource, Data, Variable, Module, Output, Locals, Provider, Terraform:
		return BlockType(raw), nil
	default:
		return "", fmt.Errorf("unknown block type %q", raw)
	}
}
