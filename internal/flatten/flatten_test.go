package flatten

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		value    any
		expected map[string]any
	}{
		{
			name:     "scalar passes through",
			key:      "ami",
			value:    "ami-0abcdef",
			expected: map[string]any{"ami": "ami-0abcdef"},
		},
		{
			name:  "flat map",
			key:   "tags",
			value: map[string]any{"env": "prod", "team": "x"},
			expected: map[string]any{
				"tags":      map[string]any{"env": "prod", "team": "x"},
				"tags.env":  "prod",
				"tags.team": "x",
			},
		},
		{
			name:  "sequence of maps",
			key:   "ingress",
			value: []any{map[string]any{"port": 80}},
			expected: map[string]any{
				"ingress":        []any{map[string]any{"port": 80}},
				"ingress.0":      map[string]any{"port": 80},
				"ingress.0.port": 80,
			},
		},
		{
			name:  "nested map",
			key:   "lifecycle",
			value: map[string]any{"rule": map[string]any{"days": 30}},
			expected: map[string]any{
				"lifecycle":           map[string]any{"rule": map[string]any{"days": 30}},
				"lifecycle.rule":      map[string]any{"days": 30},
				"lifecycle.rule.days": 30,
			},
		},
		{
			name:     "empty sequence is atomic",
			key:      "subnets",
			value:    []any{},
			expected: map[string]any{"subnets": []any{}},
		},
		{
			name:     "nil value",
			key:      "description",
			value:    nil,
			expected: map[string]any{"description": nil},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Flatten(tc.key, tc.value)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenDoesNotMutateInput(t *testing.T) {
	input := map[string]any{"": "dropped", "env": "prod"}

	got := Flatten("tags", input)

	// The invalid empty key is excluded from the output but the caller's
	// structure stays intact.
	require.Contains(t, input, "")
	assert.Equal(t, map[string]any{"env": "prod"}, got["tags"])
	assert.NotContains(t, got, "tags.")
	assert.Equal(t, "prod", got["tags.env"])
}

func TestFlattenIdempotent(t *testing.T) {
	value := map[string]any{
		"env":   "prod",
		"rules": []any{map[string]any{"port": 443}},
	}

	first := Flatten("cfg", value)
	second := Flatten("cfg", first["cfg"])

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestFlattenRoundTrip(t *testing.T) {
	value := map[string]any{
		"env": "prod",
		"limits": map[string]any{
			"cpu": "500m",
			"mem": "1Gi",
		},
		"ports": []any{map[string]any{"from": 80, "to": 8080}},
	}

	got := Flatten("template", value)

	// The reconstructed container under the root key reproduces the input.
	if diff := cmp.Diff(value, got["template"]); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnwrapSingleton(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected any
	}{
		{name: "singleton sequence", value: []any{"a"}, expected: "a"},
		{name: "longer sequence untouched", value: []any{"a", "b"}, expected: []any{"a", "b"}},
		{name: "empty sequence untouched", value: []any{}, expected: []any{}},
		{name: "scalar untouched", value: "a", expected: "a"},
		{name: "map untouched", value: map[string]any{"k": "v"}, expected: map[string]any{"k": "v"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, UnwrapSingleton(tc.value))
		})
	}
}

func TestShouldFlatten(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "map", value: map[string]any{"k": "v"}, expected: true},
		{name: "sequence of maps", value: []any{map[string]any{}}, expected: true},
		{name: "sequence of scalars", value: []any{"a"}, expected: false},
		{name: "empty sequence", value: []any{}, expected: false},
		{name: "scalar", value: "a", expected: false},
		{name: "nil", value: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShouldFlatten(tc.value))
		})
	}
}
