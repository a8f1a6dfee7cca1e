// Package flatten implements the attribute codec used by graph blocks: it
// expands a nested configuration value into a flat, dot-path keyed index and
// rebuilds the nested containers alongside the leaf entries, so that both
// representations stay structurally consistent.
//
// The value domain is the closed trio scalar | []any | map[string]any.
// Anything that is not a slice or a string-keyed map is treated as a scalar
// and passed through untouched, including sequences of unexpected element
// types.
package flatten

import "strconv"

// Flatten expands value under key into a flat mapping. The result always
// contains key itself, bound to the reconstructed nested container (or the
// scalar), plus one entry per interior and leaf dot-path encountered.
//
// Flatten is pure: the input value is never modified. Map entries whose key
// is the empty string cannot form a valid dot-path and are skipped entirely.
// Empty sequences and empty maps are atomic; there is nothing to descend
// into, so they appear only under key.
//
// Flatten is idempotent: re-flattening a reconstructed container yields an
// identical mapping.
func Flatten(key string, value any) map[string]any {
	out := make(map[string]any)

	switch v := value.(type) {
	case map[string]any:
		container := make(map[string]any, len(v))
		out[key] = container
		for k, child := range v {
			if k == "" {
				continue
			}
			childKey := key + "." + k
			for fk, fv := range Flatten(childKey, child) {
				out[fk] = fv
			}
			container[k] = out[childKey]
		}
	case []any:
		container := make([]any, len(v))
		out[key] = container
		for i, child := range v {
			childKey := key + "." + strconv.Itoa(i)
			for fk, fv := range Flatten(childKey, child) {
				out[fk] = fv
			}
			container[i] = out[childKey]
		}
	default:
		out[key] = value
	}

	return out
}

// UnwrapSingleton returns the sole element of a one-element sequence, or the
// value unchanged otherwise. It is applied when assembling the export view,
// never when mutating a block's internal storage.
func UnwrapSingleton(value any) any {
	if seq, ok := value.([]any); ok && len(seq) == 1 {
		return seq[0]
	}
	return value
}

// ShouldFlatten reports whether a freshly constructed attribute value gets
// flattened at block construction time: maps always do, sequences only when
// non-empty and starting with a map. Scalars and empty sequences stay as-is.
func ShouldFlatten(value any) bool {
	switch v := value.(type) {
	case map[string]any:
		return true
	case []any:
		if len(v) == 0 {
			return false
		}
		_, ok := v[0].(map[string]any)
		return ok
	default:
		return false
	}
}
