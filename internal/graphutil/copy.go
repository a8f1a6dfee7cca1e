package graphutil

// DeepCopyValue recursively copies a parsed configuration value. The value
// domain is scalar | []any | map[string]any; scalars are returned as-is.
func DeepCopyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, val := range tv {
			out[k] = DeepCopyValue(val)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, val := range tv {
			out[i] = DeepCopyValue(val)
		}
		return out
	default:
		return v
	}
}

// DeepCopyConfig copies a block's nested configuration map. A nil config
// stays nil.
func DeepCopyConfig(cfg map[string]any) map[string]any {
	if cfg == nil {
		return nil
	}
	return DeepCopyValue(cfg).(map[string]any)
}
