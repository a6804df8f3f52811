package norm

// Tolerant accessors for the nested live-data envelopes. Missing or
// wrongly-typed containers degrade to empty values so adapters never panic on
// upstream drift.

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// mergeInto copies src fields into dst, renaming keys present in the rename
// table. Existing dst keys are not clobbered; identity fields set by the
// adapter win over statistics fields of the same name.
func mergeInto(dst Row, src map[string]any, renames map[string]string) {
	for k, v := range src {
		if mapped, ok := renames[k]; ok {
			k = mapped
		}
		if _, exists := dst[k]; exists {
			continue
		}
		dst[k] = v
	}
}
