package util

import "time"

// CloneMap returns a deep copy of a JSON-shaped map, preserving nil. Nested
// maps and slices are copied recursively so no mutable state stays shared
// between the original and the clone.
func CloneMap(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return CloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// CloneTimePtr copies a timestamp pointer so callers cannot mutate shared state.
func CloneTimePtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

// CloneStringPtr copies a string pointer.
func CloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
