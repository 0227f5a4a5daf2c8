// internal/util/document.go
package util

import (
	"fmt"
	"math"
)

// JSONSafe converts a document decoded from YAML into one encoding/json can
// marshal. Map keys become strings, with a null key becoming "" the way a
// typed decode reads it. NaN and infinite numbers become nil.
func JSONSafe(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = JSONSafe(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key := ""
			if k != nil {
				key = fmt.Sprint(k)
			}
			out[key] = JSONSafe(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = JSONSafe(item)
		}
		return out
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	default:
		return v
	}
}
