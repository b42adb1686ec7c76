// Package pointer resolves JSON-Pointer-style path references against the
// surface data model.
//
// Pointers are `/`-separated segment sequences ("/user/name", "/items/0").
// Each segment is matched first against map keys, then, when the current
// value is a slice, as a zero-based numeric index. Absence is a valid,
// silent outcome: Resolve never returns an error for a missing path.
package pointer

import (
	"strconv"
	"strings"
)

// IsPointer reports whether s has the shape of a data model pointer.
// Any string starting with "/" is attempted as a pointer; everything else
// is a plain literal.
func IsPointer(s string) bool {
	return strings.HasPrefix(s, "/")
}

// Resolve walks ptr through model and returns the addressed value.
// The second return value is false when any segment is missing, the value
// at that step is not a container, or the pointer is malformed.
//
// The root pointer "/" addresses the model itself.
func Resolve(model any, ptr string) (any, bool) {
	if !IsPointer(ptr) {
		return nil, false
	}
	if ptr == "/" {
		return model, true
	}

	current := model
	for _, segment := range strings.Split(ptr[1:], "/") {
		if segment == "" {
			// Empty segment ("//a" or trailing "/") is malformed
			return nil, false
		}

		switch container := current.(type) {
		case map[string]any:
			value, ok := container[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(container) {
				return nil, false
			}
			current = container[index]
		default:
			return nil, false
		}
	}

	return current, true
}
