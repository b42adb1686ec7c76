// Package binding decides, for any component property value, whether it is
// a literal or a live reference into the surface data model, and resolves
// accordingly.
//
// The contract is deliberately forgiving: a string starting with "/" is
// always attempted as a pointer, and a resolution miss falls back silently
// to the original string. Consumers never observe an "undefined" value from
// a binding read.
package binding

import (
	"github.com/AINative-Studio/ai-kit-a2ui/pointer"
)

// Resolve returns the live value for raw against model.
//
// Non-string values are literals of their own type and pass through
// unchanged. Strings starting with "/" are resolved through the pointer
// package; when the path is absent the original string is returned as the
// literal value.
//
// Resolve is pure: it never mutates model and performs no I/O. It runs on
// every render pass for every bound property.
func Resolve(model map[string]any, raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	if !pointer.IsPointer(s) {
		return s
	}

	if value, ok := pointer.Resolve(model, s); ok {
		return value
	}
	return s
}

// ResolveString resolves raw and coerces the result to a string.
// Values that are not strings after resolution yield fallback.
func ResolveString(model map[string]any, raw any, fallback string) string {
	if s, ok := Resolve(model, raw).(string); ok {
		return s
	}
	return fallback
}
