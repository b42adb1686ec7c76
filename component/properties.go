package component

// Properties maps property names to raw values as decoded from the wire.
// Values are either literals (string/number/bool/array/object) or pointer
// bindings; callers resolve bindings through the binding package before
// using the typed accessors below.
type Properties map[string]any

// Raw returns the unresolved value for name, or nil when absent.
func (p Properties) Raw(name string) any {
	if p == nil {
		return nil
	}
	return p[name]
}

// Has reports whether the property is present at all.
func (p Properties) Has(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p[name]
	return ok
}

// String coerces an already-resolved value to a string.
// Non-string values yield the fallback.
func String(value any, fallback string) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fallback
}

// Bool coerces an already-resolved value to a bool.
func Bool(value any, fallback bool) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	return fallback
}

// Float coerces an already-resolved value to a float64. JSON numbers decode
// as float64; int is accepted for values built in code.
func Float(value any, fallback float64) float64 {
	switch n := value.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return fallback
	}
}

// Int coerces an already-resolved value to an int, truncating JSON numbers.
func Int(value any, fallback int) int {
	switch n := value.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return fallback
	}
}

// Slice coerces an already-resolved value to a []any, or nil.
func Slice(value any) []any {
	if s, ok := value.([]any); ok {
		return s
	}
	return nil
}

// Object coerces an already-resolved value to a map[string]any, or nil.
func Object(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}
