package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func model() map[string]any {
	return map[string]any{
		"user": map[string]any{"name": "John"},
		"form": map[string]any{"agreed": true, "age": float64(42)},
	}
}

func TestResolve_PointerHit(t *testing.T) {
	assert.Equal(t, "John", Resolve(model(), "/user/name"))
	assert.Equal(t, true, Resolve(model(), "/form/agreed"))
	assert.Equal(t, float64(42), Resolve(model(), "/form/age"))
}

// Pointer fallback law: a string starting with "/" that is not a path in
// the model resolves to itself.
func TestResolve_PointerMissFallsBackToLiteral(t *testing.T) {
	assert.Equal(t, "/nonexistent/path", Resolve(model(), "/nonexistent/path"))
	assert.Equal(t, "/user/missing", Resolve(model(), "/user/missing"))
	assert.Equal(t, "/anything", Resolve(map[string]any{}, "/anything"))
}

func TestResolve_PlainStringUnconditionally(t *testing.T) {
	assert.Equal(t, "hello", Resolve(model(), "hello"))
	assert.Equal(t, "user/name", Resolve(model(), "user/name"))
	assert.Equal(t, "", Resolve(model(), ""))
}

// Literals of any non-string type are never treated as bindings.
func TestResolve_NonStringPassthrough(t *testing.T) {
	assert.Equal(t, float64(7), Resolve(model(), float64(7)))
	assert.Equal(t, true, Resolve(model(), true))
	assert.Nil(t, Resolve(model(), nil))

	list := []any{"a", "b"}
	assert.Equal(t, list, Resolve(model(), list))

	obj := map[string]any{"k": "v"}
	assert.Equal(t, obj, Resolve(model(), obj))
}

func TestResolve_NilModel(t *testing.T) {
	assert.Equal(t, "/user/name", Resolve(nil, "/user/name"))
	assert.Equal(t, "literal", Resolve(nil, "literal"))
}

func TestResolveString(t *testing.T) {
	assert.Equal(t, "John", ResolveString(model(), "/user/name", "fallback"))
	assert.Equal(t, "plain", ResolveString(model(), "plain", "fallback"))

	// Resolution produced a bool, not a string
	assert.Equal(t, "fallback", ResolveString(model(), "/form/agreed", "fallback"))
	assert.Equal(t, "fallback", ResolveString(model(), float64(1), "fallback"))
}
