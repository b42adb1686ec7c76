package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AINative-Studio/ai-kit-a2ui/component"
)

func TestNewEnvelope(t *testing.T) {
	action := NewUserAction("surf-1", "submit", map[string]any{"componentId": "b1"}, nil)

	env, err := NewEnvelope(TypeUserAction, action)
	require.NoError(t, err)

	assert.Equal(t, TypeUserAction, env.Type)
	assert.Len(t, env.ID, 36)
	assert.NotZero(t, env.Timestamp)

	var decoded UserAction
	require.NoError(t, json.Unmarshal(env.Payload, &decoded))
	assert.Equal(t, "submit", decoded.Action)
	assert.Equal(t, "surf-1", decoded.SurfaceID)
}

func TestParseEnvelope(t *testing.T) {
	raw := `{"type":"createSurface","id":"m1","timestamp":1700000000000,"payload":{"components":[]}}`

	env, err := ParseEnvelope([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, TypeCreateSurface, env.Type)
	assert.Equal(t, "m1", env.ID)
}

func TestParseEnvelope_Invalid(t *testing.T) {
	_, err := ParseEnvelope([]byte("not json"))
	assert.Error(t, err)

	_, err = ParseEnvelope([]byte(`{"id":"m1"}`))
	assert.Error(t, err)
}

func TestNewUserAction_Defaults(t *testing.T) {
	action := NewUserAction("s", "click", nil, nil)

	assert.Equal(t, TypeUserAction, action.Type)
	assert.NotNil(t, action.Context)
	assert.NotNil(t, action.DataModel)
}

func TestOperation_Valid(t *testing.T) {
	assert.True(t, OpAdd.Valid())
	assert.True(t, OpUpdate.Valid())
	assert.True(t, OpRemove.Valid())
	assert.False(t, Operation("replace").Valid())
	assert.False(t, Operation("").Valid())
}

func TestUpdateOp_Validate(t *testing.T) {
	node := &component.Node{ID: "x", Kind: component.KindText}

	assert.NoError(t, UpdateOp{Operation: OpAdd, Component: node}.Validate())
	assert.NoError(t, UpdateOp{Operation: OpUpdate, ID: "x", Component: node}.Validate())
	assert.NoError(t, UpdateOp{Operation: OpRemove, ID: "x"}.Validate())

	assert.Error(t, UpdateOp{Operation: OpAdd}.Validate())
	assert.Error(t, UpdateOp{Operation: OpUpdate}.Validate())
	assert.Error(t, UpdateOp{Operation: "swap", ID: "x"}.Validate())
}
