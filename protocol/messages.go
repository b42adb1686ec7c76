package protocol

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/errors"
)

// Message type discriminators carried in Envelope.Type.
const (
	// TypeCreateSurface replaces the active surface tree and data model
	TypeCreateSurface = "createSurface"
	// TypeUpdateComponents patches the root component list incrementally
	TypeUpdateComponents = "updateComponents"
	// TypeUserAction reports a user interaction back to the agent
	TypeUserAction = "userAction"
	// TypeError carries an agent-side error description
	TypeError = "error"
)

// Envelope wraps all wire messages with type discrimination.
type Envelope struct {
	Type      string          `json:"type"`
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"` // Unix milliseconds
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope wraps payload in an envelope with a fresh message id.
func NewEnvelope(msgType string, payload any) (*Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Envelope", "NewEnvelope", "marshal payload")
	}
	return &Envelope{
		Type:      msgType,
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Payload:   data,
	}, nil
}

// ParseEnvelope decodes a raw frame into an envelope.
func ParseEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.WrapInvalid(err, "Envelope", "ParseEnvelope", "decode frame")
	}
	if env.Type == "" {
		return nil, errors.WrapInvalid(errors.ErrInvalidMessage, "Envelope", "ParseEnvelope", "missing type")
	}
	return &env, nil
}

// CreateSurface unconditionally replaces the surface: the full component
// tree plus a wholesale replacement of the data model.
type CreateSurface struct {
	SurfaceID  string           `json:"surfaceId"`
	Components []component.Node `json:"components"`
	DataModel  map[string]any   `json:"dataModel,omitempty"`
}

// Operation names the three incremental update verbs.
type Operation string

const (
	// OpAdd appends a component to the end of the root sequence
	OpAdd Operation = "add"
	// OpUpdate replaces the first root component with a matching id in place
	OpUpdate Operation = "update"
	// OpRemove deletes the first root component with a matching id
	OpRemove Operation = "remove"
)

// Valid reports whether the operation is one of the three known verbs.
func (op Operation) Valid() bool {
	switch op {
	case OpAdd, OpUpdate, OpRemove:
		return true
	default:
		return false
	}
}

// UpdateOp is one entry in an updateComponents sequence. Ops apply in array
// order against an accumulating copy of the root list, so remove-then-add
// of the same id yields presence and add-then-remove yields absence.
type UpdateOp struct {
	Operation Operation       `json:"operation"`
	ID        string          `json:"id"`
	Component *component.Node `json:"component,omitempty"`
}

// Validate checks the structural requirements of a single op.
func (op UpdateOp) Validate() error {
	if !op.Operation.Valid() {
		return errors.WrapInvalid(errors.ErrInvalidMessage, "UpdateOp", "Validate",
			fmt.Sprintf("unknown operation %q", op.Operation))
	}
	if op.Operation == OpAdd && op.Component == nil {
		return errors.WrapInvalid(errors.ErrInvalidMessage, "UpdateOp", "Validate", "add requires a component")
	}
	if op.Operation != OpAdd && op.ID == "" {
		return errors.WrapInvalid(errors.ErrInvalidMessage, "UpdateOp", "Validate", "id must not be empty")
	}
	return nil
}

// UpdateComponents patches the root component list of the active surface.
// The data model is never touched by this message.
type UpdateComponents struct {
	SurfaceID string     `json:"surfaceId,omitempty"`
	Updates   []UpdateOp `json:"updates"`
}

// UserAction is the outbound message emitted on user interaction.
// Context always includes componentId plus kind-specific fields; DataModel
// is a snapshot of the surface data model at dispatch time.
type UserAction struct {
	Type      string         `json:"type"`
	SurfaceID string         `json:"surfaceId"`
	Action    string         `json:"action"`
	Context   map[string]any `json:"context"`
	DataModel map[string]any `json:"dataModel"`
}

// NewUserAction builds a userAction message with the fixed type tag.
func NewUserAction(surfaceID, action string, context, dataModel map[string]any) *UserAction {
	if context == nil {
		context = map[string]any{}
	}
	if dataModel == nil {
		dataModel = map[string]any{}
	}
	return &UserAction{
		Type:      TypeUserAction,
		SurfaceID: surfaceID,
		Action:    action,
		Context:   context,
		DataModel: dataModel,
	}
}

// ErrorMessage carries an agent-side error description.
type ErrorMessage struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
