package protocol

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
)

// JSON Schemas for inbound payloads. Validation runs before decode so a
// malformed agent payload becomes one classified error instead of a
// partially-populated surface.

const componentNodeSchema = `{
	"$id": "a2ui://schemas/componentNode",
	"type": "object",
	"required": ["id", "kind"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"kind": {"type": "string", "minLength": 1},
		"properties": {"type": "object"},
		"children": {
			"type": "array",
			"items": {"$ref": "#"}
		}
	}
}`

const createSurfaceSchema = `{
	"type": "object",
	"required": ["components"],
	"properties": {
		"surfaceId": {"type": "string"},
		"components": {
			"type": "array",
			"items": {"$ref": "a2ui://schemas/componentNode"}
		},
		"dataModel": {"type": "object"}
	}
}`

const updateComponentsSchema = `{
	"type": "object",
	"required": ["updates"],
	"properties": {
		"surfaceId": {"type": "string"},
		"updates": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["operation"],
				"properties": {
					"operation": {"enum": ["add", "update", "remove"]},
					"id": {"type": "string"},
					"component": {"$ref": "a2ui://schemas/componentNode"}
				}
			}
		}
	}
}`

var (
	compiledCreateSurface    *gojsonschema.Schema
	compiledUpdateComponents *gojsonschema.Schema
)

func init() {
	compiledCreateSurface = mustCompile(createSurfaceSchema)
	compiledUpdateComponents = mustCompile(updateComponentsSchema)
}

func mustCompile(schema string) *gojsonschema.Schema {
	loader := gojsonschema.NewSchemaLoader()
	if err := loader.AddSchema("a2ui://schemas/componentNode", gojsonschema.NewStringLoader(componentNodeSchema)); err != nil {
		panic("protocol: register component node schema: " + err.Error())
	}
	compiled, err := loader.Compile(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic("protocol: compile schema: " + err.Error())
	}
	return compiled
}

func validate(schema *gojsonschema.Schema, payload json.RawMessage, what string) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return errors.WrapInvalid(err, "Validator", "validate", "parse "+what+" payload")
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return errors.WrapInvalid(
		fmt.Errorf("%w: %s", errors.ErrSchemaViolation, strings.Join(details, "; ")),
		"Validator", "validate", what+" schema check")
}

// DecodeCreateSurface validates and decodes a createSurface payload.
func DecodeCreateSurface(payload json.RawMessage) (*CreateSurface, error) {
	if err := validate(compiledCreateSurface, payload, "createSurface"); err != nil {
		return nil, err
	}
	var msg CreateSurface
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, errors.WrapInvalid(err, "CreateSurface", "Decode", "unmarshal payload")
	}
	return &msg, nil
}

// DecodeUpdateComponents validates and decodes an updateComponents payload.
func DecodeUpdateComponents(payload json.RawMessage) (*UpdateComponents, error) {
	if err := validate(compiledUpdateComponents, payload, "updateComponents"); err != nil {
		return nil, err
	}
	var msg UpdateComponents
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, errors.WrapInvalid(err, "UpdateComponents", "Decode", "unmarshal payload")
	}
	for _, op := range msg.Updates {
		if err := op.Validate(); err != nil {
			return nil, err
		}
	}
	return &msg, nil
}

// DecodeErrorMessage decodes an error payload. The payload shape is not
// schema-enforced; an undecodable payload yields a generic description.
func DecodeErrorMessage(payload json.RawMessage) *ErrorMessage {
	var msg ErrorMessage
	if err := json.Unmarshal(payload, &msg); err != nil || msg.Message == "" {
		return &ErrorMessage{Message: "agent reported an error"}
	}
	return &msg
}
