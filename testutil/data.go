package testutil

import (
	"github.com/AINative-Studio/ai-kit-a2ui/component"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
)

// SampleModel returns a small data model used across tests. A fresh map on
// every call so tests can mutate freely.
func SampleModel() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name":  "Jane Smith",
			"email": "jane@example.com",
		},
		"status": "ready",
	}
}

// SampleComponents returns a small realistic root component list: a heading,
// a bound text field and a submit button inside a container.
func SampleComponents() []component.Node {
	return []component.Node{
		{
			ID:   "root",
			Kind: component.KindContainer,
			Children: []component.Node{
				{
					ID:         "title",
					Kind:       component.KindHeading,
					Properties: component.Properties{"value": "Profile", "level": float64(2)},
				},
				{
					ID:   "name",
					Kind: component.KindTextField,
					Properties: component.Properties{
						"label": "Name", "value": "/user/name", "action": "name-changed",
					},
				},
				{
					ID:   "submit",
					Kind: component.KindButton,
					Properties: component.Properties{
						"label": "Save", "action": "save-profile",
					},
				},
			},
		},
	}
}

// SampleSurface returns a createSurface message over SampleComponents and
// SampleModel.
func SampleSurface(surfaceID string) *protocol.CreateSurface {
	return &protocol.CreateSurface{
		SurfaceID:  surfaceID,
		Components: SampleComponents(),
		DataModel:  SampleModel(),
	}
}
