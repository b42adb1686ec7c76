package natstransport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AINative-Studio/ai-kit-a2ui/errors"
)

func TestConfig_ValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"missing url", Config{SurfaceSubject: "a2ui.surface", ActionSubject: "a2ui.actions"}},
		{"missing surface subject", Config{URL: "nats://localhost:4222", ActionSubject: "a2ui.actions"}},
		{"missing action subject", Config{URL: "nats://localhost:4222", SurfaceSubject: "a2ui.surface"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrMissingConfig)
		})
	}
}

func TestConfig_ValidateFillsDefaults(t *testing.T) {
	config := Config{
		URL:            "nats://localhost:4222",
		SurfaceSubject: "a2ui.surface.s1",
		ActionSubject:  "a2ui.actions.s1",
	}
	require.NoError(t, config.Validate())

	assert.Equal(t, "a2ui-client", config.Name)
	assert.Equal(t, 10, config.MaxReconnects)
	assert.Equal(t, 2*time.Second, config.ReconnectWait)
	assert.Equal(t, 10*time.Second, config.ConnectTimeout)
	assert.Equal(t, 64, config.EventBuffer)
}

func TestConfig_ValidateKeepsExplicitValues(t *testing.T) {
	config := Config{
		URL:            "nats://localhost:4222",
		SurfaceSubject: "a2ui.surface.s1",
		ActionSubject:  "a2ui.actions.s1",
		Name:           "dashboard",
		MaxReconnects:  -1,
		EventBuffer:    8,
	}
	require.NoError(t, config.Validate())

	assert.Equal(t, "dashboard", config.Name)
	assert.Equal(t, -1, config.MaxReconnects)
	assert.Equal(t, 8, config.EventBuffer)
}

func TestConnect_InvalidConfig(t *testing.T) {
	_, err := Connect(context.Background(), Config{}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingConfig)
}
