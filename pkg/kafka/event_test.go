package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func TestNewEvent_PopulatesEnvelope(t *testing.T) {
	payload := samplePayload{UserID: "u-1", Email: "alice@example.com"}

	event, err := NewEvent("auth.user.registered", "u-1", "user", "auth-service", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "auth.user.registered", event.EventType)
	assert.Equal(t, "u-1", event.AggregateID)
	assert.Equal(t, "user", event.AggregateType)
	assert.Equal(t, 1, event.Version)
	assert.Equal(t, "auth-service", event.Source)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEvent_MarshalRoundTrip(t *testing.T) {
	event, err := NewEvent("auth.user.password_reset", "u-2", "user", "auth-service",
		samplePayload{UserID: "u-2", Email: "bob@example.com"})
	require.NoError(t, err)
	event.WithCorrelationID("corr-1")

	data, err := event.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, "corr-1", decoded.CorrelationID)

	var payload samplePayload
	require.NoError(t, decoded.UnmarshalData(&payload))
	assert.Equal(t, "bob@example.com", payload.Email)
}
