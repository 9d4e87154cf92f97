package mail

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordResetEmail(t *testing.T) {
	msg := PasswordResetEmail("alice@example.com", "Alice", "https://app.example.com/", "dXNlci1yZWY", "abc123-deadbeef")

	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "Password reset request", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Alice,")
	assert.Contains(t, msg.Body, "https://app.example.com/reset-password/dXNlci1yZWY/abc123-deadbeef/")
	assert.NotContains(t, msg.Body, "https://app.example.com//reset-password")
}

func TestPasswordResetEmail_NoName(t *testing.T) {
	msg := PasswordResetEmail("bob@example.com", "", "https://app.example.com", "ref", "token")

	assert.Contains(t, msg.Body, "Hi there,")
}

func TestLogMailer_Send(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailer := NewLogMailer(logger)

	err := mailer.Send(context.Background(), Message{To: "x@example.com", Subject: "s", Body: "b"})
	assert.NoError(t, err)
}
