package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	err := NotFound("user", "u-1")

	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "user with id u-1 not found")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlreadyExists_FieldKeyedValidation(t *testing.T) {
	err := AlreadyExists("user", "username")

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "a user with this username already exists", err.Fields["username"])
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestHTTPStatus_AppError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("user", "u-1"), http.StatusNotFound},
		{"already exists", AlreadyExists("user", "email"), http.StatusBadRequest},
		{"invalid input", InvalidInput("bad"), http.StatusBadRequest},
		{"invalid credentials", InvalidCredentials("invalid email or password"), http.StatusBadRequest},
		{"invalid token", InvalidToken("invalid token"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("no"), http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), http.StatusForbidden},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("lookup user: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))

	err = fmt.Errorf("verify session: %w", ErrInvalidToken)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_UnknownError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("mystery")))
}

func TestWrap(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := Wrap(base, "dial postgres")

	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "dial postgres")
}
