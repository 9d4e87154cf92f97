package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	PasswordConfirm string `validate:"required,eqfield=Password"`
}

func TestValidate_Success(t *testing.T) {
	form := registerForm{
		Email:           "alice@example.com",
		Password:        "Str0ngP@ss1",
		PasswordConfirm: "Str0ngP@ss1",
	}

	assert.NoError(t, Validate(form))
}

func TestValidate_FieldMap(t *testing.T) {
	form := registerForm{
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "different",
	}

	err := Validate(form)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Equal(t, "must be a valid email address", fields["Email"])
	assert.Equal(t, "must be at least 8 characters", fields["Password"])
	assert.Equal(t, "must match Password", fields["PasswordConfirm"])
}

func TestValidate_RequiredFields(t *testing.T) {
	err := Validate(registerForm{})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "is required", valErr.Fields()["Email"])
	assert.Contains(t, valErr.Error(), "field 'Email' is required")
}
