package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.True(t, v.Valid())

	v.Check(false, "title", "must be provided")
	v.Check(true, "description", "must be provided")
	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"title": "must be provided"}, v.Errors)

	// first message per field wins
	v.AddError("title", "must not be more than 100 characters long")
	assert.Equal(t, "must be provided", v.Errors["title"])
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Errors: map[string]string{
		"name":  "must be provided",
		"email": "must be a valid email address",
	}}

	assert.Equal(t, "email must be a valid email address, name must be provided", err.Message())
}

func TestCheckStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.CheckStringLength("abc", 1, 3))
	assert.False(t, v.CheckStringLength("abcd", 1, 3))
	assert.False(t, v.CheckStringLength("", 1, 3))
}
