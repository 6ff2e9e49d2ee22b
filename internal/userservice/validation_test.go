package userservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blogory/internal/common"
)

func TestValidateName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "valid name",
			input:    "Alice",
			expected: map[string]string{},
		},
		{
			name:     "empty name",
			input:    "",
			expected: map[string]string{"name": "must be provided"},
		},
		{
			name:     "too long",
			input:    strings.Repeat("a", 36),
			expected: map[string]string{"name": "must not be more than 35 characters long"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateName(v, tc.input)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:     "valid email",
			input:    "alice@example.com",
			expected: map[string]string{},
		},
		{
			name:     "empty email",
			input:    "",
			expected: map[string]string{"email": "must be provided"},
		},
		{
			name:     "missing domain",
			input:    "alice@",
			expected: map[string]string{"email": "must be a valid email address"},
		},
		{
			name:     "too long",
			input:    strings.Repeat("a", 30) + "@example.com",
			expected: map[string]string{"email": "must not be more than 35 characters long"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.input)
			assert.Equal(t, tc.expected, v.Errors)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := common.NewValidator()
	validatePassword(v, "secret1")
	assert.True(t, v.Valid())

	v = common.NewValidator()
	validatePassword(v, "")
	assert.Equal(t, map[string]string{"password": "must be provided"}, v.Errors)

	v = common.NewValidator()
	validatePassword(v, strings.Repeat("p", 73))
	assert.Equal(t, map[string]string{"password": "must not be more than 72 characters long"}, v.Errors)
}
