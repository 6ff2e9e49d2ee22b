package mailservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	tp := NewTemplate()

	data := struct {
		Name string
	}{
		Name: "Test User",
	}

	subject, plainBody, htmlBody, err := tp.ParseTemplate("welcome_email.html", data)
	assert.NoError(t, err)
	assert.Equal(t, "Welcome to Blogory!", subject.String())
	assert.Contains(t, plainBody.String(), "Hi Test User,")
	assert.Contains(t, htmlBody.String(), "<p>Hi Test User,</p>")
}

func TestParseTemplateUnknownFile(t *testing.T) {
	tp := NewTemplate()

	_, _, _, err := tp.ParseTemplate("missing.html", nil)
	assert.Error(t, err)
}
