package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendEmailInput_Validate(t *testing.T) {
	valid := SendEmailInput{
		To:      "asha@example.com",
		Subject: "Hello",
		Body:    "<p>Hi</p>",
	}

	t.Run("valid input passes", func(t *testing.T) {
		input := valid
		assert.NoError(t, input.Validate())
	})

	t.Run("empty recipient", func(t *testing.T) {
		input := valid
		input.To = ""
		assert.Error(t, input.Validate())
	})

	t.Run("empty subject or body", func(t *testing.T) {
		input := valid
		input.Subject = ""
		assert.Error(t, input.Validate())

		input = valid
		input.Body = ""
		assert.Error(t, input.Validate())
	})

	t.Run("malformed recipient", func(t *testing.T) {
		input := valid
		input.To = "not-an-email"
		assert.Error(t, input.Validate())
	})
}

func TestIsEmailValid(t *testing.T) {
	for _, addr := range []string{
		"asha@example.com",
		"asha.rao@example.co.in",
		"asha+tag@example.com",
	} {
		assert.True(t, IsEmailValid(addr), addr)
	}

	for _, addr := range []string{
		"",
		"asha",
		"asha@",
		"@example.com",
		"asha@example",
	} {
		assert.False(t, IsEmailValid(addr), addr)
	}
}
