package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginOTPMessage(t *testing.T) {
	subject, body := LoginOTPMessage("123456", 5)

	assert.Equal(t, "Your login verification code", subject)
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "5 minutes")
}

func TestResetOTPMessage(t *testing.T) {
	subject, body := ResetOTPMessage("654321", 10)

	assert.Equal(t, "Your password reset code", subject)
	assert.Contains(t, body, "654321")
	assert.Contains(t, body, "10 minutes")
}
