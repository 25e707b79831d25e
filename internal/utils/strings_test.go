package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "Valid email", email: "dean@university.edu", valid: true},
		{name: "Valid email with plus", email: "j.cruz+reg@cs.university.edu", valid: true},
		{name: "Missing domain", email: "prof@", valid: false},
		{name: "Missing local part", email: "@university.edu", valid: false},
		{name: "No TLD", email: "prof@university", valid: false},
		{name: "Leading dot in local part", email: ".prof@university.edu", valid: false},
		{name: "Empty string", email: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "dean@university.edu", NormalizeEmail("  Dean@University.EDU "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "Regular email", email: "registrar@university.edu", expected: "re*******@university.edu"},
		{name: "Short local part", email: "ab@university.edu", expected: "ab@university.edu"},
		{name: "Not an email", email: "not-an-email", expected: "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskEmail(tt.email))
		})
	}
}
