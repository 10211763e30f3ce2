package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edulab/coursekit/pkg/validator"
)

func TestValidCourseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"typical course id", "CS2103-T16.2024", true},
		{"dollar and underscore", "idcc$cs1101_sem1", true},
		{"empty passes, required is separate", "", true},
		{"spaces rejected", "CS 2103", false},
		{"pipe rejected", "CS|2103", false},
		{"unicode rejected", "课程2103", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule := validator.ValidCourseID("course", tt.value)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple address", "alice@example.com", true},
		{"subdomain", "bob@mail.example.edu.sg", true},
		{"empty rejected", "", false},
		{"missing domain dot", "alice@localhost", false},
		{"missing at", "alice.example.com", false},
		{"double dot domain", "alice@example..com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule := validator.ValidEmail("email", tt.value)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}
}

func TestValidPersonName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain name", "Chen Wei", true},
		{"punctuation allowed", "O'Brien, Jr.", true},
		{"empty passes", "", true},
		{"pipe reserved for enrollment lines", "Chen|Wei", false},
		{"percent reserved for record ids", "Chen%Wei", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule := validator.ValidPersonName("name", tt.value)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}
}

func TestValidGoogleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"short form", "alice.b", true},
		{"full email form", "alice.b@nus.edu.sg", true},
		{"empty passes, unregistered student", "", true},
		{"whitespace rejected", "alice b", false},
		{"pipe rejected", "alice|b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rule := validator.ValidGoogleID("googleId", tt.value)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}
}

func TestNoSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.NoSurroundingWhitespace("name", "Chen Wei").Check())
	assert.True(t, validator.NoSurroundingWhitespace("name", "").Check())
	assert.False(t, validator.NoSurroundingWhitespace("name", " Chen Wei").Check())
	assert.False(t, validator.NoSurroundingWhitespace("name", "Chen Wei ").Check())
}

func TestMaxLenMatchesFieldLimits(t *testing.T) {
	t.Parallel()

	longCourse := strings.Repeat("c", validator.MaxCourseIDLen+1)
	err := validator.Apply(
		validator.MaxLenString("course", longCourse, validator.MaxCourseIDLen),
	)
	verrs := validator.ExtractValidationErrors(err)
	assert.Len(t, verrs, 1)
	assert.Equal(t, "must be at most 40 characters long", verrs[0].Message)
}
