package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/coursekit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("name", "Alice"),
			validator.MaxLenString("name", "Alice", 10),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates all failures without short-circuiting", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.RequiredString("name", ""),
			validator.MaxLenString("team", "a very long team name", 5),
			validator.ValidEmail("email", "not-an-email"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)

		// Violations are reported in rule order.
		assert.Equal(t, "name", verrs[0].Field)
		assert.Equal(t, "team", verrs[1].Field)
		assert.Equal(t, "email", verrs[2].Field)
	})

	t.Run("no rules means valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validator.Apply())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "name", Message: "field is required"},
		{Field: "email", Message: "must be at most 254 characters long"},
	}

	t.Run("Error joins field messages", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			"validation failed: email: must be a valid email address; "+
				"name: field is required; email: must be at most 254 characters long",
			verrs.Error())
	})

	t.Run("Messages preserves evaluation order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{
			"email: must be a valid email address",
			"name: field is required",
			"email: must be at most 254 characters long",
		}, verrs.Messages())
	})

	t.Run("Has and Get filter by field", func(t *testing.T) {
		t.Parallel()

		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("course"))
		assert.Len(t, verrs.Get("email"), 2)
	})

	t.Run("Fields deduplicates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"email", "name"}, verrs.Fields())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(validator.RequiredString("name", ""))
		wrapped := fmt.Errorf("saving record: %w", err)

		assert.True(t, validator.IsValidationError(wrapped))
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})
}
