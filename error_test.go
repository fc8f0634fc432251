package validation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validation.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validation.ValidationErrors
		errs.Add(validation.ValidationError{
			Path:    validation.NewPath("email"),
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("root path errors render message only", func(t *testing.T) {
		var errs validation.ValidationErrors
		errs.Add(validation.ValidationError{
			Path:    validation.RootPath(),
			Message: "passwords must match",
		})
		assert.Equal(t, "validation failed: passwords must match", errs.Error())
	})

	t.Run("joins multiple errors in order", func(t *testing.T) {
		var errs validation.ValidationErrors
		errs.Add(validation.ValidationError{Path: validation.NewPath("email"), Message: "is required"})
		errs.Add(validation.ValidationError{Path: validation.NewPath("password"), Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	errs := validation.ValidationErrors{
		{Path: validation.NewPath("tags").Index(0).Child("value"), Message: "must not be blank"},
		{Path: validation.NewPath("name"), Message: "must not be blank"},
		{Path: validation.NewPath("name"), Message: "too long"},
		{Path: validation.NewPath("age"), Message: "must be numeric", Group: "profile"},
	}

	t.Run("Has matches rendered path", func(t *testing.T) {
		assert.True(t, errs.Has("name"))
		assert.True(t, errs.Has("tags[0].value"))
		assert.False(t, errs.Has("tags[1].value"))
	})

	t.Run("Get returns messages in order", func(t *testing.T) {
		assert.Equal(t, []string{"must not be blank", "too long"}, errs.Get("name"))
		assert.Nil(t, errs.Get("missing"))
	})

	t.Run("GetErrors returns full errors", func(t *testing.T) {
		got := errs.GetErrors("age")
		require.Len(t, got, 1)
		assert.Equal(t, "profile", got[0].Group)
	})

	t.Run("Paths returns distinct paths in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"tags[0].value", "name", "age"}, errs.Paths())
	})

	t.Run("Grouped filters by label", func(t *testing.T) {
		got := errs.Grouped("profile")
		require.Len(t, got, 1)
		assert.Equal(t, "must be numeric", got[0].Message)
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validation.ValidationErrors{}.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from ValidationErrors value", func(t *testing.T) {
		errs := validation.ValidationErrors{{Path: validation.NewPath("x"), Message: "bad"}}
		got := validation.ExtractValidationErrors(errs)
		require.Len(t, got, 1)
		assert.Equal(t, "bad", got[0].Message)
	})

	t.Run("extracts from wrapped error", func(t *testing.T) {
		errs := validation.ValidationErrors{{Path: validation.NewPath("x"), Message: "bad"}}
		wrapped := fmt.Errorf("request rejected: %w", errs)
		got := validation.ExtractValidationErrors(wrapped)
		require.Len(t, got, 1)
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validation.ExtractValidationErrors(nil))
	})

	t.Run("returns nil for unrelated error", func(t *testing.T) {
		assert.Nil(t, validation.ExtractValidationErrors(fmt.Errorf("boom")))
	})
}

func TestIsValidationError(t *testing.T) {
	errs := validation.ValidationErrors{{Path: validation.NewPath("x"), Message: "bad"}}
	assert.True(t, validation.IsValidationError(errs))
	assert.True(t, validation.IsValidationError(fmt.Errorf("wrap: %w", errs)))
	assert.False(t, validation.IsValidationError(nil))
	assert.False(t, validation.IsValidationError(fmt.Errorf("boom")))
}
