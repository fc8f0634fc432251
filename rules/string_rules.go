package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/validation"
)

// NotBlank validates that a string is not empty after trimming whitespace.
func NotBlank(path validation.PropertyPath) validation.Rule[string] {
	return validation.FromPredicate(path, "must not be blank", func(value string) bool {
		return strings.TrimSpace(value) != ""
	}, validation.WithCode(CodeRequired))
}

// MinLen validates that a string has at least min bytes.
func MinLen(path validation.PropertyPath, min int) validation.Rule[string] {
	return validation.FromPredicate(path, fmt.Sprintf("must be at least %d characters long", min), func(value string) bool {
		return len(value) >= min
	}, validation.WithCode(CodeMinLength))
}

// MaxLen validates that a string has at most max bytes.
func MaxLen(path validation.PropertyPath, max int) validation.Rule[string] {
	return validation.FromPredicate(path, fmt.Sprintf("must be at most %d characters long", max), func(value string) bool {
		return len(value) <= max
	}, validation.WithCode(CodeMaxLength))
}

// Len validates that a string has exactly the given byte length.
func Len(path validation.PropertyPath, exact int) validation.Rule[string] {
	return validation.FromPredicate(path, fmt.Sprintf("must be exactly %d characters long", exact), func(value string) bool {
		return len(value) == exact
	}, validation.WithCode(CodeExactLength))
}

// NumericText validates that a string is non-empty and consists only of
// digits. Pairs with a numeric comparison in a dependent chain.
func NumericText(path validation.PropertyPath) validation.Rule[string] {
	return validation.FromPredicate(path, "must be numeric", func(value string) bool {
		if value == "" {
			return false
		}
		for _, r := range value {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}, validation.WithCode(CodeNumericText))
}

// Alphanumeric validates that a string is non-empty and consists only of
// letters and digits.
func Alphanumeric(path validation.PropertyPath) validation.Rule[string] {
	return validation.FromPredicate(path, "must contain only letters and numbers", func(value string) bool {
		if value == "" {
			return false
		}
		for _, r := range value {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}, validation.WithCode(CodeAlphanumeric))
}

// OneOf validates that a string is one of the allowed values.
func OneOf(path validation.PropertyPath, allowed ...string) validation.Rule[string] {
	return validation.FromPredicate(path, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")), func(value string) bool {
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}, validation.WithCode(CodeOneOf))
}
