package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure at one property path.
// Code is an optional machine-readable tag for i18n lookup; Group is an
// optional display label attached by Group blocks. Empty string means absent
// for both.
type ValidationError struct {
	Path    PropertyPath
	Message string
	Code    string
	Group   string
}

// ValidationErrors represents an ordered collection of validation errors.
// Order is significant: errors appear in rule-declaration and element order.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		if err.Path.IsRoot() {
			parts = append(parts, err.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", err.Path, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has checks whether any error was reported at the given rendered path.
func (ve ValidationErrors) Has(path string) bool {
	for _, err := range ve {
		if err.Path.String() == path {
			return true
		}
	}
	return false
}

// Get returns the messages reported at the given rendered path, in order.
func (ve ValidationErrors) Get(path string) []string {
	var messages []string
	for _, err := range ve {
		if err.Path.String() == path {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// GetErrors returns the full errors reported at the given rendered path.
func (ve ValidationErrors) GetErrors(path string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Path.String() == path {
			out = append(out, err)
		}
	}
	return out
}

// Paths returns every distinct rendered path in first-seen order.
func (ve ValidationErrors) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, err := range ve {
		p := err.Path.String()
		if !seen[p] {
			paths = append(paths, p)
			seen[p] = true
		}
	}
	return paths
}

// Grouped returns the errors carrying the given group label, in order.
func (ve ValidationErrors) Grouped(label string) ValidationErrors {
	var out ValidationErrors
	for _, err := range ve {
		if err.Group == label {
			out = append(out, err)
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
