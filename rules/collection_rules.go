package rules

import (
	"fmt"

	"github.com/dmitrymomot/validation"
)

// NotEmptySlice validates that a slice has at least one element.
func NotEmptySlice[T any](path validation.PropertyPath) validation.Rule[[]T] {
	return validation.FromPredicate(path, "must not be empty", func(value []T) bool {
		return len(value) > 0
	}, validation.WithCode(CodeRequired))
}

// MinItems validates that a slice has at least min elements.
func MinItems[T any](path validation.PropertyPath, min int) validation.Rule[[]T] {
	return validation.FromPredicate(path, fmt.Sprintf("must contain at least %d items", min), func(value []T) bool {
		return len(value) >= min
	}, validation.WithCode(CodeMinItems))
}

// MaxItems validates that a slice has at most max elements.
func MaxItems[T any](path validation.PropertyPath, max int) validation.Rule[[]T] {
	return validation.FromPredicate(path, fmt.Sprintf("must not contain more than %d items", max), func(value []T) bool {
		return len(value) <= max
	}, validation.WithCode(CodeMaxItems))
}

// ExactItems validates that a slice has exactly the given number of elements.
func ExactItems[T any](path validation.PropertyPath, exact int) validation.Rule[[]T] {
	return validation.FromPredicate(path, fmt.Sprintf("must contain exactly %d items", exact), func(value []T) bool {
		return len(value) == exact
	}, validation.WithCode(CodeExactItems))
}

// NotEmptyMap validates that a map has at least one entry.
func NotEmptyMap[K comparable, V any](path validation.PropertyPath) validation.Rule[map[K]V] {
	return validation.FromPredicate(path, "must not be empty", func(value map[K]V) bool {
		return len(value) > 0
	}, validation.WithCode(CodeRequired))
}
