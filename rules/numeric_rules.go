package rules

import (
	"fmt"

	"github.com/dmitrymomot/validation"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a number is at least min.
func Min[T Numeric](path validation.PropertyPath, min T) validation.Rule[T] {
	return validation.FromPredicate(path, fmt.Sprintf("must be at least %v", min), func(value T) bool {
		return value >= min
	}, validation.WithCode(CodeMin))
}

// Max validates that a number is at most max.
func Max[T Numeric](path validation.PropertyPath, max T) validation.Rule[T] {
	return validation.FromPredicate(path, fmt.Sprintf("must be at most %v", max), func(value T) bool {
		return value <= max
	}, validation.WithCode(CodeMax))
}

// Between validates that a number is in the inclusive range [min, max].
func Between[T Numeric](path validation.PropertyPath, min, max T) validation.Rule[T] {
	return validation.FromPredicate(path, fmt.Sprintf("must be between %v and %v", min, max), func(value T) bool {
		return value >= min && value <= max
	}, validation.WithCode(CodeBetween))
}

// Positive validates that a number is greater than zero.
func Positive[T Numeric](path validation.PropertyPath) validation.Rule[T] {
	return validation.FromPredicate(path, "must be positive", func(value T) bool {
		return value > 0
	}, validation.WithCode(CodePositive))
}
