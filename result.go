package validation

// Result is the outward-facing validation outcome: Valid carrying the
// original validated value, or Invalid carrying the ordered error list. The
// carried value makes post-validation chaining possible without branching.
type Result[T any] struct {
	value  T
	errors ValidationErrors
	valid  bool
}

// ValidResult wraps a value that passed validation.
func ValidResult[T any](value T) Result[T] {
	return Result[T]{value: value, valid: true}
}

// InvalidResult wraps a non-empty error list. Supplying no errors yields a
// valid result of the zero value, preserving the invariant that a failed
// result always carries at least one error.
func InvalidResult[T any](errs ...ValidationError) Result[T] {
	if len(errs) == 0 {
		var zero T
		return ValidResult(zero)
	}
	return Result[T]{errors: errs, valid: false}
}

// ResultFrom builds a Result from a value and the errors found while
// validating it: Valid(value) when errs is empty, Invalid(errs) otherwise.
func ResultFrom[T any](value T, errs ValidationErrors) Result[T] {
	if len(errs) == 0 {
		return ValidResult(value)
	}
	return Result[T]{errors: errs, valid: false}
}

// IsValid reports whether validation passed.
func (r Result[T]) IsValid() bool {
	return r.valid
}

// IsInvalid reports whether validation failed.
func (r Result[T]) IsInvalid() bool {
	return !r.valid
}

// Value returns the validated value and whether it is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.valid
}

// GetOrElse returns the validated value, or defaultVal on failure.
func (r Result[T]) GetOrElse(defaultVal T) T {
	if r.valid {
		return r.value
	}
	return defaultVal
}

// Errors returns the ordered error list, nil on success.
func (r Result[T]) Errors() ValidationErrors {
	return r.errors
}

// Err returns the errors as an error value, nil on success. Convenient for
// callers that bubble validation failures up a conventional error path.
func (r Result[T]) Err() error {
	if r.valid {
		return nil
	}
	return r.errors
}

// OnValid invokes fn with the value when validation passed and returns the
// receiver for chaining. No-op on failure.
func (r Result[T]) OnValid(fn func(T)) Result[T] {
	if r.valid {
		fn(r.value)
	}
	return r
}

// OnInvalid invokes fn with the errors when validation failed and returns the
// receiver for chaining. No-op on success.
func (r Result[T]) OnInvalid(fn func(ValidationErrors)) Result[T] {
	if !r.valid {
		fn(r.errors)
	}
	return r
}

// Validated converts the result to its Validated form.
func (r Result[T]) Validated() Validated[T] {
	if r.valid {
		return Valid(r.value)
	}
	return Invalid[T](r.errors...)
}

// MapResult applies fn to the validated value; errors propagate untouched.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.valid {
		return Result[U]{errors: r.errors}
	}
	return ValidResult(fn(r.value))
}

// FlatMapResult chains a further result-producing step, short-circuiting on
// failure.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.valid {
		return Result[U]{errors: r.errors}
	}
	return fn(r.value)
}
