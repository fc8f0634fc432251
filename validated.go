package validation

// Unit is the value carried by rules that only pass or fail.
type Unit struct{}

// Validated is a two-variant validation outcome: Valid carrying a value, or
// Invalid carrying one or more errors. The zero value is Invalid with no
// errors and must not be constructed directly; use Valid or Invalid.
type Validated[T any] struct {
	value  T
	errors ValidationErrors
	valid  bool
}

// Valid creates a valid result wrapping value.
func Valid[T any](value T) Validated[T] {
	return Validated[T]{value: value, valid: true}
}

// Invalid creates an invalid result with the given errors. If no errors are
// supplied the result is Valid of the zero value, preserving the invariant
// that Invalid never carries an empty error list.
func Invalid[T any](errs ...ValidationError) Validated[T] {
	if len(errs) == 0 {
		var zero T
		return Valid(zero)
	}
	return Validated[T]{errors: errs, valid: false}
}

// Pass is the valid Unit result produced by a passing rule.
func Pass() Validated[Unit] {
	return Valid(Unit{})
}

// Fail is shorthand for an invalid Unit result.
func Fail(errs ...ValidationError) Validated[Unit] {
	return Invalid[Unit](errs...)
}

// IsValid returns true if the validation passed.
func (v Validated[T]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if the validation failed.
func (v Validated[T]) IsInvalid() bool {
	return !v.valid
}

// Value returns the wrapped value and whether it is present.
func (v Validated[T]) Value() (T, bool) {
	return v.value, v.valid
}

// Errors returns the accumulated errors, nil when valid.
func (v Validated[T]) Errors() ValidationErrors {
	return v.errors
}

// GetOrElse returns the value or a default if invalid.
func (v Validated[T]) GetOrElse(defaultVal T) T {
	if v.valid {
		return v.value
	}
	return defaultVal
}

// Map applies fn to the value if valid; errors propagate untouched.
func Map[T, U any](v Validated[T], fn func(T) U) Validated[U] {
	if !v.valid {
		return Validated[U]{errors: v.errors}
	}
	return Valid(fn(v.value))
}

// FlatMap is the short-circuiting composition: fn runs only when v is valid,
// and an invalid v propagates unchanged. Use it when a later step presumes an
// earlier step's success.
func FlatMap[T, U any](v Validated[T], fn func(T) Validated[U]) Validated[U] {
	if !v.valid {
		return Validated[U]{errors: v.errors}
	}
	return fn(v.value)
}

// Ap is the accumulating applicative composition: a valid function applied to
// a valid argument yields a valid result; otherwise every error from both
// sides is concatenated, function errors first. Use it when independent
// failures should all be reported in one pass.
func Ap[T, U any](fn Validated[func(T) U], arg Validated[T]) Validated[U] {
	if fn.valid && arg.valid {
		return Valid(fn.value(arg.value))
	}
	errs := make(ValidationErrors, 0, len(fn.errors)+len(arg.errors))
	errs = append(errs, fn.errors...)
	errs = append(errs, arg.errors...)
	return Validated[U]{errors: errs}
}

// Combine2 combines two validated values, accumulating errors from both.
func Combine2[A, B, C any](va Validated[A], vb Validated[B], fn func(A, B) C) Validated[C] {
	if va.valid && vb.valid {
		return Valid(fn(va.value, vb.value))
	}
	errs := make(ValidationErrors, 0, len(va.errors)+len(vb.errors))
	errs = append(errs, va.errors...)
	errs = append(errs, vb.errors...)
	return Validated[C]{errors: errs}
}

// Combine3 combines three validated values, accumulating errors.
func Combine3[A, B, C, D any](va Validated[A], vb Validated[B], vc Validated[C], fn func(A, B, C) D) Validated[D] {
	if va.valid && vb.valid && vc.valid {
		return Valid(fn(va.value, vb.value, vc.value))
	}
	errs := make(ValidationErrors, 0, len(va.errors)+len(vb.errors)+len(vc.errors))
	errs = append(errs, va.errors...)
	errs = append(errs, vb.errors...)
	errs = append(errs, vc.errors...)
	return Validated[D]{errors: errs}
}

// Sequence reduces a slice of Validated into one Validated of slice,
// accumulating every error in input order. It succeeds only when every
// element succeeded, with value order preserved.
func Sequence[T any](vs []Validated[T]) Validated[[]T] {
	values := make([]T, 0, len(vs))
	var errs ValidationErrors
	for _, v := range vs {
		if v.valid {
			values = append(values, v.value)
			continue
		}
		errs = append(errs, v.errors...)
	}
	if len(errs) > 0 {
		return Validated[[]T]{errors: errs}
	}
	return Valid(values)
}

// Traverse applies fn to each element and sequences the results.
func Traverse[T, U any](items []T, fn func(T) Validated[U]) Validated[[]U] {
	results := make([]Validated[U], len(items))
	for i, item := range items {
		results[i] = fn(item)
	}
	return Sequence(results)
}

// Fold applies onInvalid or onValid depending on the variant.
func Fold[T, U any](v Validated[T], onInvalid func(ValidationErrors) U, onValid func(T) U) U {
	if v.valid {
		return onValid(v.value)
	}
	return onInvalid(v.errors)
}

// mergeUnits accumulates unit results: valid only when every input is valid,
// otherwise every error in input order.
func mergeUnits(vs ...Validated[Unit]) Validated[Unit] {
	var errs ValidationErrors
	for _, v := range vs {
		if !v.valid {
			errs = append(errs, v.errors...)
		}
	}
	if len(errs) > 0 {
		return Fail(errs...)
	}
	return Pass()
}
