package validation

// Rule is the atomic validation unit: a pure function from a value to a
// pass/fail outcome. Rules hold no state and may be reused freely across
// scopes and targets.
type Rule[T any] func(T) Validated[Unit]

// ErrorOption configures the error a rule reports on failure.
type ErrorOption func(*ValidationError)

// WithCode attaches a machine-readable code for i18n lookup.
func WithCode(code string) ErrorOption {
	return func(e *ValidationError) {
		e.Code = code
	}
}

// WithGroup attaches a display group label.
func WithGroup(group string) ErrorOption {
	return func(e *ValidationError) {
		e.Group = group
	}
}

// FromPredicate builds a rule that passes when predicate returns true and
// otherwise fails with a single error at path.
func FromPredicate[T any](path PropertyPath, message string, predicate func(T) bool, opts ...ErrorOption) Rule[T] {
	err := ValidationError{Path: path, Message: message}
	for _, opt := range opts {
		opt(&err)
	}
	return func(value T) Validated[Unit] {
		if predicate(value) {
			return Pass()
		}
		return Fail(err)
	}
}

// FromFunc adapts any compatible function into a Rule.
func FromFunc[T any](fn func(T) Validated[Unit]) Rule[T] {
	return Rule[T](fn)
}

// AndThen is the short-circuiting sequential composition: next runs only when
// the receiver passes, so on failure only the first rule's error is reported.
// Use it when a later rule presumes an earlier one's success, e.g. a numeric
// comparison after a numeric-format check.
func (r Rule[T]) AndThen(next Rule[T]) Rule[T] {
	return func(value T) Validated[Unit] {
		return FlatMap(r(value), func(Unit) Validated[Unit] {
			return next(value)
		})
	}
}

// Combine is the accumulating parallel composition: both rules always run
// against the same input and every failure is reported, the receiver's
// error(s) first.
func (r Rule[T]) Combine(other Rule[T]) Rule[T] {
	return func(value T) Validated[Unit] {
		return mergeUnits(r(value), other(value))
	}
}

// Forbidden inverts the rule's polarity: if the wrapped rule would pass, the
// result fails with the given message at the root path; if the wrapped rule
// fails, the result passes. The wrapped rule's own path and errors are
// discarded: "forbidden" is a judgment about the rule, not a restatement of
// its check. Only a single rule should be wrapped at a time.
func (r Rule[T]) Forbidden(message string, opts ...ErrorOption) Rule[T] {
	err := ValidationError{Path: RootPath(), Message: message}
	for _, opt := range opts {
		opt(&err)
	}
	return func(value T) Validated[Unit] {
		if r(value).IsValid() {
			return Fail(err)
		}
		return Pass()
	}
}
