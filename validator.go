package validation

// Validator binds a root value type to a set of field validations. Build one
// once with NewValidator and reuse it: Validate allocates a fresh tree of
// ephemeral scopes per call and touches no shared state, so a single instance
// is safe for concurrent use across goroutines with different targets.
type Validator[T any] struct {
	build func(*FieldScope[T])
}

// NewValidator creates a validator from a DSL block configuring the root
// scope. Rules attached directly to the root scope express cross-field
// invariants and report at the empty path; Field and Each declare per-field
// validations.
//
//	userValidator := validation.NewValidator(func(u *validation.FieldScope[User]) {
//		validation.Field(u, "name", func(u User) string { return u.Name }, func(name *validation.FieldScope[string]) {
//			name.Rule("must not be blank", notBlank)
//		})
//	})
func NewValidator[T any](build func(*FieldScope[T])) *Validator[T] {
	return &Validator[T]{build: build}
}

// Validate runs every declared validation against target and returns all
// errors found, in declaration order, wrapped in a Result. Validating the
// same immutable target twice yields identical error lists.
func (v *Validator[T]) Validate(target T) Result[T] {
	scope := newFieldScope(RootPath(), func() T { return target })
	if v.build != nil {
		v.build(scope)
	}
	res := scope.evaluate()
	return ResultFrom(target, res.Errors())
}
