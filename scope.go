package validation

// FieldScope is the DSL context bound to one value and one path. It collects
// directly attached rules plus deferred nested validations (sub-fields, list
// elements, grouped blocks, conditional blocks) and evaluates them by error
// accumulation. Scopes are ephemeral: one is created per evaluation, never
// shared, and discarded when evaluate returns.
type FieldScope[R any] struct {
	path   PropertyPath
	root   func() R
	rules  []Rule[R]
	nested []func(R) Validated[Unit]
	group  string
}

func newFieldScope[R any](path PropertyPath, root func() R) *FieldScope[R] {
	return &FieldScope[R]{path: path, root: root}
}

// Path returns the property path this scope reports errors at.
func (s *FieldScope[R]) Path() PropertyPath {
	return s.path
}

// Rule attaches a predicate-backed rule at the scope's path. Multiple rules
// on one scope are evaluated independently and accumulated; use Dependent for
// a short-circuiting chain.
func (s *FieldScope[R]) Rule(message string, predicate func(R) bool, opts ...ErrorOption) {
	s.attach(FromPredicate(s.path, message, predicate, opts...))
}

// With attaches a pre-built rule.
func (s *FieldScope[R]) With(rule Rule[R]) {
	s.attach(rule)
}

func (s *FieldScope[R]) attach(rule Rule[R]) {
	if s.group != "" {
		rule = labelGroup(rule, s.group)
	}
	s.rules = append(s.rules, rule)
}

// Dependent builds a short-circuiting chain of checks sharing the scope's
// path and attaches it as a single rule. An inner chain's short-circuiting
// never affects whether the scope's other rules run. Chain errors keep their
// own group label even inside a Group block.
func (s *FieldScope[R]) Dependent(block func(*RuleChain[R])) {
	chain := newRuleChain[R](s.path)
	block(chain)
	if rule := chain.build(); rule != nil {
		s.rules = append(s.rules, rule)
	}
}

// Group evaluates a nested block sharing the same path and value, then stamps
// the given label onto every error produced by rules directly inside the
// block, overwriting any prior label. The label does not cascade into nested
// Field, Each, Dependent, or Group calls inside the block; those set their
// own label or carry none.
func (s *FieldScope[R]) Group(label string, block func(*FieldScope[R])) {
	s.nested = append(s.nested, func(value R) Validated[Unit] {
		child := newFieldScope(s.path, func() R { return value })
		child.group = label
		block(child)
		return child.evaluate()
	})
}

// Use delegates validation of the scope's value to an independent Validator
// and reparents every returned error by prefixing it with the scope's path.
// An error at the delegate's root path surfaces at exactly this scope's path.
func (s *FieldScope[R]) Use(v *Validator[R]) {
	s.nested = append(s.nested, func(value R) Validated[Unit] {
		res := v.Validate(value)
		if res.IsValid() {
			return Pass()
		}
		errs := make(ValidationErrors, len(res.errors))
		for i, err := range res.errors {
			err.Path = s.path.Join(err.Path)
			errs[i] = err
		}
		return Fail(errs...)
	})
}

// evaluate computes the scope's value once, runs every attached rule against
// it, then every nested closure, and accumulates all errors in that order.
// An empty scope evaluates to valid.
func (s *FieldScope[R]) evaluate() Validated[Unit] {
	value := s.root()
	results := make([]Validated[Unit], 0, len(s.rules)+len(s.nested))
	for _, rule := range s.rules {
		results = append(results, rule(value))
	}
	for _, nested := range s.nested {
		results = append(results, nested(value))
	}
	return mergeUnits(results...)
}

// Field derives a child scope over a sub-value at path.Child(name) and defers
// its evaluation. The block runs against a fresh child scope on every
// evaluation of the parent.
func Field[R, S any](s *FieldScope[R], name string, get func(R) S, block func(*FieldScope[S])) {
	path := s.path.Child(name)
	s.nested = append(s.nested, func(value R) Validated[Unit] {
		child := newFieldScope(path, func() S { return get(value) })
		block(child)
		return child.evaluate()
	})
}

// Each derives one child scope per element of a list sub-value, at
// path.Child(name).Index(i). Every failing element reports, in element order,
// each element's errors in rule order. An empty list is vacuously valid.
func Each[R, S any](s *FieldScope[R], name string, get func(R) []S, block func(*FieldScope[S])) {
	base := s.path.Child(name)
	s.nested = append(s.nested, func(value R) Validated[Unit] {
		items := get(value)
		if len(items) == 0 {
			return Pass()
		}
		results := make([]Validated[Unit], 0, len(items))
		for i, item := range items {
			child := newFieldScope(base.Index(i), func() S { return item })
			block(child)
			results = append(results, child.evaluate())
		}
		return mergeUnits(results...)
	})
}

// WhenPresent evaluates the nested block only when the scope's pointer value
// is non-nil. A nil value is an explicit skip yielding valid, regardless of
// the block's rules.
func WhenPresent[R any](s *FieldScope[*R], block func(*FieldScope[R])) {
	s.nested = append(s.nested, func(value *R) Validated[Unit] {
		if value == nil {
			return Pass()
		}
		child := newFieldScope(s.path, func() R { return *value })
		block(child)
		return child.evaluate()
	})
}

// RuleIfPresent attaches a single rule that is skipped when the pointer value
// is nil. Sugar for WhenPresent with one rule.
func RuleIfPresent[R any](s *FieldScope[*R], message string, predicate func(R) bool, opts ...ErrorOption) {
	rule := FromPredicate(s.path, message, predicate, opts...)
	s.nested = append(s.nested, func(value *R) Validated[Unit] {
		if value == nil {
			return Pass()
		}
		return rule(*value)
	})
}

// labelGroup stamps label onto every error the rule produces.
func labelGroup[T any](rule Rule[T], label string) Rule[T] {
	return func(value T) Validated[Unit] {
		res := rule(value)
		if res.IsValid() {
			return res
		}
		errs := make(ValidationErrors, len(res.errors))
		for i, err := range res.errors {
			err.Group = label
			errs[i] = err
		}
		return Fail(errs...)
	}
}
