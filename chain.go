package validation

// RuleChain builds a single short-circuiting rule from an ordered sequence of
// checks sharing one path. Each added check folds onto the accumulated rule
// via AndThen, so evaluation stops at the first failure and later predicates
// are never invoked.
type RuleChain[T any] struct {
	path PropertyPath
	rule Rule[T]
}

func newRuleChain[T any](path PropertyPath) *RuleChain[T] {
	return &RuleChain[T]{path: path}
}

// Rule appends a check to the chain.
func (c *RuleChain[T]) Rule(message string, predicate func(T) bool, opts ...ErrorOption) *RuleChain[T] {
	next := FromPredicate(c.path, message, predicate, opts...)
	if c.rule == nil {
		c.rule = next
		return c
	}
	c.rule = c.rule.AndThen(next)
	return c
}

// build returns the composed rule, or nil when no checks were added so the
// caller can skip attaching anything.
func (c *RuleChain[T]) build() Rule[T] {
	return c.rule
}
