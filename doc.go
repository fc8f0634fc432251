// Package validation provides a declarative, composable validation engine:
// given a typed value, it produces a structured, ordered list of validation
// errors (path, message, optional code and group) rather than returning on
// the first failure or panicking.
//
// The engine is built on a small applicative algebra with two composition
// modes chosen at the call site: accumulation (run every rule, report every
// failure at once, the default for independent checks) and short-circuiting
// (stop at the first failure, for dependent checks where a later rule
// presumes an earlier one's success).
//
// # Core Concepts
//
//   - Rule[T]          – pure function from a value to a pass/fail outcome
//   - Validated[T]     – Valid(value) or Invalid(errors); the uniform currency
//   - PropertyPath     – immutable dotted/bracketed address like "items[0].name"
//   - FieldScope[R]    – DSL context collecting rules and nested validations
//   - Validator[T]     – reusable top-level entry producing a Result[T]
//   - Result[T]        – success carrying the value, or the ordered error list
//
// # Usage
//
//	type Tag struct{ Value string }
//	type Form struct {
//		Name string
//		Tags []Tag
//	}
//
//	formValidator := validation.NewValidator(func(f *validation.FieldScope[Form]) {
//		validation.Field(f, "name", func(f Form) string { return f.Name }, func(name *validation.FieldScope[string]) {
//			name.Rule("must not be blank", func(s string) bool { return strings.TrimSpace(s) != "" })
//		})
//		validation.Each(f, "tags", func(f Form) []Tag { return f.Tags }, func(tag *validation.FieldScope[Tag]) {
//			validation.Field(tag, "value", func(t Tag) string { return t.Value }, func(v *validation.FieldScope[string]) {
//				v.Rule("must not be blank", func(s string) bool { return strings.TrimSpace(s) != "" })
//			})
//		})
//	})
//
//	result := formValidator.Validate(form)
//	if result.IsInvalid() {
//		for _, err := range result.Errors() {
//			fmt.Printf("%s: %s\n", err.Path, err.Message) // e.g. tags[0].value: must not be blank
//		}
//	}
//
// Dependent checks short-circuit so a narrowing check always runs before a
// check that assumes the narrower form:
//
//	age.Dependent(func(c *validation.RuleChain[string]) {
//		c.Rule("must be numeric", isNumeric)
//		c.Rule("must be at least 18", func(s string) bool { n, _ := strconv.Atoi(s); return n >= 18 })
//	})
//
// # Error Handling
//
// Failures are collected, never thrown: every evaluation returns the complete
// ordered error list for its subtree. ValidationErrors implements the error
// interface, and ExtractValidationErrors / IsValidationError recover it from
// a conventional error value. The engine itself performs no I/O and never
// logs.
//
// # Concurrency
//
// Everything is a pure function over immutable inputs. A Validator is built
// once and is safe for concurrent reuse; each Validate call allocates its own
// short-lived scope tree and shares no state with other calls.
//
// # Companion Packages
//
// Package rules ships a catalog of ready-made, path-bound rules for strings,
// numbers, collections, formats, and UUIDs. Package i18n translates error
// messages by their machine codes from YAML catalogs.
package validation
