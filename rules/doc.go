// Package rules provides a catalog of ready-made, path-bound validation rules
// for common data types such as strings, numbers, collections, formats, and
// UUIDs, built on the core engine in package validation.
//
// Every exported function constructs and returns a validation.Rule bound to a
// property path; there is no hidden global state, therefore the package is
// completely stateless, allocation-light, and goroutine-safe. Each rule
// carries a stable machine code (the Code* constants) so failures can be
// translated with package i18n.
//
// # Architecture
//
// Each source file groups a family of rules for a specific domain
// (`string_rules.go`, `numeric_rules.go`, `format_rules.go`, etc.). Rules
// compose with the engine's combinators exactly like hand-written ones:
// attach them to a scope with With, sequence them with AndThen, or run them
// directly against a value.
//
// # Usage
//
//	validation.Field(f, "email", func(f Form) string { return f.Email }, func(email *validation.FieldScope[string]) {
//		email.With(rules.NotBlank(email.Path()))
//		email.With(rules.Email(email.Path()))
//	})
//
// # Performance Considerations
//
// All helpers are simple comparisons or pattern checks. Long-running or
// expensive validations (e.g. network calls) should be implemented outside
// this package and adapted into a Rule where appropriate.
package rules
