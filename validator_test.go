package validation_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation"
)

func newFormValidator() *validation.Validator[form] {
	return validation.NewValidator(func(f *validation.FieldScope[form]) {
		validation.Field(f, "name", func(f form) string { return f.Name }, func(name *validation.FieldScope[string]) {
			name.Rule("must not be blank", notBlank)
		})
		validation.Each(f, "tags", func(f form) []tag { return f.Tags }, func(tg *validation.FieldScope[tag]) {
			validation.Field(tg, "value", func(tv tag) string { return tv.Value }, func(v *validation.FieldScope[string]) {
				v.Rule("must not be blank", notBlank)
			})
		})
	})
}

func TestValidator_Validate(t *testing.T) {
	t.Run("valid target passes and carries the value", func(t *testing.T) {
		v := newFormValidator()
		target := form{Name: "alice", Tags: []tag{{Value: "ok"}}}
		res := v.Validate(target)
		assert.True(t, res.IsValid())
		got, ok := res.Value()
		assert.True(t, ok)
		assert.Equal(t, target, got)
	})

	t.Run("reports every failure with exact paths in declaration order", func(t *testing.T) {
		v := newFormValidator()
		res := v.Validate(form{Name: "", Tags: []tag{{Value: ""}, {Value: "ok"}, {Value: " "}}})

		require.Len(t, res.Errors(), 3)
		assert.Equal(t, "name", res.Errors()[0].Path.String())
		assert.Equal(t, "must not be blank", res.Errors()[0].Message)
		assert.Equal(t, "tags[0].value", res.Errors()[1].Path.String())
		assert.Equal(t, "must not be blank", res.Errors()[1].Message)
		assert.Equal(t, "tags[2].value", res.Errors()[2].Path.String())
		assert.Equal(t, "must not be blank", res.Errors()[2].Message)
	})

	t.Run("root rules express cross-field invariants at the empty path", func(t *testing.T) {
		v := validation.NewValidator(func(f *validation.FieldScope[form]) {
			f.Rule("name and age must not both be empty", func(f form) bool {
				return f.Name != "" || f.Age != ""
			})
		})
		res := v.Validate(form{})
		require.Len(t, res.Errors(), 1)
		assert.True(t, res.Errors()[0].Path.IsRoot())
	})

	t.Run("validating the same target twice yields identical error lists", func(t *testing.T) {
		v := newFormValidator()
		target := form{Name: "", Tags: []tag{{Value: ""}, {Value: "ok"}}}
		first := v.Validate(target).Errors()
		second := v.Validate(target).Errors()
		assert.Equal(t, first, second)
	})

	t.Run("nil build block accepts everything", func(t *testing.T) {
		v := validation.NewValidator[form](nil)
		assert.True(t, v.Validate(form{}).IsValid())
	})
}

func TestValidator_ConcurrentReuse(t *testing.T) {
	v := newFormValidator()
	targets := []form{
		{Name: "alice", Tags: []tag{{Value: "ok"}}},
		{Name: "", Tags: []tag{{Value: ""}}},
		{Name: "bob"},
		{Name: " ", Tags: []tag{{Value: "x"}, {Value: ""}}},
	}

	var wg sync.WaitGroup
	for range 50 {
		for i, target := range targets {
			wg.Add(1)
			go func(i int, target form) {
				defer wg.Done()
				res := v.Validate(target)
				// Each call must see only its own target's failures.
				switch i {
				case 0:
					assert.True(t, res.IsValid())
				case 1:
					assert.Len(t, res.Errors(), 2)
				case 2:
					assert.True(t, res.IsValid())
				case 3:
					assert.Len(t, res.Errors(), 2)
				}
			}(i, target)
		}
	}
	wg.Wait()
}
