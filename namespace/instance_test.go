package namespace_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/grafter/namespace"
)

func TestInstance_Call(t *testing.T) {
	class := namespace.NewClass("app.Z")
	class.SetLeaf("f", func() string { return "f" })
	class.SetLeaf("hello", func(self *namespace.Instance) string {
		name, _ := self.Get("name")
		return "hello " + name.(string)
	})
	class.SetLeaf("upper", func(self *namespace.Instance, value string) string {
		return strings.ToUpper(value)
	})
	class.SetLeaf("fail", func() (string, error) {
		return "", errors.New("boom")
	})
	class.SetLeaf("value", 42)
	class.SetLeaf("sum", func(first int, rest ...int) int {
		total := first
		for _, value := range rest {
			total += value
		}
		return total
	})

	instance := class.New()
	instance.Set("name", "world")

	testCases := []struct {
		description string
		method      string
		args        []any
		expect      any
		expectErr   string
	}{
		{
			description: "no receiver, no args",
			method:      "f",
			expect:      "f",
		},
		{
			description: "receiver prepended",
			method:      "hello",
			expect:      "hello world",
		},
		{
			description: "receiver plus argument",
			method:      "upper",
			args:        []any{"abc"},
			expect:      "ABC",
		},
		{
			description: "trailing error unwrapped",
			method:      "fail",
			expectErr:   "boom",
		},
		{
			description: "missing method",
			method:      "missing",
			expectErr:   "has no method",
		},
		{
			description: "non callable leaf",
			method:      "value",
			expectErr:   "is not callable",
		},
		{
			description: "arity mismatch",
			method:      "upper",
			args:        []any{"a", "b"},
			expectErr:   "expects",
		},
		{
			description: "variadic with trailing values",
			method:      "sum",
			args:        []any{1, 2, 3},
			expect:      6,
		},
		{
			description: "variadic with no trailing values",
			method:      "sum",
			args:        []any{1},
			expect:      1,
		},
		{
			description: "variadic below minimum arity",
			method:      "sum",
			expectErr:   "expects at least 1 arguments",
		},
	}

	for _, testCase := range testCases {
		actual, err := instance.Call(testCase.method, testCase.args...)
		if testCase.expectErr != "" {
			if assert.NotNil(t, err, testCase.description) {
				assert.Contains(t, err.Error(), testCase.expectErr, testCase.description)
			}
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestInstance_CallInherited(t *testing.T) {
	base := namespace.NewClass("app.Base")
	base.SetLeaf("g", func() string { return "g" })
	class := namespace.NewClass("app.Z", base)

	instance := class.New()
	actual, err := instance.Call("g")
	assert.Nil(t, err)
	assert.Equal(t, "g", actual)
}

func TestInstance_MethodGraftedAfterConstruction(t *testing.T) {
	class := namespace.NewClass("app.Z")
	instance := class.New()

	_, err := instance.Call("f")
	assert.NotNil(t, err)

	class.SetLeaf("f", func() string { return "f" })
	actual, err := instance.Call("f")
	assert.Nil(t, err)
	assert.Equal(t, "f", actual, "existing instances see newly grafted members")
}

func TestInstance_Get(t *testing.T) {
	class := namespace.NewClass("app.Z")
	class.SetLeaf("shared", "class level")
	instance := class.New()

	value, ok := instance.Get("shared")
	assert.True(t, ok)
	assert.Equal(t, "class level", value)

	instance.Set("shared", "instance level")
	value, ok = instance.Get("shared")
	assert.True(t, ok)
	assert.Equal(t, "instance level", value, "instance fields shadow class leaves")

	_, ok = instance.Get("missing")
	assert.False(t, ok)
}
