package golang_test

import (
	"context"
	"errors"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/grafter/golang"
	"github.com/viant/grafter/graft"
	"github.com/viant/grafter/namespace"
)

func TestLoad(t *testing.T) {
	root, err := golang.Load(context.Background(), "testdata/demo")
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "demo", root.Path())
	assert.Equal(t, namespace.KindModule, root.Kind())

	member, ok := root.Lookup("Version")
	assert.True(t, ok)
	_, isObject := member.Leaf.(types.Object)
	assert.True(t, isObject, "package-scope leaves hold their types.Object")

	_, ok = root.Lookup("New")
	assert.True(t, ok)
	_, ok = root.Lookup("helper")
	assert.False(t, ok, "unexported objects are excluded")
	_, ok = root.Lookup("internalCounter")
	assert.False(t, ok)

	classMember, ok := root.Lookup("Greeter")
	if !assert.True(t, ok) || !assert.True(t, classMember.IsContainer()) {
		return
	}
	class := classMember.Container
	assert.Equal(t, namespace.KindClass, class.Kind())
	assert.Equal(t, "demo.Greeter", class.Path())
	_, ok = class.Lookup("Greet")
	assert.True(t, ok)
	_, ok = class.Lookup("reset")
	assert.False(t, ok, "unexported methods are excluded")

	subMember, ok := root.Lookup("sub")
	if !assert.True(t, ok) || !assert.True(t, subMember.IsContainer()) {
		return
	}
	assert.Equal(t, namespace.KindModule, subMember.Container.Kind())
	assert.Equal(t, "demo.sub", subMember.Container.Path())
	_, ok = subMember.Container.Lookup("Flag")
	assert.True(t, ok)
}

func TestLoad_MissingModule(t *testing.T) {
	_, err := golang.Load(context.Background(), "testdata/nowhere")
	assert.NotNil(t, err)
}

func TestLoad_AsPatchSource(t *testing.T) {
	source, err := golang.Load(context.Background(), "testdata/demo")
	if !assert.Nil(t, err) {
		return
	}

	target := namespace.NewModule("app")
	report, err := graft.Patch(source, target)
	if !assert.Nil(t, err) {
		return
	}
	assert.True(t, report.Clean())

	member, ok := target.Lookup("Version")
	assert.True(t, ok)
	object, isObject := member.Leaf.(types.Object)
	if assert.True(t, isObject) {
		assert.Equal(t, "Version", object.Name())
	}
	classMember, ok := target.Lookup("Greeter")
	if assert.True(t, ok) && assert.True(t, classMember.IsContainer()) {
		assert.Equal(t, "app.Greeter", classMember.Container.Path(),
			"classes re-create under the target path")
	}
}

func TestLoad_IsReadOnly(t *testing.T) {
	loaded, err := golang.Load(context.Background(), "testdata/demo")
	if !assert.Nil(t, err) {
		return
	}
	source := namespace.NewModule("ext")
	_, err = graft.Patch(source, loaded)
	var rootErr *graft.RootTypeError
	assert.True(t, errors.As(err, &rootErr), "a loaded Go module is only ever a source")
}
