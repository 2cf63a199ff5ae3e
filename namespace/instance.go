package namespace

import (
	"fmt"
	"reflect"
)

// Instance is the dispatch wrapper that makes leaves installed on a Class
// behave as instance members. Method lookup goes through the class patch
// table (including bases), so members grafted after construction are visible
// on existing instances.
type Instance struct {
	class  *Class
	fields map[string]any
}

// New creates an instance bound to the class patch table.
func (c *Class) New() *Instance {
	return &Instance{class: c, fields: make(map[string]any)}
}

// Class returns the class the instance dispatches through.
func (o *Instance) Class() *Class { return o.class }

// Set binds an instance field, shadowing class members of the same name.
func (o *Instance) Set(name string, value any) {
	o.fields[name] = value
}

// Get retrieves an instance field or, failing that, a class leaf value.
func (o *Instance) Get(name string) (any, bool) {
	if value, ok := o.fields[name]; ok {
		return value, true
	}
	member, ok := o.class.Resolve(name)
	if !ok || !member.IsLeaf() {
		return nil, false
	}
	return member.Leaf, true
}

// Call invokes the named leaf as a method of the instance. When the
// callable's first parameter accepts an *Instance the receiver is prepended;
// a trailing error result is unwrapped.
func (o *Instance) Call(name string, args ...any) (any, error) {
	member, ok := o.class.Resolve(name)
	if !ok || !member.IsLeaf() {
		return nil, fmt.Errorf("%s has no method %s", o.class.Path(), name)
	}
	return invoke(o, name, member.Leaf, args)
}

var (
	instanceType = reflect.TypeOf((*Instance)(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

func invoke(recv *Instance, name string, callable any, args []any) (any, error) {
	fn := reflect.ValueOf(callable)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s.%s is not callable", recv.class.Path(), name)
	}
	fnType := fn.Type()

	in := make([]reflect.Value, 0, len(args)+1)
	if fnType.NumIn() > 0 && instanceType.AssignableTo(fnType.In(0)) {
		in = append(in, reflect.ValueOf(recv))
	}
	for _, arg := range args {
		if arg == nil {
			idx := len(in)
			if idx >= fnType.NumIn() && !fnType.IsVariadic() {
				break
			}
			in = append(in, reflect.New(paramType(fnType, idx)).Elem())
			continue
		}
		value := reflect.ValueOf(arg)
		if idx := len(in); idx < fnType.NumIn() || fnType.IsVariadic() {
			param := paramType(fnType, idx)
			if !value.Type().AssignableTo(param) {
				if !value.Type().ConvertibleTo(param) {
					return nil, fmt.Errorf("%s.%s: argument %d: %s is not assignable to %s",
						recv.class.Path(), name, idx, value.Type(), param)
				}
				value = value.Convert(param)
			}
		}
		in = append(in, value)
	}
	if fnType.IsVariadic() {
		if minIn := fnType.NumIn() - 1; len(in) < minIn {
			return nil, fmt.Errorf("%s.%s expects at least %d arguments, got %d",
				recv.class.Path(), name, minIn, len(in))
		}
	} else if len(in) != fnType.NumIn() {
		return nil, fmt.Errorf("%s.%s expects %d arguments, got %d",
			recv.class.Path(), name, fnType.NumIn(), len(in))
	}

	out := fn.Call(in)
	if len(out) == 0 {
		return nil, nil
	}
	last := out[len(out)-1]
	if last.Type().Implements(errorType) {
		var err error
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		if len(out) == 1 {
			return nil, err
		}
		return out[0].Interface(), err
	}
	return out[0].Interface(), nil
}

func paramType(fnType reflect.Type, idx int) reflect.Type {
	if fnType.IsVariadic() && idx >= fnType.NumIn()-1 {
		return fnType.In(fnType.NumIn() - 1).Elem()
	}
	return fnType.In(idx)
}
