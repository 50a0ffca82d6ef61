/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reflect

import (
	"fmt"
	"reflect"
	"unsafe"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/config"
)

var (
	// ErrNilTarget is returned when a chain target is nil or invalid.
	ErrNilTarget = fmt.Errorf("frx(reflect): nil target provided: %w", apis.ErrInvalidArgument)
	// ErrNoBoundInstance is returned when a type target has no instance
	// bound in the registry.
	ErrNoBoundInstance = fmt.Errorf("frx(reflect): no instance bound for type target: %w", apis.ErrReflection)
	// ErrMaxIndirect is returned when pointer/interface unwrapping exceeds
	// the configured depth.
	ErrMaxIndirect = fmt.Errorf("frx(reflect): target indirection exceeds MaxIndirect: %w", apis.ErrReflection)
	// ErrNotStruct is returned when a struct-member operation targets a
	// non-struct value.
	ErrNotStruct = fmt.Errorf("frx(reflect): target is not a struct: %w", apis.ErrReflection)
	// ErrMethodNotFound is returned when no method with the requested name
	// exists in the target's method set.
	ErrMethodNotFound = fmt.Errorf("frx(reflect): method not found: %w", apis.ErrReflection)
	// ErrNeedsPointer is returned when the requested method exists only in
	// the pointer method set but the target is a plain value.
	ErrNeedsPointer = fmt.Errorf("frx(reflect): method requires pointer receiver: %w", apis.ErrReflection)
	// ErrArgumentCount is returned when a call receives the wrong number of
	// arguments.
	ErrArgumentCount = fmt.Errorf("frx(reflect): incorrect number of arguments: %w", apis.ErrReflection)
	// ErrBadArgument is returned when an argument value is not assignable to
	// the declared parameter type.
	ErrBadArgument = fmt.Errorf("frx(reflect): invalid argument value: %w", apis.ErrReflection)
)

// ResolveTarget coerces a chain target into a reflect.Value.
//
// Accepted targets:
//   - a reflect.Value: used as-is;
//   - a reflect.Type: resolved to the instance bound for that type in reg
//     (the static-member analog);
//   - anything else: treated as a live instance.
func ResolveTarget(target any, reg apis.Registry) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, ErrNilTarget
	}
	switch x := target.(type) {
	case reflect.Value:
		if !x.IsValid() {
			return reflect.Value{}, ErrNilTarget
		}
		return x, nil
	case reflect.Type:
		if reg == nil {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoBoundInstance, x)
		}
		v, ok := reg.Instance(x)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoBoundInstance, x)
		}
		return v, nil
	default:
		return reflect.ValueOf(target), nil
	}
}

// Indirect unwraps pointers and interfaces up to cfg.MaxIndirect.
// A nil pointer or interface along the way yields ErrNilTarget.
func Indirect(v reflect.Value, cfg apis.Config) (reflect.Value, error) {
	maxIndirect := cfg.MaxIndirect
	if maxIndirect <= 0 {
		maxIndirect = config.DefaultMaxIndirect
	}
	for i := 0; i < maxIndirect; i++ {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, ErrNilTarget
			}
			v = v.Elem()
		default:
			return v, nil
		}
	}
	if k := v.Kind(); k != reflect.Pointer && k != reflect.Interface {
		return v, nil
	}
	return reflect.Value{}, ErrMaxIndirect
}

// Addressable returns v itself when addressable, or an addressable copy
// otherwise. Writes into the copy are not visible to the original.
func Addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// Expose returns a read-write view of f that ignores field export rules.
// f must be addressable; exported fields are returned unchanged.
func Expose(f reflect.Value) reflect.Value {
	if f.CanInterface() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

// MethodOn locates name in the method set of v. When v is addressable, the
// pointer method set is consulted as well. A method reachable only through
// *T while v is a plain value yields ErrNeedsPointer.
func MethodOn(v reflect.Value, name string) (reflect.Value, error) {
	if m := v.MethodByName(name); m.IsValid() {
		return m, nil
	}
	if v.CanAddr() {
		if m := v.Addr().MethodByName(name); m.IsValid() {
			return m, nil
		}
	}
	if v.Kind() != reflect.Pointer {
		if _, ok := reflect.PointerTo(v.Type()).MethodByName(name); ok {
			return reflect.Value{}, fmt.Errorf("%w: %q on %s", ErrNeedsPointer, name, v.Type())
		}
	}
	return reflect.Value{}, fmt.Errorf("%w: %q on %s", ErrMethodNotFound, name, v.Type())
}

// CoerceArg converts one call argument into the declared parameter type t.
// An untyped nil materializes as the zero value for nilable kinds.
func CoerceArg(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
			reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrBadArgument, t)
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrBadArgument, v.Type(), t)
	}
	return v, nil
}

// CallArgs validates the argument count against fn's signature and coerces
// every argument to its declared parameter type. Variadic signatures accept
// len(args) >= NumIn()-1, with trailing arguments coerced to the variadic
// element type.
func CallArgs(fn reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := fn.NumIn()
	if fn.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("%w: found %d but expected at least %d", ErrArgumentCount, len(args), numIn-1)
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("%w: found %d but expected %d", ErrArgumentCount, len(args), numIn)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		t := fn.In(min(i, numIn-1))
		if fn.IsVariadic() && i >= numIn-1 {
			t = fn.In(numIn - 1).Elem()
		}
		v, err := CoerceArg(arg, t)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d", err, i)
		}
		in[i] = v
	}
	return in, nil
}
