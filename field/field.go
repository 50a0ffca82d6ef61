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

// Package field implements the fluent chain for struct field access:
// name -> declared type -> target -> get/set.
package field

import (
	"fmt"
	"reflect"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

var (
	// ErrEmptyName is returned when an empty field name is provided.
	ErrEmptyName = fmt.Errorf("frx(field): empty field name provided: %w", apis.ErrInvalidArgument)
	// ErrNilType is returned when a nil field type is provided.
	ErrNilType = fmt.Errorf("frx(field): nil field type provided: %w", apis.ErrInvalidArgument)
	// ErrNotFound is returned when the target type declares no such field.
	ErrNotFound = fmt.Errorf("frx(field): field not found: %w", apis.ErrReflection)
	// ErrTypeMismatch is returned when the declared field type does not
	// match the asserted type.
	ErrTypeMismatch = fmt.Errorf("frx(field): field type mismatch: %w", apis.ErrReflection)
	// ErrUnexportedDisabled is returned when an unexported field is accessed
	// while AllowUnexported is off.
	ErrUnexportedDisabled = fmt.Errorf("frx(field): unexported field access disabled: %w", apis.ErrReflection)
	// ErrNotSettable is returned when Set targets a non-addressable value.
	ErrNotSettable = fmt.Errorf("frx(field): target is not addressable, pass a pointer: %w", apis.ErrReflection)
)

// Named starts a field chain for the given field name.
// cfg and reg are usually supplied by the frx entry point.
func Named(name string, cfg apis.Config, reg apis.Registry) Name {
	n := Name{name: name, cfg: cfg, reg: reg}
	if name == "" {
		n.err = ErrEmptyName
	}
	return n
}

// Name is the first stage of the field chain: it captures the field name.
type Name struct {
	name string
	cfg  apis.Config
	reg  apis.Registry
	err  error
}

// OfType captures the expected field type and returns the next stage.
func (n Name) OfType(t reflect.Type) Typed {
	typed := Typed{name: n.name, typ: t, cfg: n.cfg, reg: n.reg, err: n.err}
	if typed.err == nil && t == nil {
		typed.err = ErrNilType
	}
	return typed
}

// OfTypeRef captures the expected field type from a type token.
func (n Name) OfTypeRef(r typeref.TypeRef) Typed {
	if !r.IsValid() {
		typed := n.OfType(nil)
		return typed
	}
	return n.OfType(r.Type())
}

// Typed is the second stage: field name plus expected type.
type Typed struct {
	name string
	typ  reflect.Type
	cfg  apis.Config
	reg  apis.Registry
	err  error
}

// In captures the target and returns the terminal accessor stage.
// target may be an instance, a pointer to one, a reflect.Value, or a
// reflect.Type / typeref.TypeRef addressing the instance bound in the registry.
func (t Typed) In(target any) Accessor {
	a := Accessor{name: t.name, typ: t.typ, target: target, cfg: t.cfg, reg: t.reg, err: t.err}
	if r, ok := target.(typeref.TypeRef); ok {
		if !r.IsValid() {
			if a.err == nil {
				a.err = uref.ErrNilTarget
			}
			return a
		}
		a.target = r.Type()
	}
	if a.err == nil && target == nil {
		a.err = uref.ErrNilTarget
	}
	return a
}

// Accessor is the terminal stage of the field chain.
type Accessor struct {
	name   string
	typ    reflect.Type
	target any
	cfg    apis.Config
	reg    apis.Registry
	err    error
}

// Get returns the field's current value.
func (a Accessor) Get() (any, error) {
	f, err := a.resolve(false)
	if err != nil {
		return nil, err
	}
	return f.Interface(), nil
}

// Set assigns v to the field. The target must be addressable (a pointer,
// or a bound instance registered as a pointer).
func (a Accessor) Set(v any) error {
	f, err := a.resolve(true)
	if err != nil {
		return err
	}
	cv, err := uref.CoerceArg(v, f.Type())
	if err != nil {
		return fmt.Errorf("%w: field %q", err, a.name)
	}
	f.Set(cv)
	return nil
}

// resolve locates the field on the target and returns an accessible view.
// No reflective work happens if the chain already carries an error.
func (a Accessor) resolve(needAddr bool) (reflect.Value, error) {
	if a.err != nil {
		return reflect.Value{}, a.err
	}

	v, err := uref.ResolveTarget(a.target, a.reg)
	if err != nil {
		return reflect.Value{}, err
	}
	sv, err := uref.Indirect(v, a.cfg)
	if err != nil {
		return reflect.Value{}, err
	}
	if sv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s", uref.ErrNotStruct, sv.Type())
	}
	if needAddr && !sv.CanAddr() {
		return reflect.Value{}, fmt.Errorf("%w: field %q in %s", ErrNotSettable, a.name, sv.Type())
	}

	f := sv.FieldByName(a.name)
	if !f.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %q in %s", ErrNotFound, a.name, sv.Type())
	}
	if ft := f.Type(); ft != a.typ && !ft.AssignableTo(a.typ) {
		return reflect.Value{}, fmt.Errorf("%w: %q is %s, not %s", ErrTypeMismatch, a.name, ft, a.typ)
	}

	if !f.CanInterface() {
		if !a.cfg.AllowUnexported {
			return reflect.Value{}, fmt.Errorf("%w: %q in %s", ErrUnexportedDisabled, a.name, sv.Type())
		}
		if !f.CanAddr() {
			// Reads on a value target go through an addressable copy.
			sv = uref.Addressable(sv)
			f = sv.FieldByName(a.name)
		}
		f = uref.Expose(f)
	}
	return f, nil
}
