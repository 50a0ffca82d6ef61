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

// Package property implements the fluent chain for accessor-method access:
// name -> type -> target -> get/set.
//
// Properties are discovered by naming convention (Config.GetterPrefixes and
// Config.SetterPrefix), never by direct field access. A target missing either
// accessor fails the terminal call.
package property

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/config"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

var (
	// ErrEmptyName is returned when an empty property name is provided.
	ErrEmptyName = fmt.Errorf("frx(property): empty property name provided: %w", apis.ErrInvalidArgument)
	// ErrNilType is returned when a nil property type is provided.
	ErrNilType = fmt.Errorf("frx(property): nil property type provided: %w", apis.ErrInvalidArgument)
	// ErrNoGetter is returned when no conventional getter is discovered.
	ErrNoGetter = fmt.Errorf("frx(property): no getter found: %w", apis.ErrReflection)
	// ErrNoSetter is returned when no conventional setter is discovered.
	ErrNoSetter = fmt.Errorf("frx(property): no setter found: %w", apis.ErrReflection)
	// ErrTypeMismatch is returned when an accessor's declared type does not
	// match the asserted property type.
	ErrTypeMismatch = fmt.Errorf("frx(property): property type mismatch: %w", apis.ErrReflection)
)

// Named starts a property chain for the given property name.
// The name may be given in lower-case bean style ("name" discovers Name,
// GetName and SetName). cfg and reg are usually supplied by the frx entry point.
func Named(name string, cfg apis.Config, reg apis.Registry) Name {
	n := Name{name: name, cfg: cfg, reg: reg}
	if name == "" {
		n.err = ErrEmptyName
	}
	return n
}

// Name is the first stage of the property chain: it captures the property name.
type Name struct {
	name string
	cfg  apis.Config
	reg  apis.Registry
	err  error
}

// OfType captures the expected property type and returns the next stage.
func (n Name) OfType(t reflect.Type) Typed {
	typed := Typed{name: n.name, typ: t, cfg: n.cfg, reg: n.reg, err: n.err}
	if typed.err == nil && t == nil {
		typed.err = ErrNilType
	}
	return typed
}

// OfTypeRef captures the expected property type from a type token.
func (n Name) OfTypeRef(r typeref.TypeRef) Typed {
	if !r.IsValid() {
		return n.OfType(nil)
	}
	return n.OfType(r.Type())
}

// Typed is the second stage: property name plus expected type.
type Typed struct {
	name string
	typ  reflect.Type
	cfg  apis.Config
	reg  apis.Registry
	err  error
}

// In captures the target and returns the terminal accessor stage.
// target may be an instance, a reflect.Value, or a reflect.Type /
// typeref.TypeRef addressing the instance bound in the registry.
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

// Accessor is the terminal stage of the property chain.
type Accessor struct {
	name   string
	typ    reflect.Type
	target any
	cfg    apis.Config
	reg    apis.Registry
	err    error
}

// Get invokes the property's getter and returns its value.
func (a Accessor) Get() (any, error) {
	getter, _, err := a.resolve()
	if err != nil {
		return nil, err
	}
	return getter.Call(nil)[0].Interface(), nil
}

// Set invokes the property's setter with v.
func (a Accessor) Set(v any) error {
	_, setter, err := a.resolve()
	if err != nil {
		return err
	}
	cv, err := uref.CoerceArg(v, setter.Type().In(0))
	if err != nil {
		return fmt.Errorf("%w: property %q", err, a.name)
	}
	setter.Call([]reflect.Value{cv})
	return nil
}

// resolve discovers the getter/setter pair on the target. Both accessors
// must exist and agree with the asserted type, or the call fails.
func (a Accessor) resolve() (getter, setter reflect.Value, err error) {
	if a.err != nil {
		return reflect.Value{}, reflect.Value{}, a.err
	}

	v, err := uref.ResolveTarget(a.target, a.reg)
	if err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}

	prop := capitalize(a.name)

	getter, err = a.findGetter(v, prop)
	if err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}
	setter, err = a.findSetter(v, prop)
	if err != nil {
		return reflect.Value{}, reflect.Value{}, err
	}
	return getter, setter, nil
}

// findGetter tries each configured prefix in order and validates the
// discovered method's shape against the asserted type.
func (a Accessor) findGetter(v reflect.Value, prop string) (reflect.Value, error) {
	prefixes := a.cfg.GetterPrefixes
	if len(prefixes) == 0 {
		prefixes = config.DefaultGetterPrefixes()
	}
	for _, prefix := range prefixes {
		m, err := uref.MethodOn(v, prefix+prop)
		if err != nil {
			continue
		}
		mt := m.Type()
		if mt.NumIn() != 0 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt != a.typ && !rt.AssignableTo(a.typ) {
			return reflect.Value{}, fmt.Errorf("%w: getter %s returns %s, not %s",
				ErrTypeMismatch, prefix+prop, rt, a.typ)
		}
		return m, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: property %q on %s", ErrNoGetter, a.name, v.Type())
}

// findSetter validates the discovered method takes exactly the property type.
func (a Accessor) findSetter(v reflect.Value, prop string) (reflect.Value, error) {
	prefix := a.cfg.SetterPrefix
	if prefix == "" {
		prefix = config.DefaultSetterPrefix
	}
	m, err := uref.MethodOn(v, prefix+prop)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: property %q on %s", ErrNoSetter, a.name, v.Type())
	}
	mt := m.Type()
	if mt.NumIn() != 1 {
		return reflect.Value{}, fmt.Errorf("%w: property %q on %s", ErrNoSetter, a.name, v.Type())
	}
	if pt := mt.In(0); pt != a.typ && !a.typ.AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%w: setter %s takes %s, not %s",
			ErrTypeMismatch, prefix+prop, pt, a.typ)
	}
	return m, nil
}

// capitalize upper-cases the first rune: "name" -> "Name".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
