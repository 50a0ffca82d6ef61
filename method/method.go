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

// Package method implements the fluent chain for method invocation:
// name -> optional signature assertions -> target -> invoke.
package method

import (
	"fmt"
	"reflect"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

var (
	// ErrEmptyName is returned when an empty method name is provided.
	ErrEmptyName = fmt.Errorf("frx(method): empty method name provided: %w", apis.ErrInvalidArgument)
	// ErrNilParameterType is returned when a nil parameter type is asserted.
	ErrNilParameterType = fmt.Errorf("frx(method): nil parameter type provided: %w", apis.ErrInvalidArgument)
	// ErrNilReturnType is returned when a nil return type is asserted.
	ErrNilReturnType = fmt.Errorf("frx(method): nil return type provided: %w", apis.ErrInvalidArgument)
	// ErrSignatureMismatch is returned when asserted parameter types differ
	// from the method's declared signature.
	ErrSignatureMismatch = fmt.Errorf("frx(method): parameter types do not match declared signature: %w", apis.ErrReflection)
	// ErrReturnMismatch is returned when the asserted return type differs
	// from the method's first declared result.
	ErrReturnMismatch = fmt.Errorf("frx(method): return type does not match declared signature: %w", apis.ErrReflection)
)

// Named starts a method chain for the given method name.
// cfg and reg are usually supplied by the frx entry point.
func Named(name string, cfg apis.Config, reg apis.Registry) Name {
	n := Name{sig: Signature{name: name, cfg: cfg, reg: reg}}
	if name == "" {
		n.sig.err = ErrEmptyName
	}
	return n
}

// Name is the first stage of the method chain: it captures the method name.
// Zero-argument void methods can go straight to In.
type Name struct {
	sig Signature
}

// WithParameterTypes asserts the method's declared parameter types, in
// declaration order, and returns the signature stage.
func (n Name) WithParameterTypes(ts ...reflect.Type) Signature {
	return n.sig.WithParameterTypes(ts...)
}

// WithReturnType asserts the method's first declared result type and
// returns the signature stage.
func (n Name) WithReturnType(t reflect.Type) Signature {
	return n.sig.WithReturnType(t)
}

// WithReturnTypeRef asserts the first declared result type from a type token.
func (n Name) WithReturnTypeRef(r typeref.TypeRef) Signature {
	return n.sig.WithReturnTypeRef(r)
}

// In captures the target and returns the terminal invoker stage.
func (n Name) In(target any) Invoker {
	return n.sig.In(target)
}

// Signature is the optional middle stage: name plus asserted parameter
// and/or return types.
type Signature struct {
	name      string
	params    []reflect.Type
	hasParams bool
	ret       reflect.Type
	cfg       apis.Config
	reg       apis.Registry
	err       error
}

// WithParameterTypes asserts the method's declared parameter types.
func (s Signature) WithParameterTypes(ts ...reflect.Type) Signature {
	if s.err != nil {
		return s
	}
	for _, t := range ts {
		if t == nil {
			s.err = ErrNilParameterType
			return s
		}
	}
	s.params = ts
	s.hasParams = true
	return s
}

// WithReturnType asserts the method's first declared result type.
func (s Signature) WithReturnType(t reflect.Type) Signature {
	if s.err != nil {
		return s
	}
	if t == nil {
		s.err = ErrNilReturnType
		return s
	}
	s.ret = t
	return s
}

// WithReturnTypeRef asserts the first declared result type from a type token.
func (s Signature) WithReturnTypeRef(r typeref.TypeRef) Signature {
	if s.err != nil {
		return s
	}
	if !r.IsValid() {
		s.err = ErrNilReturnType
		return s
	}
	return s.WithReturnType(r.Type())
}

// In captures the target and returns the terminal invoker stage.
// target may be an instance, a reflect.Value, or a reflect.Type /
// typeref.TypeRef addressing the instance bound in the registry.
func (s Signature) In(target any) Invoker {
	inv := Invoker{sig: s, target: target}
	if r, ok := target.(typeref.TypeRef); ok {
		if !r.IsValid() {
			if inv.sig.err == nil {
				inv.sig.err = uref.ErrNilTarget
			}
			return inv
		}
		inv.target = r.Type()
	}
	if inv.sig.err == nil && target == nil {
		inv.sig.err = uref.ErrNilTarget
	}
	return inv
}

// Invoker is the terminal stage of the method chain.
type Invoker struct {
	sig    Signature
	target any
}

// Invoke calls the method and returns its first result, or nil for
// void methods.
func (i Invoker) Invoke(args ...any) (any, error) {
	out, err := i.Call(args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

// Call calls the method and returns all results.
func (i Invoker) Call(args ...any) ([]any, error) {
	m, err := i.resolve()
	if err != nil {
		return nil, err
	}
	in, err := uref.CallArgs(m.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%w: call %s", err, i.sig.name)
	}

	results := m.Call(in)
	out := make([]any, len(results))
	for n, res := range results {
		out[n] = res.Interface()
	}
	return out, nil
}

// resolve locates the method on the target and validates any asserted
// signature against its declared one.
func (i Invoker) resolve() (reflect.Value, error) {
	if i.sig.err != nil {
		return reflect.Value{}, i.sig.err
	}

	v, err := uref.ResolveTarget(i.target, i.sig.reg)
	if err != nil {
		return reflect.Value{}, err
	}
	m, err := uref.MethodOn(v, i.sig.name)
	if err != nil {
		return reflect.Value{}, err
	}
	mt := m.Type()

	if i.sig.hasParams {
		if mt.NumIn() != len(i.sig.params) {
			return reflect.Value{}, fmt.Errorf("%w: %q declares %d parameters, %d asserted",
				ErrSignatureMismatch, i.sig.name, mt.NumIn(), len(i.sig.params))
		}
		for n, p := range i.sig.params {
			if mt.In(n) != p {
				return reflect.Value{}, fmt.Errorf("%w: %q parameter %d is %s, not %s",
					ErrSignatureMismatch, i.sig.name, n, mt.In(n), p)
			}
		}
	}
	if i.sig.ret != nil {
		if mt.NumOut() == 0 {
			return reflect.Value{}, fmt.Errorf("%w: %q declares no results", ErrReturnMismatch, i.sig.name)
		}
		if mt.Out(0) != i.sig.ret {
			return reflect.Value{}, fmt.Errorf("%w: %q returns %s, not %s",
				ErrReturnMismatch, i.sig.name, mt.Out(0), i.sig.ret)
		}
	}
	return m, nil
}
