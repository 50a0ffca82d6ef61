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

// Package constructor implements the fluent chain for instantiation:
// optional parameter types -> owning type -> new instance.
//
// The zero-argument form allocates via reflect.New and returns a *T, the
// new(T) analog. The parameterized form selects among constructor functions
// registered for the type by exact parameter signature.
package constructor

import (
	"fmt"
	"reflect"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil owning type is provided.
	ErrNilType = fmt.Errorf("frx(constructor): nil type provided: %w", apis.ErrInvalidArgument)
	// ErrNilParameterType is returned when a nil parameter type is asserted.
	ErrNilParameterType = fmt.Errorf("frx(constructor): nil parameter type provided: %w", apis.ErrInvalidArgument)
	// ErrBadTarget is returned when the owning type argument is neither a
	// reflect.Type nor a typeref.TypeRef.
	ErrBadTarget = fmt.Errorf("frx(constructor): owning type must be a reflect.Type or typeref.TypeRef: %w", apis.ErrInvalidArgument)
	// ErrNoConstructor is returned when no registered constructor matches
	// the asserted parameter signature.
	ErrNoConstructor = fmt.Errorf("frx(constructor): no constructor matches parameter types: %w", apis.ErrReflection)
	// ErrUnexpectedArgs is returned when arguments are supplied without an
	// asserted parameter signature.
	ErrUnexpectedArgs = fmt.Errorf("frx(constructor): arguments require WithParameterTypes: %w", apis.ErrReflection)
	// ErrConstructorFailed wraps a non-nil error returned by a constructor
	// function.
	ErrConstructorFailed = fmt.Errorf("frx(constructor): constructor returned error: %w", apis.ErrReflection)
)

// New starts a constructor chain.
// cfg and reg are usually supplied by the frx entry point.
func New(cfg apis.Config, reg apis.Registry) Target {
	return Target{cfg: cfg, reg: reg}
}

// Target is the first stage of the constructor chain. Zero-argument
// construction can go straight to In.
type Target struct {
	cfg apis.Config
	reg apis.Registry
	err error
}

// WithParameterTypes asserts the constructor's parameter types, in
// declaration order, and returns the parameter stage.
func (t Target) WithParameterTypes(ts ...reflect.Type) Params {
	p := Params{cfg: t.cfg, reg: t.reg, err: t.err}
	if p.err != nil {
		return p
	}
	for _, pt := range ts {
		if pt == nil {
			p.err = ErrNilParameterType
			return p
		}
	}
	p.params = ts
	p.hasParams = true
	return p
}

// In captures the owning type and returns the terminal invoker stage.
func (t Target) In(typ any) Invoker {
	return Params{cfg: t.cfg, reg: t.reg, err: t.err}.In(typ)
}

// Params is the middle stage: asserted constructor parameter types.
type Params struct {
	params    []reflect.Type
	hasParams bool
	cfg       apis.Config
	reg       apis.Registry
	err       error
}

// In captures the owning type and returns the terminal invoker stage.
// typ may be a reflect.Type or a typeref.TypeRef.
func (p Params) In(typ any) Invoker {
	inv := Invoker{params: p.params, hasParams: p.hasParams, cfg: p.cfg, reg: p.reg, err: p.err}
	if inv.err != nil {
		return inv
	}
	switch x := typ.(type) {
	case nil:
		inv.err = ErrNilType
	case reflect.Type:
		inv.owner = x
	case typeref.TypeRef:
		if !x.IsValid() {
			inv.err = ErrNilType
			break
		}
		inv.owner = x.Type()
	default:
		inv.err = fmt.Errorf("%w: got %T", ErrBadTarget, typ)
	}
	return inv
}

// Invoker is the terminal stage of the constructor chain.
type Invoker struct {
	owner     reflect.Type
	params    []reflect.Type
	hasParams bool
	cfg       apis.Config
	reg       apis.Registry
	err       error
}

// NewInstance constructs a new instance of the owning type.
//
// Without an asserted signature it prefers a registered zero-argument
// constructor and falls back to reflect.New, returning *T. With one, the
// matching registered constructor runs and its result is returned as-is.
func (i Invoker) NewInstance(args ...any) (any, error) {
	if i.err != nil {
		return nil, i.err
	}

	if !i.hasParams {
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: got %d arguments", ErrUnexpectedArgs, len(args))
		}
		if fn, ok := i.match(nil); ok {
			return i.construct(fn, nil)
		}
		return reflect.New(base(i.owner)).Interface(), nil
	}

	fn, ok := i.match(i.params)
	if !ok {
		return nil, fmt.Errorf("%w: %s%s", ErrNoConstructor, i.owner, signatureString(i.params))
	}
	in, err := uref.CallArgs(fn.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%w: new %s", err, i.owner)
	}
	return i.construct(fn, in)
}

// match finds a registered constructor whose parameters equal ts exactly.
func (i Invoker) match(ts []reflect.Type) (reflect.Value, bool) {
	if i.reg == nil {
		return reflect.Value{}, false
	}
	for _, fn := range i.reg.Constructors(i.owner) {
		ft := fn.Type()
		if ft.NumIn() != len(ts) {
			continue
		}
		same := true
		for n := range ts {
			if ft.In(n) != ts[n] {
				same = false
				break
			}
		}
		if same {
			return fn, true
		}
	}
	return reflect.Value{}, false
}

// construct runs fn and unpacks its (value[, error]) results.
func (i Invoker) construct(fn reflect.Value, in []reflect.Value) (any, error) {
	out := fn.Call(in)
	if len(out) == 2 {
		if cause, _ := out[1].Interface().(error); cause != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstructorFailed, cause)
		}
	}
	return out[0].Interface(), nil
}

// base strips a single pointer level so In(reflect.TypeFor[*T]()) and
// In(reflect.TypeFor[T]()) construct the same thing.
func base(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// signatureString renders an asserted parameter list for error messages.
func signatureString(ts []reflect.Type) string {
	s := "("
	for n, t := range ts {
		if n > 0 {
			s += ", "
		}
		s += t.String()
	}
	return s + ")"
}
