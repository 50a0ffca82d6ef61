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

// Package loader implements the fluent chain for resolving type names:
// name -> optional resolver -> loaded type.
//
// Go loads no code at runtime, so names resolve against the process resolver
// chain (explicit registrations first, then builtin type literals). A
// caller-supplied resolver plays the role other runtimes give a class loader.
package loader

import (
	"fmt"
	"reflect"

	"dirpx.dev/frx/apis"
)

var (
	// ErrEmptyName is returned when an empty type name is provided.
	ErrEmptyName = fmt.Errorf("frx(loader): empty type name provided: %w", apis.ErrInvalidArgument)
	// ErrNilResolver is returned when a nil resolver is supplied.
	ErrNilResolver = fmt.Errorf("frx(loader): nil resolver provided: %w", apis.ErrInvalidArgument)
	// ErrNilSupertype is returned when LoadAs is given a nil supertype.
	ErrNilSupertype = fmt.Errorf("frx(loader): nil supertype provided: %w", apis.ErrInvalidArgument)
	// ErrIncompatibleType is returned when a loaded type is not assignable
	// to the asserted supertype.
	ErrIncompatibleType = fmt.Errorf("frx(loader): loaded type is incompatible with asserted supertype: %w", apis.ErrReflection)
)

// Named starts a type-loader chain for the given type name.
// cfg and res are usually supplied by the frx entry point.
func Named(name string, cfg apis.Config, res apis.Resolver) Name {
	n := Name{name: name, cfg: cfg, res: res}
	if name == "" {
		n.err = ErrEmptyName
	}
	return n
}

// Name is the single pre-terminal stage of the loader chain.
type Name struct {
	name string
	cfg  apis.Config
	res  apis.Resolver
	err  error
}

// WithResolver substitutes a caller-supplied resolver for the process one.
func (n Name) WithResolver(res apis.Resolver) Name {
	if n.err != nil {
		return n
	}
	if res == nil {
		n.err = ErrNilResolver
		return n
	}
	n.res = res
	return n
}

// Load resolves the name into a type.
func (n Name) Load() (reflect.Type, error) {
	if n.err != nil {
		return nil, n.err
	}
	if n.res == nil {
		return nil, ErrNilResolver
	}
	return n.res.ResolveType(n.name, n.cfg)
}

// LoadAs resolves the name and asserts the result is assignable to super
// (which includes implementing it when super is an interface type).
func (n Name) LoadAs(super reflect.Type) (reflect.Type, error) {
	if n.err != nil {
		return nil, n.err
	}
	if super == nil {
		return nil, ErrNilSupertype
	}
	t, err := n.Load()
	if err != nil {
		return nil, err
	}
	if t != super && !t.AssignableTo(super) {
		return nil, fmt.Errorf("%w: %s as %s", ErrIncompatibleType, t, super)
	}
	return t, nil
}
