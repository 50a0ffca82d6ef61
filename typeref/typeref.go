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

package typeref

import (
	"fmt"
	"reflect"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/config"
	uref "dirpx.dev/frx/utils/reflect"
)

// ErrNilType is returned when a TypeRef is constructed from a nil type.
var ErrNilType = fmt.Errorf("frx(typeref): nil reflect.Type provided: %w", apis.ErrInvalidArgument)

// TypeRef is an immutable token for a fully-parameterized type. Go generics
// preserve the complete type at the call site, so New[T] captures what other
// runtimes lose to erasure; no subclassing workaround is needed.
//
// The zero TypeRef carries no type and is rejected wherever a chain accepts
// one.
type TypeRef struct {
	t reflect.Type
}

// New captures the complete type T, including any type arguments
// (e.g. New[map[string][]int]()).
func New[T any]() TypeRef {
	return TypeRef{t: reflect.TypeFor[T]()}
}

// FromType wraps an already-obtained reflect.Type.
// A nil type yields ErrNilType.
func FromType(t reflect.Type) (TypeRef, error) {
	if t == nil {
		return TypeRef{}, ErrNilType
	}
	return TypeRef{t: t}, nil
}

// IsValid reports whether the token carries a type.
func (r TypeRef) IsValid() bool {
	return r.t != nil
}

// Type returns the complete captured type, or nil for the zero token.
func (r TypeRef) Type() reflect.Type {
	return r.t
}

// Base returns the nearest named inner type after unwrapping containers,
// for comparisons where only the top-level named type matters.
func (r TypeRef) Base() (reflect.Type, error) {
	return uref.Base(r.t, config.DefaultConfig())
}

// Kind returns the captured type's kind, or reflect.Invalid for the zero token.
func (r TypeRef) Kind() reflect.Kind {
	if r.t == nil {
		return reflect.Invalid
	}
	return r.t.Kind()
}

// AssignableTo reports whether values of the captured type are assignable to u.
func (r TypeRef) AssignableTo(u reflect.Type) bool {
	if r.t == nil || u == nil {
		return false
	}
	return r.t.AssignableTo(u)
}

// String returns the captured type's string form, or "<nil>" for the zero token.
func (r TypeRef) String() string {
	if r.t == nil {
		return "<nil>"
	}
	return r.t.String()
}
