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

package registry

import (
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/frx/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = fmt.Errorf("frx(registry): nil reflect.Type provided: %w", apis.ErrInvalidArgument)
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = fmt.Errorf("frx(registry): empty name provided: %w", apis.ErrInvalidArgument)
	// ErrConflictingRegistration indicates an attempt to re-register
	// a name with a different type.
	ErrConflictingRegistration = fmt.Errorf("frx(registry): conflicting type registration: %w", apis.ErrInvalidArgument)
	// ErrNilInstance is returned when a nil instance is bound.
	ErrNilInstance = fmt.Errorf("frx(registry): nil instance provided: %w", apis.ErrInvalidArgument)
	// ErrInstanceTypeMismatch is returned when a bound instance is neither
	// of the given type nor a pointer to it.
	ErrInstanceTypeMismatch = fmt.Errorf("frx(registry): instance type does not match bound type: %w", apis.ErrInvalidArgument)
	// ErrBadConstructor is returned when a registered constructor is not a
	// function returning the constructed type (or a pointer to it), with an
	// optional trailing error result.
	ErrBadConstructor = fmt.Errorf("frx(registry): invalid constructor function: %w", apis.ErrInvalidArgument)
)

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeFor[error]()

// New constructs an empty Registry. The registry itself carries no
// configuration; all returned registries behave identically.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// names maps registered name to reflect.Type.
	names sync.Map // map[string]reflect.Type
	// ctors maps a base type to its registered constructor functions.
	ctors sync.Map // map[reflect.Type][]reflect.Value
	// insts maps a base type to its bound canonical instance.
	insts sync.Map // map[reflect.Type]reflect.Value
	// count tracks the number of registered name entries.
	count int
}

// RegisterType associates name with the given type.
// It is idempotent for the same (name,type) pair.
func (r *registry) RegisterType(name string, t reflect.Type) error {
	// Validate inputs early.
	if name == "" {
		return ErrEmptyName
	}
	if t == nil {
		return ErrNilType
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.names.Load(name); ok {
		if old.(reflect.Type) == t {
			return nil // idempotent re-registration
		}
		return ErrConflictingRegistration
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.names.Load(name); ok {
		if old.(reflect.Type) == t {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.names.Store(name, t)
	r.count++
	return nil
}

// LookupType returns the type registered under name, if present.
func (r *registry) LookupType(name string) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.names.Load(name); ok {
		return v.(reflect.Type), true
	}
	return nil, false
}

// RegisterConstructor adds a constructor function for t.
// fn must be a func whose first result is t or *t; a second result, if any,
// must be error.
func (r *registry) RegisterConstructor(t reflect.Type, fn any) error {
	if t == nil {
		return ErrNilType
	}
	if fn == nil {
		return fmt.Errorf("%w: nil function", ErrBadConstructor)
	}
	fv := reflect.ValueOf(fn)
	if err := checkConstructor(fv.Type(), t); err != nil {
		return err
	}

	base := baseType(t)
	r.mu.Lock()
	defer r.mu.Unlock()
	var existing []reflect.Value
	if v, ok := r.ctors.Load(base); ok {
		existing = v.([]reflect.Value)
	}
	// Copy-on-write so concurrent readers never observe a partial append.
	next := make([]reflect.Value, len(existing), len(existing)+1)
	copy(next, existing)
	next = append(next, fv)
	r.ctors.Store(base, next)
	return nil
}

// Constructors returns a copy of the constructor functions registered for t.
func (r *registry) Constructors(t reflect.Type) []reflect.Value {
	if t == nil {
		return nil
	}
	v, ok := r.ctors.Load(baseType(t))
	if !ok {
		return nil
	}
	fns := v.([]reflect.Value)
	out := make([]reflect.Value, len(fns))
	copy(out, fns)
	return out
}

// BindInstance binds v as the canonical instance of t.
// v must be of type t or *t. Re-binding replaces the previous instance.
func (r *registry) BindInstance(t reflect.Type, v any) error {
	if t == nil {
		return ErrNilType
	}
	if v == nil {
		return ErrNilInstance
	}
	vt := reflect.TypeOf(v)
	base := baseType(t)
	if baseType(vt) != base {
		return fmt.Errorf("%w: %s bound as %s", ErrInstanceTypeMismatch, vt, t)
	}
	r.insts.Store(base, reflect.ValueOf(v))
	return nil
}

// Instance returns the canonical instance bound for t, if any.
// Pointer and value forms of t address the same binding.
func (r *registry) Instance(t reflect.Type) (reflect.Value, bool) {
	if t == nil {
		return reflect.Value{}, false
	}
	if v, ok := r.insts.Load(baseType(t)); ok {
		return v.(reflect.Value), true
	}
	return reflect.Value{}, false
}

// Entries returns a snapshot of name associations (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.names.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name: key.(string),
			Type: value.(reflect.Type),
		})
		return true
	})
	return entries
}

// Count returns the number of registered name entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries, constructors, and instances.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = sync.Map{}
	r.ctors = sync.Map{}
	r.insts = sync.Map{}
	r.count = 0
}

// baseType strips a single pointer level so T and *T share one key.
func baseType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// checkConstructor validates a constructor signature against the type it
// constructs.
func checkConstructor(ft reflect.Type, t reflect.Type) error {
	if ft.Kind() != reflect.Func {
		return fmt.Errorf("%w: %s is not a func", ErrBadConstructor, ft)
	}
	if ft.IsVariadic() {
		return fmt.Errorf("%w: variadic constructors are not supported", ErrBadConstructor)
	}
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return fmt.Errorf("%w: second result of %s must be error", ErrBadConstructor, ft)
		}
	default:
		return fmt.Errorf("%w: %s must return the constructed value", ErrBadConstructor, ft)
	}
	if baseType(ft.Out(0)) != baseType(t) {
		return fmt.Errorf("%w: %s does not construct %s", ErrBadConstructor, ft, t)
	}
	return nil
}
