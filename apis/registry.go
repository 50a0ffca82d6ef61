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

package apis

import "reflect"

// Registry is the process-wide substitute for runtime class loading: it maps
// stable names to known types, keeps constructor functions per type, and can
// bind one canonical instance per type so chains may address members through
// a type reference alone. Keep it minimal so implementations can be lock-free
// or sync.Map-backed.
type Registry interface {
	// RegisterType associates a name with a reflect.Type.
	// Implementations should be idempotent; conflicting re-registrations fail.
	RegisterType(name string, t reflect.Type) error
	// LookupType returns the type registered under name, if present.
	LookupType(name string) (t reflect.Type, ok bool)

	// RegisterConstructor adds a constructor function for t. fn must be a
	// func returning t or *t, optionally with a trailing error result.
	// Multiple constructors per type are distinguished by parameter signature.
	RegisterConstructor(t reflect.Type, fn any) error
	// Constructors returns the constructor functions registered for t
	// (order is registration order; the slice is a copy).
	Constructors(t reflect.Type) []reflect.Value

	// BindInstance binds v as the canonical instance of t, making members of
	// t addressable through a type target. v must be of type t or *t.
	BindInstance(t reflect.Type, v any) error
	// Instance returns the canonical instance bound for t, if any.
	Instance(t reflect.Type) (v reflect.Value, ok bool)

	// Entries returns a snapshot of name associations for diagnostics/docs
	// (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered name associations.
	Count() int
	// Reset clears all registered entries, constructors, and instances.
	Reset()
}

// Entry is a single (name, type) association in a Registry snapshot.
type Entry struct {
	// Name is the registered name.
	Name string
	// Type is the associated reflect.Type.
	Type reflect.Type
}
