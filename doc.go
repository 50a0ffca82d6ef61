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

// Package frx provides a fluent convenience layer over Go reflection.
//
// frx is responsible for making reflective access read like ordinary method
// chains: look up a type by name, read or write a struct field, invoke a
// method, construct an instance, or go through getter/setter accessors,
// without spelling out the reflect plumbing at every call site.
//
// # Design
//
// Each chain is a short pipeline of small immutable stage values. A stage
// captures one more piece of information (name, then type, then target) and
// returns the next stage; nothing reflective happens until the terminal call:
//
//	v, err := frx.Field("Name").
//		OfType(reflect.TypeFor[string]()).
//		In(&widget).
//		Get()
//
// Stages validate their inputs as they are built. An empty name or nil type
// is recorded in the stage and every later stage carries it forward, so the
// terminal call reports the problem without performing any reflective work.
// Every frx error wraps one of exactly two kinds:
//
//   - apis.ErrInvalidArgument for failures detected at stage construction;
//   - apis.ErrReflection for failures of the terminal reflective operation,
//     with the underlying cause preserved in the wrap chain.
//
// Five chains are exposed, plus a nested-type lookup:
//
//   - Type(name): resolve a type name into a reflect.Type, optionally
//     asserting a supertype (LoadAs).
//   - Field(name): typed access to struct fields, exported or unexported,
//     including fields promoted from embedded structs.
//   - Method(name): invocation with optional parameter- and return-type
//     assertions against the declared signature.
//   - Constructor(): zero-argument allocation or registered constructor
//     functions selected by parameter signature.
//   - Property(name): access through conventional accessor pairs
//     (Name/GetName and SetName), discovered by naming convention and never
//     by direct field access.
//   - Inner(name): locate a nested type through a qualified registration or
//     the outer struct's fields.
//
// Generic type information never needs recovering: typeref.New[T]() captures
// the complete type at the call site, including type arguments, and any chain
// stage that takes a reflect.Type also takes a typeref.TypeRef.
//
// # Process state
//
// The core of frx is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: knobs that control access behavior (whether unexported fields
//     are reachable, indirection depth, accessor naming conventions).
//
//   - Registry: a process-wide mapping from stable names to Go types, plus
//     constructor functions and bound canonical instances per type. The
//     registry is the runtime's substitute for dynamic class loading: a name
//     can only resolve to a type the process has registered or a builtin
//     literal. It can be written to at runtime (RegisterType,
//     RegisterConstructor, BindInstance).
//
//   - Resolver: a read-only object that answers "what type is known under
//     this name?". The resolver tries strategies in priority order:
//     1. An explicit Registry entry.
//     2. Builtin type literals ("int", "*string", "[]byte",
//     "map[string]int", "chan bool", ...).
//     Resolver is expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Registry and
//     Resolver instances for a given Config (and optional extension data).
//     The Builder is also allowed to reuse state from previous instances.
//
// The package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state and
// atomically swap it in. Entry points (Type, Field, Method, Constructor,
// Property, Inner) capture the snapshot they were created under, so chain
// lookups are lock-free on the hot path and a chain in flight always sees a
// consistent configuration.
//
// # Static-member analog
//
// Go types have no static members. The registry can bind one canonical
// instance per type:
//
//	frx.BindInstance(reflect.TypeFor[Counter](), &sharedCounter)
//
// after which any chain may address members through the type alone:
//
//	n, err := frx.Field("Count").
//		OfType(reflect.TypeFor[int]()).
//		In(reflect.TypeFor[Counter]()).
//		Get()
//
// behaving identically to access through the bound instance itself.
//
// # Concurrency model
//
// Reads (entry points, Config, Registry, Resolver, ResolveType) are
// wait-free: they load the current *state atomically and never take locks.
// Writes (SetConfig, SetBuilder, SetExt, SetRegistry, SetResolver, etc.)
// take a short build mutex, assemble a brand-new state struct, and then
// publish it via an atomic pointer swap.
//
// Chain stages themselves are immutable single-use values with no shared
// state between invocations; frx adds no synchronization around the reflected
// targets, which remain owned by the caller.
//
// # Pinning
//
// frx supports the concept of "pinning" a layer:
//
//   - When you call SetRegistry(reg), that exact Registry becomes the
//     process-wide registry and is considered pinned. Further calls to
//     SetConfig() will not attempt to rebuild a new Registry until you
//     explicitly UnpinRegistry().
//
//   - When you call SetResolver(res), that Resolver is pinned and will not
//     be rebuilt automatically until UnpinResolver().
//
// Pinning is there for advanced scenarios where you want full control over
// one layer while still letting other layers evolve.
//
// # Usage pattern in a binary
//
// A typical component does:
//
//  1. Let frx init with the default builder/config.
//
//  2. Register the types it wants addressable by name up front:
//
//     frx.RegisterType("acme.Widget", reflect.TypeFor[Widget]())
//     frx.RegisterConstructor(reflect.TypeFor[Widget](), NewWidget)
//
//  3. Use the fluent chains wherever reflective access is needed.
//
//  4. In tests, call frx.SetAll(...) to get deterministic snapshots and to
//     inject a mock Builder.
//
// # Scope
//
// frx is intentionally small. It does not serialize, inject dependencies,
// generate code, or cache member lookups. Every terminal call is a direct
// pass through the reflect package; failures surface as wrapped errors and
// handling them is the caller's job.
package frx
