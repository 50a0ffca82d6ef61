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

package registry_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/registry"
)

type T1 struct {
	N int
}

type T2 struct{}

func TestRegisterType_IdempotentAndLookup(t *testing.T) {
	reg := registry.New()

	err := reg.RegisterType("domain.T1", reflect.TypeFor[T1]())
	require.NoError(t, err)

	// idempotent re-register with same type
	err = reg.RegisterType("domain.T1", reflect.TypeFor[T1]())
	require.NoError(t, err)

	got, ok := reg.LookupType("domain.T1")
	require.True(t, ok)
	require.Equal(t, reflect.TypeFor[T1](), got)

	require.Equal(t, 1, reg.Count())
}

func TestRegisterType_Conflict(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.RegisterType("domain.T1", reflect.TypeFor[T1]()))

	// Same name, different type -> conflict
	err := reg.RegisterType("domain.T1", reflect.TypeFor[T2]())
	require.ErrorIs(t, err, registry.ErrConflictingRegistration)
	require.ErrorIs(t, err, apis.ErrInvalidArgument)
}

func TestRegisterType_Errors(t *testing.T) {
	reg := registry.New()

	require.ErrorIs(t, reg.RegisterType("", reflect.TypeFor[T1]()), registry.ErrEmptyName)
	require.ErrorIs(t, reg.RegisterType("x", nil), registry.ErrNilType)
}

func TestLookupType_Misses(t *testing.T) {
	reg := registry.New()

	_, ok := reg.LookupType("")
	require.False(t, ok)
	_, ok = reg.LookupType("nope")
	require.False(t, ok)
}

func TestRegisterConstructor_SignatureValidation(t *testing.T) {
	reg := registry.New()
	t1 := reflect.TypeFor[T1]()

	tests := []struct {
		name string
		fn   any
		err  error
	}{
		{name: "value result", fn: func(n int) T1 { return T1{N: n} }, err: nil},
		{name: "pointer result", fn: func() *T1 { return &T1{} }, err: nil},
		{name: "with error", fn: func(n int) (T1, error) { return T1{N: n}, nil }, err: nil},
		{name: "nil func", fn: nil, err: registry.ErrBadConstructor},
		{name: "not a func", fn: 42, err: registry.ErrBadConstructor},
		{name: "wrong result type", fn: func() T2 { return T2{} }, err: registry.ErrBadConstructor},
		{name: "no results", fn: func() {}, err: registry.ErrBadConstructor},
		{name: "second result not error", fn: func() (T1, int) { return T1{}, 0 }, err: registry.ErrBadConstructor},
		{name: "variadic", fn: func(ns ...int) T1 { return T1{} }, err: registry.ErrBadConstructor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := reg.RegisterConstructor(t1, tc.fn)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}

	require.Len(t, reg.Constructors(t1), 3)
	// Pointer and value forms of the type share the constructor set.
	require.Len(t, reg.Constructors(reflect.TypeFor[*T1]()), 3)
}

func TestBindInstance_AndLookup(t *testing.T) {
	reg := registry.New()
	t1 := reflect.TypeFor[T1]()

	inst := &T1{N: 7}
	require.NoError(t, reg.BindInstance(t1, inst))

	v, ok := reg.Instance(t1)
	require.True(t, ok)
	require.Same(t, inst, v.Interface())

	// The pointer form addresses the same binding.
	v, ok = reg.Instance(reflect.TypeFor[*T1]())
	require.True(t, ok)
	require.Same(t, inst, v.Interface())
}

func TestBindInstance_Errors(t *testing.T) {
	reg := registry.New()
	t1 := reflect.TypeFor[T1]()

	require.ErrorIs(t, reg.BindInstance(nil, &T1{}), registry.ErrNilType)
	require.ErrorIs(t, reg.BindInstance(t1, nil), registry.ErrNilInstance)

	err := reg.BindInstance(t1, T2{})
	require.ErrorIs(t, err, registry.ErrInstanceTypeMismatch)
	require.True(t, errors.Is(err, apis.ErrInvalidArgument))
}

func TestReset(t *testing.T) {
	reg := registry.New()
	t1 := reflect.TypeFor[T1]()

	require.NoError(t, reg.RegisterType("domain.T1", t1))
	require.NoError(t, reg.RegisterConstructor(t1, func() T1 { return T1{} }))
	require.NoError(t, reg.BindInstance(t1, &T1{}))

	reg.Reset()

	require.Equal(t, 0, reg.Count())
	require.Empty(t, reg.Entries())
	require.Empty(t, reg.Constructors(t1))
	_, ok := reg.Instance(t1)
	require.False(t, ok)
}

func TestEntries_Snapshot(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.RegisterType("domain.T1", reflect.TypeFor[T1]()))
	require.NoError(t, reg.RegisterType("domain.T2", reflect.TypeFor[T2]()))

	entries := reg.Entries()
	require.Len(t, entries, 2)

	byName := map[string]reflect.Type{}
	for _, e := range entries {
		byName[e.Name] = e.Type
	}
	require.Equal(t, reflect.TypeFor[T1](), byName["domain.T1"])
	require.Equal(t, reflect.TypeFor[T2](), byName["domain.T2"])
}
