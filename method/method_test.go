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

package method_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/config"
	"dirpx.dev/frx/method"
	"dirpx.dev/frx/registry"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

type counter struct {
	n int
}

func (c counter) Value() int { return c.n }

func (c *counter) Add(delta int) int {
	c.n += delta
	return c.n
}

func (c counter) Describe(prefix string, tags ...string) (string, int) {
	return prefix + strings.Join(tags, ","), c.n
}

func (c counter) Ping() {}

func cfg() apis.Config { return config.DefaultConfig() }

func TestInvoke(t *testing.T) {
	c := &counter{n: 10}

	got, err := method.Named("Add", cfg(), nil).
		WithParameterTypes(reflect.TypeFor[int]()).
		WithReturnType(reflect.TypeFor[int]()).
		In(c).
		Invoke(5)
	require.NoError(t, err)
	require.Equal(t, 15, got)
	require.Equal(t, 15, c.n)
}

func TestInvoke_NoAssertions(t *testing.T) {
	got, err := method.Named("Value", cfg(), nil).
		In(counter{n: 3}).
		Invoke()
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestInvoke_Void(t *testing.T) {
	got, err := method.Named("Ping", cfg(), nil).
		In(counter{}).
		Invoke()
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCall_MultipleResults(t *testing.T) {
	out, err := method.Named("Describe", cfg(), nil).
		In(counter{n: 2}).
		Call("t:", "a", "b")
	require.NoError(t, err)
	require.Equal(t, []any{"t:a,b", 2}, out)
}

func TestVariadic_NoTrailingArgs(t *testing.T) {
	out, err := method.Named("Describe", cfg(), nil).
		In(counter{}).
		Call("x")
	require.NoError(t, err)
	require.Equal(t, "x", out[0])
}

func TestReturnTypeRef(t *testing.T) {
	got, err := method.Named("Value", cfg(), nil).
		WithReturnTypeRef(typeref.New[int]()).
		In(counter{n: 9}).
		Invoke()
	require.NoError(t, err)
	require.Equal(t, 9, got)
}

func TestTypeTarget_UsesBoundInstance(t *testing.T) {
	reg := registry.New()
	c := &counter{n: 1}
	require.NoError(t, reg.BindInstance(reflect.TypeFor[counter](), c))

	got, err := method.Named("Add", cfg(), reg).
		In(reflect.TypeFor[counter]()).
		Invoke(4)
	require.NoError(t, err)
	require.Equal(t, 5, got)
	require.Equal(t, 5, c.n)
}

func TestSignatureMismatch(t *testing.T) {
	// Wrong parameter type.
	_, err := method.Named("Add", cfg(), nil).
		WithParameterTypes(reflect.TypeFor[string]()).
		In(&counter{}).
		Invoke("x")
	require.ErrorIs(t, err, method.ErrSignatureMismatch)
	require.ErrorIs(t, err, apis.ErrReflection)

	// Wrong parameter count.
	_, err = method.Named("Add", cfg(), nil).
		WithParameterTypes(reflect.TypeFor[int](), reflect.TypeFor[int]()).
		In(&counter{}).
		Invoke(1, 2)
	require.ErrorIs(t, err, method.ErrSignatureMismatch)
}

func TestReturnMismatch(t *testing.T) {
	_, err := method.Named("Value", cfg(), nil).
		WithReturnType(reflect.TypeFor[string]()).
		In(counter{}).
		Invoke()
	require.ErrorIs(t, err, method.ErrReturnMismatch)

	// Asserting a result on a void method fails.
	_, err = method.Named("Ping", cfg(), nil).
		WithReturnType(reflect.TypeFor[int]()).
		In(counter{}).
		Invoke()
	require.ErrorIs(t, err, method.ErrReturnMismatch)
}

func TestPointerReceiverOnValue(t *testing.T) {
	_, err := method.Named("Add", cfg(), nil).
		In(counter{}).
		Invoke(1)
	require.ErrorIs(t, err, uref.ErrNeedsPointer)
}

func TestStageErrors(t *testing.T) {
	_, err := method.Named("", cfg(), nil).In(&counter{}).Invoke()
	require.ErrorIs(t, err, method.ErrEmptyName)
	require.ErrorIs(t, err, apis.ErrInvalidArgument)

	_, err = method.Named("Add", cfg(), nil).
		WithParameterTypes(nil).
		In(&counter{}).
		Invoke(1)
	require.ErrorIs(t, err, method.ErrNilParameterType)

	_, err = method.Named("Value", cfg(), nil).
		WithReturnType(nil).
		In(&counter{}).
		Invoke()
	require.ErrorIs(t, err, method.ErrNilReturnType)

	_, err = method.Named("Value", cfg(), nil).In(nil).Invoke()
	require.ErrorIs(t, err, uref.ErrNilTarget)

	_, err = method.Named("Missing", cfg(), nil).In(&counter{}).Invoke()
	require.ErrorIs(t, err, uref.ErrMethodNotFound)
}

func TestBadArguments(t *testing.T) {
	_, err := method.Named("Add", cfg(), nil).In(&counter{}).Invoke("x")
	require.ErrorIs(t, err, uref.ErrBadArgument)

	_, err = method.Named("Add", cfg(), nil).In(&counter{}).Invoke()
	require.ErrorIs(t, err, uref.ErrArgumentCount)
}
