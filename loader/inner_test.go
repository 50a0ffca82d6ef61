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

package loader_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/loader"
	"dirpx.dev/frx/registry"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

type Engine struct {
	Cyl int
}

type Car struct {
	Motor *Engine
	Name  string
}

type Trim struct{}

func TestInner_FieldTypeScan(t *testing.T) {
	got, err := loader.InnerNamed("Engine", cfg(), nil).
		In(reflect.TypeFor[Car]()).
		Get()
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[Engine](), got)
}

func TestInner_QualifiedRegistration(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.RegisterType("Car.Trim", reflect.TypeFor[Trim]()))

	got, err := loader.InnerNamed("Trim", cfg(), reg).
		In(reflect.TypeFor[Car]()).
		Get()
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[Trim](), got)
}

func TestInner_OuterForms(t *testing.T) {
	// Instance outer.
	got, err := loader.InnerNamed("Engine", cfg(), nil).
		In(&Car{}).
		Get()
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[Engine](), got)

	// Type token outer.
	got, err = loader.InnerNamed("Engine", cfg(), nil).
		In(typeref.New[*Car]()).
		Get()
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[Engine](), got)
}

func TestInner_NotFound(t *testing.T) {
	_, err := loader.InnerNamed("Gearbox", cfg(), nil).
		In(reflect.TypeFor[Car]()).
		Get()
	require.ErrorIs(t, err, loader.ErrInnerNotFound)
	require.ErrorIs(t, err, apis.ErrReflection)
}

func TestInner_StageErrors(t *testing.T) {
	_, err := loader.InnerNamed("", cfg(), nil).
		In(reflect.TypeFor[Car]()).
		Get()
	require.ErrorIs(t, err, loader.ErrEmptyName)

	_, err = loader.InnerNamed("Engine", cfg(), nil).In(nil).Get()
	require.ErrorIs(t, err, uref.ErrNilTarget)

	_, err = loader.InnerNamed("Engine", cfg(), nil).In(typeref.TypeRef{}).Get()
	require.ErrorIs(t, err, uref.ErrNilTarget)
}
