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

package property_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/config"
	"dirpx.dev/frx/property"
	"dirpx.dev/frx/registry"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

type lamp struct {
	watts int
	label string
}

func (l *lamp) Watts() int     { return l.watts }
func (l *lamp) SetWatts(w int) { l.watts = w }

func (l *lamp) GetLabel() string  { return l.label }
func (l *lamp) SetLabel(s string) { l.label = s }

// broken has a getter but no setter.
type broken struct {
	on bool
}

func (b *broken) On() bool { return b.on }

func cfg() apis.Config { return config.DefaultConfig() }

func TestSetThenGet(t *testing.T) {
	l := &lamp{}

	acc := property.Named("watts", cfg(), nil).
		OfType(reflect.TypeFor[int]()).
		In(l)

	require.NoError(t, acc.Set(60))

	got, err := acc.Get()
	require.NoError(t, err)
	require.Equal(t, 60, got)
	require.Equal(t, 60, l.watts)
}

func TestGetPrefixDiscovery(t *testing.T) {
	l := &lamp{label: "desk"}

	acc := property.Named("label", cfg(), nil).
		OfTypeRef(typeref.New[string]()).
		In(l)

	got, err := acc.Get()
	require.NoError(t, err)
	require.Equal(t, "desk", got)

	require.NoError(t, acc.Set("shelf"))
	require.Equal(t, "shelf", l.label)
}

func TestCapitalizedNameAccepted(t *testing.T) {
	l := &lamp{watts: 40}

	got, err := property.Named("Watts", cfg(), nil).
		OfType(reflect.TypeFor[int]()).
		In(l).
		Get()
	require.NoError(t, err)
	require.Equal(t, 40, got)
}

func TestTypeTarget_UsesBoundInstance(t *testing.T) {
	reg := registry.New()
	l := &lamp{}
	require.NoError(t, reg.BindInstance(reflect.TypeFor[lamp](), l))

	err := property.Named("watts", cfg(), reg).
		OfType(reflect.TypeFor[int]()).
		In(reflect.TypeFor[lamp]()).
		Set(75)
	require.NoError(t, err)
	require.Equal(t, 75, l.watts)
}

func TestMissingSetterFailsBothWays(t *testing.T) {
	b := &broken{on: true}

	acc := property.Named("on", cfg(), nil).
		OfType(reflect.TypeFor[bool]()).
		In(b)

	// The setter is required even for reads.
	_, err := acc.Get()
	require.ErrorIs(t, err, property.ErrNoSetter)
	require.ErrorIs(t, err, apis.ErrReflection)

	err = acc.Set(false)
	require.ErrorIs(t, err, property.ErrNoSetter)
}

func TestMissingGetter(t *testing.T) {
	_, err := property.Named("missing", cfg(), nil).
		OfType(reflect.TypeFor[int]()).
		In(&lamp{}).
		Get()
	require.ErrorIs(t, err, property.ErrNoGetter)
}

func TestTypeMismatch(t *testing.T) {
	_, err := property.Named("watts", cfg(), nil).
		OfType(reflect.TypeFor[string]()).
		In(&lamp{}).
		Get()
	require.ErrorIs(t, err, property.ErrTypeMismatch)
}

func TestCustomPrefixes(t *testing.T) {
	c := config.NewConfig(
		config.WithGetterPrefixes("Get"),
		config.WithSetterPrefix("Set"),
	)

	// "watts" has a bare getter only, so the Get-only convention misses it.
	_, err := property.Named("watts", c, nil).
		OfType(reflect.TypeFor[int]()).
		In(&lamp{}).
		Get()
	require.ErrorIs(t, err, property.ErrNoGetter)

	// "label" is declared Get-style and still resolves.
	got, err := property.Named("label", c, nil).
		OfType(reflect.TypeFor[string]()).
		In(&lamp{label: "x"}).
		Get()
	require.NoError(t, err)
	require.Equal(t, "x", got)
}

func TestStageErrors(t *testing.T) {
	_, err := property.Named("", cfg(), nil).
		OfType(reflect.TypeFor[int]()).
		In(&lamp{}).
		Get()
	require.ErrorIs(t, err, property.ErrEmptyName)
	require.ErrorIs(t, err, apis.ErrInvalidArgument)

	_, err = property.Named("watts", cfg(), nil).
		OfType(nil).
		In(&lamp{}).
		Get()
	require.ErrorIs(t, err, property.ErrNilType)

	_, err = property.Named("watts", cfg(), nil).
		OfType(reflect.TypeFor[int]()).
		In(nil).
		Get()
	require.ErrorIs(t, err, uref.ErrNilTarget)
}

func TestSet_BadValue(t *testing.T) {
	err := property.Named("watts", cfg(), nil).
		OfType(reflect.TypeFor[int]()).
		In(&lamp{}).
		Set("bright")
	require.ErrorIs(t, err, uref.ErrBadArgument)
}
