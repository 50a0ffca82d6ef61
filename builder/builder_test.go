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

package builder_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/frx/builder"
	"dirpx.dev/frx/config"
)

type gadget struct{}

func TestBuildRegistry_ReusesPrevious(t *testing.T) {
	cfg := config.DefaultConfig()
	b := builder.New()

	reg := b.BuildRegistry(cfg, nil, nil)
	require.NotNil(t, reg)
	require.NoError(t, reg.RegisterType("acme.Gadget", reflect.TypeFor[gadget]()))

	// A rebuild with a previous registry must preserve its contents.
	reg2 := b.BuildRegistry(cfg, reg, nil)
	got, ok := reg2.LookupType("acme.Gadget")
	require.True(t, ok)
	require.Equal(t, reflect.TypeFor[gadget](), got)
}

func TestBuildResolver_RegistryBeatsBuiltins(t *testing.T) {
	cfg := config.DefaultConfig()
	b := builder.New()

	reg := b.BuildRegistry(cfg, nil, nil)
	res := b.BuildResolver(cfg, reg, nil, nil)
	require.NotNil(t, res)

	// Builtins resolve out of the box.
	got, err := res.ResolveType("[]byte", cfg)
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[[]byte](), got)

	// An explicit registration shadows the builtin spelling.
	require.NoError(t, reg.RegisterType("int", reflect.TypeFor[gadget]()))
	got, err = res.ResolveType("int", cfg)
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[gadget](), got)
}
