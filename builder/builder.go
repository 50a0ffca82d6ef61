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

package builder

import (
	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/registry"
	"dirpx.dev/frx/resolver"
	"dirpx.dev/frx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns an apis.Registry. Registry contents do not
// depend on the configuration, so a pre-existing registry is reused as-is to
// preserve its entries, constructors, and bound instances across rebuilds.
func (b *builder) BuildRegistry(_ apis.Config, preg apis.Registry, _ any) apis.Registry {
	if preg != nil {
		return preg
	}
	return registry.New()
}

// BuildResolver builds and returns a new apis.Resolver based on the provided
// registry. Explicit registrations take precedence over builtin literal parsing.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.New(
		strategy.NewRegistryStrategy(reg),
		strategy.NewBuiltinStrategy(),
	)
}
