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

package frx

import (
	"dirpx.dev/frx/constructor"
	"dirpx.dev/frx/field"
	"dirpx.dev/frx/loader"
	"dirpx.dev/frx/method"
	"dirpx.dev/frx/property"
)

// Starting points of the fluent chains. Each entry point captures the current
// global snapshot (configuration, registry, resolver); a chain built from it
// never observes a later state swap.

// Type starts the chain for resolving a type by name:
//
//	t, err := frx.Type("map[string]int").Load()
//	t, err := frx.Type("acme.Widget").LoadAs(reflect.TypeFor[Renderer]())
func Type(name string) loader.Name {
	s := st.Load()
	return loader.Named(name, s.cfg, s.res)
}

// Inner starts the chain for locating a nested type by its short name:
//
//	t, err := frx.Inner("Rotor").In(Widget{}).Get()
func Inner(name string) loader.Inner {
	s := st.Load()
	return loader.InnerNamed(name, s.cfg, s.reg)
}

// Field starts the chain for accessing a struct field:
//
//	v, err := frx.Field("Name").OfType(reflect.TypeFor[string]()).In(&w).Get()
//	err := frx.Field("Name").OfType(reflect.TypeFor[string]()).In(&w).Set("rotor")
func Field(name string) field.Name {
	s := st.Load()
	return field.Named(name, s.cfg, s.reg)
}

// Method starts the chain for invoking a method:
//
//	out, err := frx.Method("Describe").
//		WithReturnType(reflect.TypeFor[string]()).
//		In(&w).
//		Invoke()
func Method(name string) method.Name {
	s := st.Load()
	return method.Named(name, s.cfg, s.reg)
}

// Constructor starts the chain for constructing an instance:
//
//	v, err := frx.Constructor().In(reflect.TypeFor[Widget]()).NewInstance()
//	v, err := frx.Constructor().
//		WithParameterTypes(reflect.TypeFor[string]()).
//		In(reflect.TypeFor[Widget]()).
//		NewInstance("rotor")
func Constructor() constructor.Target {
	s := st.Load()
	return constructor.New(s.cfg, s.reg)
}

// Property starts the chain for accessor-method (getter/setter) access:
//
//	v, err := frx.Property("name").OfType(reflect.TypeFor[string]()).In(&w).Get()
func Property(name string) property.Name {
	s := st.Load()
	return property.Named(name, s.cfg, s.reg)
}
