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

package loader

import (
	"fmt"
	"reflect"

	"dirpx.dev/frx/apis"
	"dirpx.dev/frx/typeref"
	uref "dirpx.dev/frx/utils/reflect"
)

var (
	// ErrInnerNotFound is returned when no nested type with the requested
	// name can be located under the outer type.
	ErrInnerNotFound = fmt.Errorf("frx(loader): nested type not found: %w", apis.ErrReflection)
)

// InnerNamed starts a nested-type chain for the given short name. Go declares
// no types inside types, so the lookup covers the two places a nested type
// shows up: a registry entry under the qualified "Outer.Inner" name, and a
// field of the outer struct whose type carries the name.
// cfg and reg are usually supplied by the frx entry point.
func InnerNamed(name string, cfg apis.Config, reg apis.Registry) Inner {
	i := Inner{name: name, cfg: cfg, reg: reg}
	if name == "" {
		i.err = ErrEmptyName
	}
	return i
}

// Inner is the first stage of the nested-type chain.
type Inner struct {
	name string
	cfg  apis.Config
	reg  apis.Registry
	err  error
}

// In captures the outer type and returns the terminal finder stage.
// outer may be a reflect.Type, a typeref.TypeRef, or a live instance.
func (i Inner) In(outer any) InnerFinder {
	f := InnerFinder{name: i.name, cfg: i.cfg, reg: i.reg, err: i.err}
	if f.err != nil {
		return f
	}
	switch x := outer.(type) {
	case nil:
		f.err = uref.ErrNilTarget
	case reflect.Type:
		f.outer = x
	case typeref.TypeRef:
		if !x.IsValid() {
			f.err = uref.ErrNilTarget
			break
		}
		f.outer = x.Type()
	default:
		f.outer = reflect.TypeOf(outer)
	}
	return f
}

// InnerFinder is the terminal stage of the nested-type chain.
type InnerFinder struct {
	name  string
	outer reflect.Type
	cfg   apis.Config
	reg   apis.Registry
	err   error
}

// Get resolves the nested type.
func (f InnerFinder) Get() (reflect.Type, error) {
	if f.err != nil {
		return nil, f.err
	}

	outer, err := uref.Base(f.outer, f.cfg)
	if err != nil {
		return nil, err
	}

	// Explicit registration under the qualified name wins.
	if f.reg != nil {
		if t, ok := f.reg.LookupType(outer.Name() + "." + f.name); ok {
			return t, nil
		}
	}

	// Otherwise scan the outer struct's fields for a matching type name.
	if outer.Kind() == reflect.Struct {
		for n := 0; n < outer.NumField(); n++ {
			ft := outer.Field(n).Type
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Name() == f.name {
				return ft, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrInnerNotFound, f.name, outer)
}
