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

package strategy

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"dirpx.dev/frx/apis"
)

// NewBuiltinStrategy creates an apis.Strategy that resolves builtin type
// literals and composites of them, with memoization.
func NewBuiltinStrategy() apis.Strategy {
	return builtinStrategy{}
}

// builtinStrategy is the universal fallback that parses type literals such as
// "int", "*string", "[]byte", "[4]float64", "map[string]int" or "chan bool".
// Named non-builtin types are out of its reach and fall through.
type builtinStrategy struct{}

// Ensure builtinStrategy implements apis.Strategy.
var _ apis.Strategy = builtinStrategy{}

// parseResult distinguishes memoized misses from absent cache entries.
type parseResult struct {
	t  reflect.Type
	ok bool
}

// literalCache caches parsed type literals by their exact spelling.
var literalCache sync.Map // key: string, val: parseResult

// TryResolveType parses name as a builtin or composite type literal.
func (builtinStrategy) TryResolveType(name string, _ apis.Config) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := literalCache.Load(name); ok {
		r := v.(parseResult)
		return r.t, r.ok
	}
	t, ok := parseLiteral(name)
	literalCache.Store(name, parseResult{t: t, ok: ok})
	return t, ok
}

// builtins maps predeclared type names to their reflect.Type.
var builtins = map[string]reflect.Type{
	"bool":       reflect.TypeFor[bool](),
	"string":     reflect.TypeFor[string](),
	"int":        reflect.TypeFor[int](),
	"int8":       reflect.TypeFor[int8](),
	"int16":      reflect.TypeFor[int16](),
	"int32":      reflect.TypeFor[int32](),
	"int64":      reflect.TypeFor[int64](),
	"uint":       reflect.TypeFor[uint](),
	"uint8":      reflect.TypeFor[uint8](),
	"uint16":     reflect.TypeFor[uint16](),
	"uint32":     reflect.TypeFor[uint32](),
	"uint64":     reflect.TypeFor[uint64](),
	"uintptr":    reflect.TypeFor[uintptr](),
	"byte":       reflect.TypeFor[byte](),
	"rune":       reflect.TypeFor[rune](),
	"float32":    reflect.TypeFor[float32](),
	"float64":    reflect.TypeFor[float64](),
	"complex64":  reflect.TypeFor[complex64](),
	"complex128": reflect.TypeFor[complex128](),
	"error":      reflect.TypeFor[error](),
	"any":        reflect.TypeFor[any](),
}

// parseLiteral parses a type literal recursively.
func parseLiteral(s string) (reflect.Type, bool) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, false

	case strings.HasPrefix(s, "*"):
		elem, ok := parseLiteral(s[1:])
		if !ok {
			return nil, false
		}
		return reflect.PointerTo(elem), true

	case strings.HasPrefix(s, "[]"):
		elem, ok := parseLiteral(s[2:])
		if !ok {
			return nil, false
		}
		return reflect.SliceOf(elem), true

	case strings.HasPrefix(s, "map["):
		key, rest, ok := splitBracketed(s[len("map["):])
		if !ok {
			return nil, false
		}
		kt, ok := parseLiteral(key)
		if !ok || !kt.Comparable() {
			return nil, false
		}
		vt, ok := parseLiteral(rest)
		if !ok {
			return nil, false
		}
		return reflect.MapOf(kt, vt), true

	case strings.HasPrefix(s, "["):
		size, rest, ok := splitBracketed(s[1:])
		if !ok {
			return nil, false
		}
		n, err := strconv.Atoi(size)
		if err != nil || n < 0 {
			return nil, false
		}
		elem, ok := parseLiteral(rest)
		if !ok {
			return nil, false
		}
		return reflect.ArrayOf(n, elem), true

	case strings.HasPrefix(s, "<-chan "):
		elem, ok := parseLiteral(s[len("<-chan "):])
		if !ok {
			return nil, false
		}
		return reflect.ChanOf(reflect.RecvDir, elem), true

	case strings.HasPrefix(s, "chan<- "):
		elem, ok := parseLiteral(s[len("chan<- "):])
		if !ok {
			return nil, false
		}
		return reflect.ChanOf(reflect.SendDir, elem), true

	case strings.HasPrefix(s, "chan "):
		elem, ok := parseLiteral(s[len("chan "):])
		if !ok {
			return nil, false
		}
		return reflect.ChanOf(reflect.BothDir, elem), true

	default:
		t, ok := builtins[s]
		return t, ok
	}
}

// splitBracketed splits "K]V" (following an opening bracket already consumed)
// into K and V, honoring nested brackets inside K.
func splitBracketed(s string) (inner, rest string, ok bool) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}
