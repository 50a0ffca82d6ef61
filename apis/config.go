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

package apis

// Config carries read-only access knobs that influence the fluent chains.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// AllowUnexported controls whether field chains may read and write
	// unexported struct fields. When false, such access fails.
	AllowUnexported bool

	// MaxIndirect limits pointer/interface unwrapping depth when coercing
	// chain targets. Acts as a safety guard against pathological nesting.
	MaxIndirect int

	// GetterPrefixes lists the method-name prefixes tried, in order, when a
	// property chain discovers a getter (e.g. "" finds Name(), "Get" finds
	// GetName()).
	GetterPrefixes []string

	// SetterPrefix is the method-name prefix used when a property chain
	// discovers a setter (e.g. "Set" finds SetName(v)).
	SetterPrefix string
}
