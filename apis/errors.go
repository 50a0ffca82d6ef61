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

import "errors"

// The two error kinds every frx failure belongs to. Package-level error
// variables throughout the module wrap exactly one of them, so callers can
// classify any returned error with errors.Is.
var (
	// ErrInvalidArgument marks failures detected while a chain stage is
	// constructed: empty names, nil types, nil resolvers. A stage carrying
	// this error short-circuits its terminal call before any reflective
	// work happens.
	ErrInvalidArgument = errors.New("frx: invalid argument")

	// ErrReflection marks failures of the terminal reflective operation
	// itself: member not found, signature or type mismatch, unaddressable
	// target, unresolvable type name, missing getter/setter.
	ErrReflection = errors.New("frx: reflection failure")
)
