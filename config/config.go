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

package config

import (
	"dirpx.dev/frx/apis"
)

const (
	// DefaultAllowUnexported represents the default for AllowUnexported.
	// When true, field chains may access unexported struct fields.
	DefaultAllowUnexported = true
	// DefaultMaxIndirect represents the default for MaxIndirect.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxIndirect = 8
	// DefaultSetterPrefix represents the default for SetterPrefix.
	DefaultSetterPrefix = "Set"
)

// DefaultGetterPrefixes represents the default for GetterPrefixes.
// Plain accessors ("Name") are preferred over "Get"-prefixed ones.
func DefaultGetterPrefixes() []string {
	return []string{"", "Get"}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxIndirect is valid.
	if cfg.MaxIndirect < 0 {
		cfg.MaxIndirect = DefaultMaxIndirect
	}
	// Ensure property discovery has a convention to work with.
	if len(cfg.GetterPrefixes) == 0 {
		cfg.GetterPrefixes = DefaultGetterPrefixes()
	}
	if cfg.SetterPrefix == "" {
		cfg.SetterPrefix = DefaultSetterPrefix
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		AllowUnexported: DefaultAllowUnexported,
		MaxIndirect:     DefaultMaxIndirect,
		GetterPrefixes:  DefaultGetterPrefixes(),
		SetterPrefix:    DefaultSetterPrefix,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithAllowUnexported sets the AllowUnexported option.
func WithAllowUnexported(allow bool) Option {
	return func(c *apis.Config) {
		c.AllowUnexported = allow
	}
}

// WithMaxIndirect sets the MaxIndirect option.
// A negative value resets to the default.
func WithMaxIndirect(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxIndirect = DefaultMaxIndirect
			return
		}
		c.MaxIndirect = max
	}
}

// WithGetterPrefixes sets the GetterPrefixes option.
// An empty list resets to the default.
func WithGetterPrefixes(prefixes ...string) Option {
	return func(c *apis.Config) {
		if len(prefixes) == 0 {
			c.GetterPrefixes = DefaultGetterPrefixes()
			return
		}
		c.GetterPrefixes = prefixes
	}
}

// WithSetterPrefix sets the SetterPrefix option.
// An empty prefix resets to the default.
func WithSetterPrefix(prefix string) Option {
	return func(c *apis.Config) {
		if prefix == "" {
			c.SetterPrefix = DefaultSetterPrefix
			return
		}
		c.SetterPrefix = prefix
	}
}
