// Copyright 2025 The Widthtab Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package viperutil

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options configures a Value registered with Configure.
type Options[T any] struct {
	// Default is the value returned when nothing else sets the key.
	Default T
	// FlagName is the pflag this value binds to via BindFlags. Empty means
	// the value is config-file/env only.
	FlagName string
	// EnvVars are extra environment variables bound to the key, beyond the
	// automatic WT_ binding done by the registry.
	EnvVars []string
	// GetFunc overrides how the value is read back out of viper. When nil,
	// a typed getter is chosen for string, bool, int and []string.
	GetFunc func(v *viper.Viper, key string) T
}

// Value is a typed handle on a single registered configuration key.
type Value[T any] struct {
	reg      *Registry
	key      string
	flagName string
	def      T
	get      func(v *viper.Viper, key string) T
}

// Configure registers key on reg and returns the typed handle for it.
func Configure[T any](reg *Registry, key string, opts Options[T]) *Value[T] {
	reg.v.SetDefault(key, opts.Default)
	for _, env := range opts.EnvVars {
		_ = reg.v.BindEnv(key, env)
	}
	get := opts.GetFunc
	if get == nil {
		get = defaultGetFunc[T]()
	}
	return &Value[T]{
		reg:      reg,
		key:      key,
		flagName: opts.FlagName,
		def:      opts.Default,
		get:      get,
	}
}

// Key returns the viper key the value is registered under.
func (val *Value[T]) Key() string { return val.key }

// FlagName returns the pflag name the value binds to, if any.
func (val *Value[T]) FlagName() string { return val.flagName }

// Default returns the registered default.
func (val *Value[T]) Default() T { return val.def }

// Get reads the current value, applying flag, env, config-file and default
// layers in viper's usual precedence order.
func (val *Value[T]) Get() T { return val.get(val.reg.v, val.key) }

// Set overrides the value directly. Primarily used by tests.
func (val *Value[T]) Set(t T) { val.reg.v.Set(val.key, t) }

func (val *Value[T]) registry() *Registry { return val.reg }

// defaultGetFunc picks viper's typed getter for the common scalar kinds, so
// values bound from flags or the environment (which arrive as strings) still
// come back with their declared type.
func defaultGetFunc[T any]() func(v *viper.Viper, key string) T {
	var zero T
	switch any(zero).(type) {
	case string:
		return func(v *viper.Viper, key string) T { return any(v.GetString(key)).(T) }
	case bool:
		return func(v *viper.Viper, key string) T { return any(v.GetBool(key)).(T) }
	case int:
		return func(v *viper.Viper, key string) T { return any(v.GetInt(key)).(T) }
	case []string:
		return func(v *viper.Viper, key string) T { return any(v.GetStringSlice(key)).(T) }
	default:
		return func(v *viper.Viper, key string) T {
			out := zero
			if raw := v.Get(key); raw != nil {
				if t, ok := raw.(T); ok {
					out = t
				}
			}
			return out
		}
	}
}

// Flag is the part of a Value that BindFlags needs, independent of its type
// parameter.
type Flag interface {
	Key() string
	FlagName() string
	registry() *Registry
}

// BindFlags binds each value to its flag, for every value whose flag is
// actually registered on fs. Values with no matching flag are skipped, so a
// command may register only the subset of flags it supports.
func BindFlags(fs *pflag.FlagSet, values ...Flag) {
	for _, val := range values {
		if val.FlagName() == "" {
			continue
		}
		if f := fs.Lookup(val.FlagName()); f != nil {
			_ = val.registry().v.BindPFlag(val.Key(), f)
		}
	}
}
