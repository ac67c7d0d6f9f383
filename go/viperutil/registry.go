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
	"strings"

	"github.com/spf13/viper"
)

// Registry holds the viper instance backing one command's configuration.
// Each command creates its own registry, so the two tools stay isolated from
// each other and from any other configuration in the process. All values are
// static: they never change after LoadConfig returns.
type Registry struct {
	v *viper.Viper
}

// NewRegistry creates an isolated configuration registry. Environment
// variables with the WT_ prefix are bound automatically, with dashes and
// dots mapped to underscores (WT_LOG_LEVEL configures "log-level").
func NewRegistry() *Registry {
	v := viper.New()
	v.SetEnvPrefix("WT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return &Registry{v: v}
}

// Viper exposes the underlying viper for debug handlers and tests.
func (reg *Registry) Viper() *viper.Viper {
	return reg.v
}
