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
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ViperConfig owns the flags that control config-file loading.
type ViperConfig struct {
	configFile  *Value[string]
	configPaths *Value[[]string]
	configName  *Value[string]
}

// NewViperConfig registers the config-loading values on reg.
func NewViperConfig(reg *Registry) *ViperConfig {
	return &ViperConfig{
		configFile: Configure(reg, "config.file", Options[string]{
			FlagName: "config-file",
			EnvVars:  []string{"WT_CONFIG_FILE"},
		}),
		configPaths: Configure(reg, "config.paths", Options[[]string]{
			Default:  []string{"."},
			FlagName: "config-path",
			EnvVars:  []string{"WT_CONFIG_PATH"},
		}),
		configName: Configure(reg, "config.name", Options[string]{
			Default:  "widthtab",
			FlagName: "config-name",
			EnvVars:  []string{"WT_CONFIG_NAME"},
		}),
	}
}

// RegisterFlags installs the config-loading flags on fs and binds them.
func (vc *ViperConfig) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config-file", vc.configFile.Default(), "Full path of the config file (with extension) to use. If set, --config-path and --config-name are ignored.")
	fs.StringSlice("config-path", vc.configPaths.Default(), "Paths to search for config files in.")
	fs.String("config-name", vc.configName.Default(), "Name of the config file (without extension) to search for.")
	BindFlags(fs, vc.configFile, vc.configPaths, vc.configName)
}

// LoadConfig finds and loads a config file into the registry. A missing
// config file is not an error unless --config-file named one explicitly; the
// tools are expected to run configured by flags alone. Returns the path of
// the file used, if any.
func (vc *ViperConfig) LoadConfig(reg *Registry) (string, error) {
	v := reg.v
	if file := vc.configFile.Get(); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", file, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName(vc.configName.Get())
	for _, path := range vc.configPaths.Get() {
		v.AddConfigPath(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}
