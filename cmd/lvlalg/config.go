// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Defaults for the configuration keys.
const (
	DefaultFormat   = FormatTable
	DefaultLogLevel = "warn"
)

// EnvPrefix scopes environment overrides: LVLALG_FORMAT, LVLALG_LOG_LEVEL, ...
const EnvPrefix = "LVLALG"

// ErrConfig is returned for an invalid configuration value.
var ErrConfig = errors.New("lvlalg: invalid configuration")

// Config is the resolved CLI configuration. Precedence, highest first:
// flags, LVLALG_* environment, config file, defaults.
type Config struct {
	NoAlias  bool   `mapstructure:"noalias"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log-level"`
	LogJSON  bool   `mapstructure:"log-json"`
}

// bindFlags registers the persistent flags backing Config.
func bindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (yaml, toml or json)")
	f.Bool("noalias", false, "assume no destination is referenced by its expression")
	f.StringP("format", "f", DefaultFormat, "output format: table or yaml")
	f.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	f.Bool("log-json", false, "emit JSON logs")
}

// LoadConfig resolves the configuration for cmd.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("noalias", false)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("log-level", DefaultLogLevel)
	v.SetDefault("log-json", false)

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %q", path)
		}
	}
	for _, key := range []string{"noalias", "format", "log-level", "log-json"} {
		// only flags the user set override lower layers
		if fl := cmd.Flags().Lookup(key); fl != nil && fl.Changed {
			if err := v.BindPFlag(key, fl); err != nil {
				return nil, errors.Wrapf(err, "bind flag %q", key)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case FormatTable, FormatYAML:
	default:
		return errors.Wrapf(ErrConfig, "format %q", c.Format)
	}

	return nil
}
