// Package config resolves codedump settings from flags, the environment and
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"codedump/pkg/collect"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CODEDUMP_OUT.
const EnvPrefix = "CODEDUMP"

// Config is the resolved configuration for one run.
type Config struct {
	Out        string `mapstructure:"out"`
	Exclude    string `mapstructure:"exclude"`
	Verbose    bool   `mapstructure:"verbose"`
	UseBanner  bool   `mapstructure:"use_banner"`
	Hidden     bool   `mapstructure:"hidden"`
	NoIgnore   bool   `mapstructure:"no_ignore"`
	IgnoreFile string `mapstructure:"ignore_file"`
}

// Dir returns the directory searched for config.yaml.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "codedump")
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("out", collect.DefaultOutput)
	v.SetDefault("exclude", "")
	v.SetDefault("verbose", false)
	v.SetDefault("use_banner", true)
	v.SetDefault("hidden", false)
	v.SetDefault("no_ignore", false)
	v.SetDefault("ignore_file", collect.DefaultIgnoreFileName)
}

// Init prepares v: defaults, CODEDUMP_* environment variables and the config
// file. cfgFile overrides the search in Dir(). A missing config file in Dir()
// is not an error; a missing or malformed explicit file is.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// Load decodes the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Arguments converts the configuration into collector arguments for root.
func (c *Config) Arguments(root string) collect.Arguments {
	return collect.Arguments{
		Root:           root,
		Output:         c.Out,
		Exclude:        c.Exclude,
		Verbose:        c.Verbose,
		UseBanner:      c.UseBanner,
		Hidden:         c.Hidden,
		NoIgnore:       c.NoIgnore,
		IgnoreFileName: c.IgnoreFile,
	}
}
