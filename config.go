package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the settings of every command. Each command fills only the
// keys it has flags for.
type config struct {
	Strategy   string `mapstructure:"strategy"`
	Color      string `mapstructure:"color"`
	BufferSize uint   `mapstructure:"buffer-size"`
	Number     bool   `mapstructure:"number"`
	Echo       bool   `mapstructure:"echo"`
	Strict     bool   `mapstructure:"strict"`
	LogLevel   string `mapstructure:"log-level"`

	// verify and gen.
	Stress int    `mapstructure:"stress"`
	Valid  int    `mapstructure:"valid"`
	Seed   uint64 `mapstructure:"seed"`
	Count  int    `mapstructure:"count"`
	Kind   string `mapstructure:"kind"`
}

// loadConfig resolves settings for cmd. Precedence is: flags set on the
// command line, RCPARSE_* environment variables, the config file, flag
// defaults. Defaults live on the flags only, as viper defaults would shadow
// the per-command ones.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()

	v.SetEnvPrefix("RCPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rcparse")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/rcparse")
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if there is no config file unless it was asked for.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, errors.Wrap(err, "failed to bind flags")
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, errors.Wrap(err, "failed to unmarshal config")
	}

	return cfg, nil
}
