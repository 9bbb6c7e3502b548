// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves runlog settings from defaults, an optional
// runlog.yaml file, RUNLOG_* environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bartekus/runlog/internal/report"
	"github.com/bartekus/runlog/internal/runlog"
)

const (
	// ConfigFileName is the name of the config file looked up in the working directory.
	ConfigFileName = "runlog"
	// EnvPrefix prefixes environment overrides, e.g. RUNLOG_OUTPUT_DIR.
	EnvPrefix = "RUNLOG"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	HTML             bool   `mapstructure:"html"`
	RemoveDuplicates bool   `mapstructure:"remove_duplicates"`
	Verbosity        int    `mapstructure:"verbosity"`
	MaxFiles         int    `mapstructure:"max_files"`
	KeepGoing        bool   `mapstructure:"keep_going"`
	OutputDir        string `mapstructure:"output_dir"`
	ElogFile         string `mapstructure:"elog_file"`
	CSVFile          string `mapstructure:"csv_file"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		OutputDir: "output",
		ElogFile:  "compiled_elog.txt",
		CSVFile:   "compiled_data.csv",
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"html":              "html",
	"remove-duplicates": "remove_duplicates",
	"verbose":           "verbosity",
	"max-files":         "max_files",
	"keep-going":        "keep_going",
	"output-dir":        "output_dir",
	"elog-file":         "elog_file",
	"csv-file":          "csv_file",
}

// Load resolves the configuration. path selects an explicit config file; when
// empty, runlog.yaml in the working directory is used if present. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("html", defaults.HTML)
	v.SetDefault("remove_duplicates", defaults.RemoveDuplicates)
	v.SetDefault("verbosity", defaults.Verbosity)
	v.SetDefault("max_files", defaults.MaxFiles)
	v.SetDefault("keep_going", defaults.KeepGoing)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("elog_file", defaults.ElogFile)
	v.SetDefault("csv_file", defaults.CSVFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no command can work with.
func (c *Config) Validate() error {
	if c.MaxFiles < 0 {
		return fmt.Errorf("max_files must be >= 0, got %d", c.MaxFiles)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.ElogFile == "" || c.CSVFile == "" {
		return errors.New("elog_file and csv_file must not be empty")
	}
	return nil
}

// ReportOptions returns the rendering switches.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		HTML:             c.HTML,
		RemoveDuplicates: c.RemoveDuplicates,
	}
}

// AggregateOptions returns the batch decoding switches.
func (c *Config) AggregateOptions() runlog.AggregateOptions {
	return runlog.AggregateOptions{KeepGoing: c.KeepGoing}
}
