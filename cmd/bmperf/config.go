// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is read from the current directory if --config is
// not given. It is optional.
const defaultConfigFile = "bmperf.yaml"

// Config is the effective configuration of a bmperf run.
type Config struct {
	Input          string `mapstructure:"input" yaml:"input"`
	OutDir         string `mapstructure:"out_dir" yaml:"out_dir"`
	PerformancePNG string `mapstructure:"performance_png" yaml:"performance_png"`
	TheoryPNG      string `mapstructure:"theory_png" yaml:"theory_png"`
	Format         string `mapstructure:"format" yaml:"format"`
	Show           bool   `mapstructure:"show" yaml:"show"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Input:          "benchmark_results.csv",
		OutDir:         ".",
		PerformancePNG: "performance_analysis.png",
		TheoryPNG:      "theory_vs_practice.png",
		Format:         "text",
		Show:           true,
		LogLevel:       "info",
	}
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"input":           "input",
	"out-dir":         "out_dir",
	"performance-png": "performance_png",
	"theory-png":      "theory_png",
	"format":          "format",
	"show":            "show",
	"log-level":       "log_level",
}

// addGlobalFlags defines the flags shared by all commands.
func addGlobalFlags(flags *pflag.FlagSet) {
	def := defaultConfig()
	flags.String("config", "", "read configuration from `file` (default ./"+defaultConfigFile+" if present)")
	flags.String("input", def.Input, "read benchmark results from `file`")
	flags.String("log-level", def.LogLevel, "log `level`: debug, info, warn or error")
}

// addReportFlags defines the flags of the report command.
func addReportFlags(flags *pflag.FlagSet) {
	def := defaultConfig()
	flags.String("out-dir", def.OutDir, "write charts to `dir`")
	flags.String("performance-png", def.PerformancePNG, "file `name` of the performance chart")
	flags.String("theory-png", def.TheoryPNG, "file `name` of the theory chart")
	flags.String("format", def.Format, "summary `format`: text, csv or html")
	flags.Bool("show", def.Show, "open the charts in an image viewer if one is available")
}

// loadConfig builds the configuration of cmd. Later sources override
// earlier ones: defaults, the configuration file, BMPERF_* environment
// variables (including those set by a .env file), and flags given on
// the command line.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("BMPERF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := defaultConfig()
	v.SetDefault("input", def.Input)
	v.SetDefault("out_dir", def.OutDir)
	v.SetDefault("performance_png", def.PerformancePNG)
	v.SetDefault("theory_png", def.TheoryPNG)
	v.SetDefault("format", def.Format)
	v.SetDefault("show", def.Show)
	v.SetDefault("log_level", def.LogLevel)

	flags := cmd.Flags()
	cfgFile, _ := flags.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(defaultConfigFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "text", "csv", "html":
	default:
		return fmt.Errorf("unknown format %q (want text, csv or html)", c.Format)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if c.Input == "" {
		return errors.New("no input file")
	}
	return nil
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the bmperf configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) > 0 {
				path = args[0]
			}
			if err := writeConfig(path, defaultConfig(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func writeConfig(path string, c *Config, force bool) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flag |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}
