// Package config loads reportforge settings from defaults, an optional YAML
// file, a .env file and REPORTFORGE_* environment variables, in increasing
// order of precedence. Command-line flags bound by the caller win over all.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mrsinham/reportforge/internal/export"
	"github.com/mrsinham/reportforge/internal/report"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "REPORTFORGE"

type Config struct {
	Language    string    `mapstructure:"language" validate:"required,language"`
	OutputDir   string    `mapstructure:"output_dir" validate:"required"`
	Formats     []string  `mapstructure:"formats" validate:"min=1,dive,export_format"`
	Institution string    `mapstructure:"institution"`
	Env         string    `mapstructure:"env" validate:"oneof=development production"`
	Signatory   Signatory `mapstructure:"signatory"`
	Log         Log       `mapstructure:"log"`
}

type Signatory struct {
	Name  string `mapstructure:"name" validate:"required"`
	Title string `mapstructure:"title" validate:"required"`
}

type Log struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	// File receives logs of the interactive form; empty discards them.
	File string `mapstructure:"file"`
}

// keys lists every setting so environment variables bind before Unmarshal.
var keys = []string{
	"language",
	"output_dir",
	"formats",
	"institution",
	"env",
	"signatory.name",
	"signatory.title",
	"log.level",
	"log.file",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("language", report.DefaultLanguage)
	v.SetDefault("output_dir", ".")
	v.SetDefault("formats", []string{export.DefaultFormat})
	v.SetDefault("institution", "")
	v.SetDefault("env", "production")
	v.SetDefault("signatory.name", report.DefaultSignatory.Name)
	v.SetDefault("signatory.title", report.DefaultSignatory.Title)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Options tell Load where to look.
type Options struct {
	// File is an explicit config file; when empty reportforge.yaml is searched
	// in the working directory and $HOME/.config/reportforge.
	File string
	// EnvFile is loaded into the environment when present. Defaults to ".env".
	EnvFile string
	// Flags maps setting keys to command-line flags that override them.
	Flags map[string]*pflag.Flag
}

// Load reads the configuration and validates it.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", k, err)
		}
	}

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else {
		v.SetConfigName("reportforge")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "reportforge"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Language = strings.ToLower(strings.TrimSpace(cfg.Language))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDev reports whether the development environment is configured.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Labels returns the report labels of the configured language.
func (c *Config) Labels() (report.Labels, error) {
	return report.LabelsFor(c.Language)
}

// ReportSignatory returns the configured signatory.
func (c *Config) ReportSignatory() report.Signatory {
	return report.Signatory{Name: c.Signatory.Name, Title: c.Signatory.Title}
}
