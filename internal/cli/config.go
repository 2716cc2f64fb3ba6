package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/analysis"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/reference"
)

// envPrefix prefixes environment overrides, e.g. TYPOSQUAT_THRESHOLD.
const envPrefix = "TYPOSQUAT"

// Flag names. They double as viper keys and config file keys.
const (
	flagThreshold     = "threshold"
	flagTopPackages   = "top-packages"
	flagLogLevel      = "log-level"
	flagReferenceFile = "reference-file"
	flagIncludeExact  = "include-exact"
	flagConfig        = "config"
)

// settingKeys are the keys resolved through flag > env > config file > default.
var settingKeys = []string{flagThreshold, flagTopPackages, flagLogLevel, flagReferenceFile, flagIncludeExact}

// settings mirrors the resolved keys.
type settings struct {
	Threshold     float64 `mapstructure:"threshold"`
	TopPackages   int     `mapstructure:"top-packages"`
	LogLevel      string  `mapstructure:"log-level"`
	ReferenceFile string  `mapstructure:"reference-file"`
	IncludeExact  bool    `mapstructure:"include-exact"`
}

// Config is a validated invocation.
type Config struct {
	Options  analysis.Options
	Level    log.Level
	Provider reference.Provider
}

// registerFlags declares the analysis flags on fs.
func registerFlags(fs *pflag.FlagSet) {
	fs.Float64(flagThreshold, analysis.DefaultThreshold,
		"similarity threshold between 0 and 1, higher values are stricter")
	fs.Int(flagTopPackages, analysis.DefaultReferenceCount,
		"number of popular packages to compare against")
	fs.String(flagLogLevel, "INFO",
		"log level ("+strings.Join(logLevels, ", ")+")")
	fs.String(flagReferenceFile, "",
		"TOML file with a custom reference list (packages = [...])")
	fs.Bool(flagIncludeExact, false,
		"also report dependencies that exactly match a popular package")
	fs.String(flagConfig, "",
		"TOML config file with defaults for the flags above")
}

// loadConfig resolves and validates the invocation. Every error it returns
// is a configuration error; nothing has been analyzed yet.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet, args []string) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range settingKeys {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bind flag %s", key)
		}
	}

	if path, _ := fs.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file %s", path)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid settings")
	}

	level, err := parseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := analysis.DefaultOptions()
	opts.Threshold = s.Threshold
	opts.ReferenceCount = s.TopPackages
	opts.IncludeExact = s.IncludeExact
	if len(args) > 0 {
		opts.ManifestPath = args[0]
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var provider reference.Provider = reference.Default()
	if s.ReferenceFile != "" {
		if provider, err = reference.LoadFile(s.ReferenceFile); err != nil {
			return nil, err
		}
	}

	return &Config{Options: opts, Level: level, Provider: provider}, nil
}
