package cli

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/analysis"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/reference"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(viper.New(), parseFlags(t), nil)
	require.NoError(t, err)

	assert.Equal(t, analysis.DefaultOptions(), cfg.Options)
	assert.Equal(t, "requirements.txt", cfg.Options.ManifestPath)
	assert.Equal(t, log.InfoLevel, cfg.Level)

	p, ok := cfg.Provider.(*reference.Static)
	require.True(t, ok, "Provider = %v, want the built-in list", cfg.Provider)
	assert.Equal(t, 20, p.Len())
}

func TestLoadConfigFlags(t *testing.T) {
	fs := parseFlags(t, "--threshold", "0.5", "--top-packages", "3", "--log-level", "warning", "--include-exact")

	cfg, err := loadConfig(viper.New(), fs, []string{"dev-requirements.txt"})
	require.NoError(t, err)

	want := analysis.Options{
		ManifestPath:   "dev-requirements.txt",
		Threshold:      0.5,
		ReferenceCount: 3,
		IncludeExact:   true,
	}
	assert.Equal(t, want, cfg.Options)
	assert.Equal(t, log.WarnLevel, cfg.Level)
}

func TestLoadConfigBoundaries(t *testing.T) {
	for _, threshold := range []string{"0", "1"} {
		_, err := loadConfig(viper.New(), parseFlags(t, "--threshold", threshold), nil)
		assert.NoError(t, err, "threshold %s should be accepted", threshold)
	}

	_, err := loadConfig(viper.New(), parseFlags(t, "--threshold", "1.0001"), nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidThreshold), "got %v", err)

	_, err = loadConfig(viper.New(), parseFlags(t, "--top-packages", "0"), nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidReferenceCount), "got %v", err)
}
