package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/analysis"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/buildinfo"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/observability"
)

// RootCommand creates the root cobra command. Each call gets its own viper
// instance, so commands built in one process do not share settings.
func (c *CLI) RootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   appName + " [requirements_file]",
		Short: "Analyzes project dependencies for typosquatting risks",
		Long: `Analyzes project dependencies for typosquatting risks.

Every dependency in the requirements file (default: requirements.txt) is
compared against a list of popular package names. Pairs whose similarity
reaches the threshold are reported.

Flags can also be set through TYPOSQUAT_* environment variables
(e.g. TYPOSQUAT_THRESHOLD=0.9) or a TOML file given with --config.

Examples:
  typosquat-analyzer                                  # ./requirements.txt
  typosquat-analyzer requirements-dev.txt --threshold 0.85
  typosquat-analyzer --top-packages 5 --log-level DEBUG`,
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd.Flags(), args)
			if err != nil {
				return err
			}
			return c.analyze(cmd.Context(), cfg)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid arguments")
	})
	registerFlags(root.Flags())

	return root
}

// analyze runs one analysis and prints the report.
func (c *CLI) analyze(ctx context.Context, cfg *Config) error {
	c.Logger = newLogger(c.Stderr, cfg.Level).With("run", runID())
	ctx = withLogger(ctx, c.Logger)

	opts := cfg.Options
	c.Logger.Infof("Analyzing dependencies in %s with threshold %v and top %d packages.",
		opts.ManifestPath, opts.Threshold, opts.ReferenceCount)

	prog := newProgress(c.Logger)
	stats := &summaryHook{}
	a := analysis.New(cfg.Provider, nil, c.Logger, observability.Multi{logHooks{}, stats})
	findings, err := a.Analyze(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analysis finished with %d finding(s) in %d comparisons",
		len(findings), stats.summary.Comparisons))

	return writeReport(c.Stdout, findings)
}
