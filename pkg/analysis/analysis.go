// Package analysis compares the dependencies declared in a manifest against
// popular package names and reports the pairs that look alike.
//
// Every dependency is scored against every reference package, dependencies
// in manifest order and references in popularity order. A pair becomes a
// [Finding] when its lowercased similarity reaches the threshold.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/manifest"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/observability"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/reference"
	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/similarity"
)

// Defaults for Options.
const (
	DefaultThreshold      = 0.8
	DefaultReferenceCount = 20
)

// Finding is a dependency whose name is close to a reference package.
type Finding struct {
	Dependency string  // name as written in the manifest
	Reference  string  // the popular package it resembles
	Score      float64 // similarity in [0, 1]
}

// String formats the finding as a report line, score to two decimals.
func (f Finding) String() string {
	return fmt.Sprintf("Dependency: %s, Similar to: %s, Similarity: %.2f", f.Dependency, f.Reference, f.Score)
}

// Options controls a single analysis run.
type Options struct {
	ManifestPath   string  // requirements file to scan
	Threshold      float64 // inclusive similarity cutoff in [0, 1]
	ReferenceCount int     // how many reference packages to compare against
	// IncludeExact reports dependencies whose name equals a reference
	// package (ignoring case). Such pairs score 1.0 and are skipped by
	// default, since using the popular package itself is not a typosquat.
	IncludeExact bool
}

// DefaultOptions returns options for the default manifest path.
func DefaultOptions() Options {
	return Options{
		ManifestPath:   manifest.DefaultPath,
		Threshold:      DefaultThreshold,
		ReferenceCount: DefaultReferenceCount,
	}
}

// Validate checks the threshold and reference count.
func (o Options) Validate() error {
	if err := errors.ValidateThreshold(o.Threshold); err != nil {
		return err
	}
	return errors.ValidateReferenceCount(o.ReferenceCount)
}

// Analyzer runs analyses. It holds no per-run state, so one Analyzer can
// serve any number of runs.
type Analyzer struct {
	Provider reference.Provider
	Scorer   similarity.Scorer
	Logger   *log.Logger
	Hooks    observability.AnalysisHooks
}

// New creates an analyzer. Nil arguments fall back to the built-in
// reference list, a cached Ratcliff/Obershelp scorer, the default logger
// and no-op hooks.
func New(p reference.Provider, s similarity.Scorer, logger *log.Logger, hooks observability.AnalysisHooks) *Analyzer {
	if p == nil {
		p = reference.Default()
	}
	if s == nil {
		s = similarity.Default
		if cached, err := similarity.NewCached(nil, similarity.DefaultCacheSize); err == nil {
			s = cached
		}
	}
	if logger == nil {
		logger = log.Default()
	}
	if hooks == nil {
		hooks = observability.NoopHooks{}
	}
	return &Analyzer{
		Provider: p,
		Scorer:   s,
		Logger:   logger,
		Hooks:    hooks,
	}
}

// Analyze scans the manifest named in opts and returns the findings in
// dependency-major, reference-minor order.
//
// Invalid options are returned as configuration errors before any work is
// done. A missing or unreadable manifest is logged and yields no findings
// and a nil error. If ctx is canceled the run stops and returns ctx.Err().
func (a *Analyzer) Analyze(ctx context.Context, opts Options) ([]Finding, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	deps, err := manifest.ReadDependencies(ctx, opts.ManifestPath, manifest.Options{
		Warn: func(msg string, args ...any) { a.Logger.Debugf(msg, args...) },
	})
	a.Hooks.OnRead(ctx, opts.ManifestPath, len(deps), time.Since(start), err)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.IsInputAccessError(err) {
			return nil, err
		}
		a.Logger.Error(errors.UserMessage(err), "code", errors.GetCode(err))
		a.Hooks.OnComplete(ctx, observability.Summary{Duration: time.Since(start)})
		return nil, nil
	}

	refs := a.Provider.Top(opts.ReferenceCount)
	a.Logger.Debug("comparing names",
		"provider", a.Provider,
		"dependencies", len(deps),
		"references", len(refs),
		"threshold", opts.Threshold)

	var findings []Finding
	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lowerDep := strings.ToLower(dep)
		for _, ref := range refs {
			lowerRef := strings.ToLower(ref)
			if !opts.IncludeExact && lowerDep == lowerRef {
				a.Logger.Debug("skipping exact match", "dependency", dep, "reference", ref)
				continue
			}
			score := a.Scorer.Score(lowerDep, lowerRef)
			if !similarity.Matches(score, opts.Threshold) {
				continue
			}
			findings = append(findings, Finding{Dependency: dep, Reference: ref, Score: score})
			a.Hooks.OnMatch(ctx, dep, ref, score)
		}
	}

	summary := observability.Summary{
		Dependencies: len(deps),
		References:   len(refs),
		Comparisons:  len(deps) * len(refs),
		Findings:     len(findings),
		Duration:     time.Since(start),
	}
	a.Hooks.OnComplete(ctx, summary)
	a.Logger.Debug("analysis complete",
		"findings", summary.Findings,
		"comparisons", summary.Comparisons,
		"duration", summary.Duration)

	return findings, nil
}
