// Package observability provides hooks for instrumenting an analysis run.
//
// Hooks are handed to the analyzer as a value rather than registered
// globally, so independent runs in one process (tests, embedding programs)
// never observe each other's events.
//
// # Usage
//
//	a := analysis.New(provider, nil, logger, observability.Multi{logHooks, counter})
//
// The analyzer calls hooks as it works:
//
//	hooks.OnRead(ctx, path, len(deps), duration, err)
//	hooks.OnMatch(ctx, dep, ref, score)
//	hooks.OnComplete(ctx, Summary{...})
package observability

import (
	"context"
	"time"
)

// Summary describes a finished analysis run.
type Summary struct {
	Dependencies int           // names read from the manifest
	References   int           // reference packages compared against
	Comparisons  int           // pairs scored
	Findings     int           // pairs at or above the threshold
	Duration     time.Duration // wall time of the whole run
}

// AnalysisHooks receives events from the analyzer.
type AnalysisHooks interface {
	// OnRead records the outcome of reading the manifest. err is non-nil
	// when the manifest was missing or unreadable.
	OnRead(ctx context.Context, path string, count int, duration time.Duration, err error)

	// OnMatch records a pair that reached the threshold.
	OnMatch(ctx context.Context, dependency, reference string, score float64)

	// OnComplete records the end of a run.
	OnComplete(ctx context.Context, s Summary)
}

// NoopHooks is a no-op implementation of AnalysisHooks.
type NoopHooks struct{}

func (NoopHooks) OnRead(context.Context, string, int, time.Duration, error) {}
func (NoopHooks) OnMatch(context.Context, string, string, float64)          {}
func (NoopHooks) OnComplete(context.Context, Summary)                       {}

// Multi fans events out to several hooks in order.
type Multi []AnalysisHooks

func (m Multi) OnRead(ctx context.Context, path string, count int, d time.Duration, err error) {
	for _, h := range m {
		h.OnRead(ctx, path, count, d, err)
	}
}

func (m Multi) OnMatch(ctx context.Context, dependency, reference string, score float64) {
	for _, h := range m {
		h.OnMatch(ctx, dependency, reference, score)
	}
}

func (m Multi) OnComplete(ctx context.Context, s Summary) {
	for _, h := range m {
		h.OnComplete(ctx, s)
	}
}

var (
	_ AnalysisHooks = NoopHooks{}
	_ AnalysisHooks = Multi(nil)
)
