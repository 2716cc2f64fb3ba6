package cli

import (
	"context"
	"time"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/observability"
)

// logHooks reports analysis events through the logger carried by the
// context. Everything is debug level; the result itself goes to stdout.
type logHooks struct{}

func (logHooks) OnRead(ctx context.Context, path string, count int, d time.Duration, err error) {
	if err != nil {
		return
	}
	loggerFromContext(ctx).Debug("read manifest", "path", path, "dependencies", count, "duration", d)
}

func (logHooks) OnMatch(ctx context.Context, dependency, reference string, score float64) {
	loggerFromContext(ctx).Debug("similar name", "dependency", dependency, "reference", reference, "score", score)
}

func (logHooks) OnComplete(ctx context.Context, s observability.Summary) {
	loggerFromContext(ctx).Debug("summary",
		"dependencies", s.Dependencies,
		"references", s.References,
		"comparisons", s.Comparisons,
		"findings", s.Findings)
}

// summaryHook keeps the summary of the last completed run.
type summaryHook struct {
	observability.NoopHooks
	summary observability.Summary
}

func (h *summaryHook) OnComplete(_ context.Context, s observability.Summary) {
	h.summary = s
}

var (
	_ observability.AnalysisHooks = logHooks{}
	_ observability.AnalysisHooks = (*summaryHook)(nil)
)
