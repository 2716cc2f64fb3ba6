package cli

import (
	"fmt"
	"io"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/analysis"
)

// Result lines written to stdout. Scripts match on these exactly.
const (
	headerRisksFound = "Potential typosquatting risks found:"
	noRisksFound     = "No potential typosquatting risks found."
)

// writeReport prints the findings, one indented line each, or the
// no-risk line when there are none.
func writeReport(w io.Writer, findings []analysis.Finding) error {
	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, noRisksFound)
		return err
	}
	if _, err := fmt.Fprintln(w, headerRisksFound); err != nil {
		return err
	}
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, "  "+f.String()); err != nil {
			return err
		}
	}
	return nil
}
