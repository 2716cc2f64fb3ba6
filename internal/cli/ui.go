package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorRed  = lipgloss.Color("167") // Soft red - errors
	colorGray = lipgloss.Color("245") // Gray - secondary text
)

const iconError = "✗"

// printError writes a styled error line to w. Styling adapts to w, so
// redirected output stays plain text.
func printError(w io.Writer, format string, args ...any) {
	r := lipgloss.NewRenderer(w)
	icon := r.NewStyle().Foreground(colorRed).Render(iconError)
	msg := r.NewStyle().Foreground(colorGray).Render(fmt.Sprintf(format, args...))
	fmt.Fprintln(w, icon+" "+msg)
}
