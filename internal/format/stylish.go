package format

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/oasguard/oasguard/problems"
)

// Stylish renders problems grouped by source file, colorized when stdout
// is a terminal, in the style of the pack's own colorized CLI output
// (console.go's lipgloss-styled error/warning rendering).
type Stylish struct{}

var (
	fileStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB86C"))
	pointerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
)

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func style(w io.Writer, s lipgloss.Style, text string) string {
	if isTTY(w) {
		return s.Render(text)
	}
	return text
}

// Format implements Formatter.
func (Stylish) Format(w io.Writer, results []Result) error {
	var totalErrors, totalWarnings int
	for _, r := range results {
		if len(r.Problems) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, style(w, fileStyle, r.SourceURI)+":"); err != nil {
			return err
		}
		for _, p := range r.Problems {
			sevStyle := warnStyle
			if p.Severity == problems.SeverityError {
				sevStyle = errorStyle
			}
			pointer := ""
			if len(p.Location) > 0 {
				pointer = p.Location[0].Pointer
			}
			ln, col := r.position(pointer)
			line := fmt.Sprintf("  %d:%d  %s  %s  %s  %s",
				ln, col,
				style(w, sevStyle, string(p.Severity)),
				style(w, pointerStyle, pointer),
				p.Message,
				style(w, ruleStyle, p.RuleID),
			)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			if p.From != nil {
				if _, err := fmt.Fprintf(w, "    %s %s#%s\n", style(w, pointerStyle, "from"), p.From.SourceURI, p.From.Pointer); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		totalErrors += r.Totals.Errors
		totalWarnings += r.Totals.Warnings
	}

	summary := fmt.Sprintf("%d error(s), %d warning(s)", totalErrors, totalWarnings)
	if totalErrors > 0 {
		summary = style(w, errorStyle, summary)
	} else if totalWarnings > 0 {
		summary = style(w, warnStyle, summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
