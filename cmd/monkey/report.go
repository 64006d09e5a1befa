package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/monkeyfront/frontconfigs"
)

type reportStyles struct {
	header lipgloss.Style
	error  lipgloss.Style
	more   lipgloss.Style
}

func newReportStyles(w io.Writer) reportStyles {
	renderer := lipgloss.NewRenderer(w)
	return reportStyles{
		header: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		error:  renderer.NewStyle().PaddingLeft(2),
		more:   renderer.NewStyle().PaddingLeft(2).Faint(true),
	}
}

// Report prints the errors of one parse, capped at MaxReportedErrors.
type Report func(w io.Writer, parsed Parsed) error

func (Module) Report(
	maxErrors frontconfigs.MaxReportedErrors,
) Report {
	return func(w io.Writer, parsed Parsed) error {
		if len(parsed.Errors) == 0 {
			return nil
		}
		styles := newReportStyles(w)

		header := fmt.Sprintf("%s: %d parse error", parsed.Input.Name, len(parsed.Errors))
		if len(parsed.Errors) > 1 {
			header += "s"
		}
		if _, err := fmt.Fprintln(w, styles.header.Render(header)); err != nil {
			return err
		}

		shown := parsed.Errors[:min(len(parsed.Errors), max(int(maxErrors), 1))]
		for _, e := range shown {
			if _, err := fmt.Fprintln(w, styles.error.Render(e.Error())); err != nil {
				return err
			}
		}

		if rest := len(parsed.Errors) - len(shown); rest > 0 {
			if _, err := fmt.Fprintln(w, styles.more.Render(fmt.Sprintf("and %d more", rest))); err != nil {
				return err
			}
		}
		return nil
	}
}
