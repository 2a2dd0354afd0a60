package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/janitor/internal/janitor"
)

var (
	summaryColorGreen = lipgloss.Color("#22c55e")
	summaryColorRed   = lipgloss.Color("#ef4444")
	summaryColorBlue  = lipgloss.Color("#3b82f6")
	summaryColorDim   = lipgloss.Color("#6b7280")
	summaryColorWhite = lipgloss.Color("#f9fafb")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorWhite)

	summarySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorBlue)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryGreenStyle = lipgloss.NewStyle().
				Foreground(summaryColorGreen)

	summaryRedStyle = lipgloss.NewStyle().
			Foreground(summaryColorRed)
)

// renderSummary produces the end-of-pass summary. Styling is applied only
// when the output is a terminal.
func renderSummary(rep *janitor.Report, styled bool) string {
	render := func(style lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return style.Render(s)
	}

	var b strings.Builder

	title := "  janitor pass"
	if rep.DryRun {
		title += " (dry run)"
	}
	b.WriteString("\n")
	b.WriteString(render(summaryTitleStyle, title))
	b.WriteString("\n")
	b.WriteString(render(summaryDimStyle, "  "+strings.Repeat("═", 30)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "    State:        %s\n", rep.State)
	fmt.Fprintf(&b, "    Instances:    %d\n", rep.GroundTruthSize)
	fmt.Fprintf(&b, "    Duration:     %s\n", rep.Duration().Round(time.Millisecond))

	if rep.Aborted() {
		b.WriteString("\n")
		b.WriteString(render(summaryRedStyle, "  Aborted before any deletion: "+rep.ErrorMessage))
		b.WriteString("\n")
		return b.String()
	}

	deletedLabel := "deleted"
	if rep.DryRun {
		deletedLabel = "would delete"
	}

	for _, k := range rep.Kinds {
		b.WriteString("\n")
		b.WriteString(render(summarySectionStyle, "  "+string(k.Kind)))
		b.WriteString("\n")
		b.WriteString(render(summaryDimStyle, "  "+strings.Repeat("─", 35)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "    scanned %d, live %d, unrecognized %d, orphaned %d\n",
			k.Scanned, k.Live, k.Unrecognized, k.Orphaned)

		line := fmt.Sprintf("    %s %d", deletedLabel, len(k.Deleted))
		if len(k.Deleted) > 0 {
			line = render(summaryGreenStyle, line)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if k.Err != nil {
			b.WriteString(render(summaryRedStyle, fmt.Sprintf("    failed %d: %s", k.Failed, k.ErrorMessage)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}
