package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossroad/internal/storage"
)

// summaryRows is how many runs the exit summary lists.
const summaryRows = 5

// Summary renders the best runs of this session as a table, for printing
// after the alternate screen is gone. It returns "" when nothing was played.
func Summary(store *storage.Store, variant string) (string, error) {
	if store == nil {
		return "", nil
	}
	runs, err := store.TopRuns(variant, summaryRows)
	if err != nil {
		return "", fmt.Errorf("tui: cannot load runs: %w", err)
	}
	if len(runs) == 0 {
		return "", nil
	}
	total, err := store.RunCount(variant)
	if err != nil {
		return "", fmt.Errorf("tui: cannot count runs: %w", err)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Rows", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Ended by", Width: 10},
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.1fs", r.Elapsed),
			endedBy(r.Reason),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header and its border take two lines
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable once the program has exited.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %d run(s) this session", variant, total)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(t.View()))
	return b.String(), nil
}

func endedBy(reason string) string {
	switch reason {
	case "crashed":
		return "car"
	case "time_up":
		return "clock"
	default:
		return reason
	}
}
