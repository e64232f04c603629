package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-trial/internal/storage"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	summaryTableStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// RunSummary renders the clears of gameID as a table, in the order played,
// followed by the best and average times and the total moves. Returns ""
// when nothing was cleared.
func RunSummary(store *storage.Store, gameID string) (string, error) {
	if store == nil {
		return "", nil
	}

	clears, err := store.AllClears(gameID)
	if err != nil {
		return "", err
	}
	if len(clears) == 0 {
		return "", nil
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return "", err
	}
	best, err := store.BestClear(gameID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(summaryTitleStyle.Render("Run summary"))
	sb.WriteString("\n")
	sb.WriteString(summaryTableStyle.Render(clearsTable(clears, best.ID).View()))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%d cleared  best %s s  average %s s  %d moves\n",
		stats.Clears, secs(stats.Best), secs(stats.Average), stats.TotalMoves)
	return sb.String(), nil
}

// clearsTable lists clears in play order and stars the one with bestID.
func clearsTable(clears []storage.ClearRecord, bestID int64) table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Time", Width: 10},
		{Title: "Moves", Width: 7},
		{Title: "Optimal", Width: 8},
		{Title: "Fakes", Width: 6},
		{Title: "Maze", Width: 8},
	}

	rows := make([]table.Row, len(clears))
	for i, c := range clears {
		t := secs(c.Duration)
		if c.ID == bestID {
			t += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", c.Round),
			t,
			fmt.Sprintf("%d", c.Moves),
			fmt.Sprintf("%d", c.OptimalMoves),
			fmt.Sprintf("%d", c.FakeWalls),
			fmt.Sprintf("%dx%d", c.Width, c.Height),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Header and its border included
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

func secs(d time.Duration) string {
	return fmt.Sprintf("%.2f", d.Seconds())
}
