package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong/internal/storage"
)

// LedgerReader lists finished matches, newest first.
type LedgerReader interface {
	RecentMatches(limit int) ([]storage.MatchRecord, error)
}

var (
	ledgerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).MarginBottom(1)
	ledgerEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// RenderLedger draws finished matches as a table sized to fit height rows.
func RenderLedger(records []storage.MatchRecord, height int) string {
	var sb strings.Builder
	sb.WriteString(ledgerTitleStyle.Render("Matches this session"))
	sb.WriteString("\n")

	if len(records) == 0 {
		sb.WriteString(ledgerEmptyStyle.Render("No finished matches yet. First to 10 wins."))
		return sb.String()
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Finished", Width: 10},
	}

	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Winner.String(),
			fmt.Sprintf("%d-%d", r.Score.Left, r.Score.Right),
			r.Duration.Round(time.Second).String(),
			r.FinishedAt.Format("15:04:05"),
		})
	}

	// Title and its margin take two rows
	tableHeight := max(height-2, 4)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	sb.WriteString(t.View())
	return sb.String()
}
