package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/podscan/pkg/data"
)

// printEpisodes renders every fetched episode in a formatted table.
func printEpisodes(out io.Writer, episodes []data.Episode) {
	fmt.Fprintf(out, "\nFound %d episodes:\n\n", len(episodes))
	if len(episodes) == 0 {
		return
	}

	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "ID", Width: 12},
		{Title: "Title", Width: 40},
		{Title: "Episode", Width: 8},
		{Title: "Published", Width: 12},
		{Title: "Enclosure", Width: 40},
	}

	rows := []table.Row{}
	for i, ep := range episodes {
		number := ""
		if ep.Number != 0 {
			number = strconv.FormatInt(ep.Number, 10)
		}

		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.FormatInt(ep.ID, 10),
			truncateString(ep.Title, 38),
			number,
			formatDate(ep.Published),
			truncateString(ep.EnclosureURL, 38),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	fmt.Fprintln(out, t.View())
}

func formatDate(unix int64) string {
	if unix == 0 {
		return ""
	}
	return time.Unix(unix, 0).UTC().Format("2006-01-02")
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
