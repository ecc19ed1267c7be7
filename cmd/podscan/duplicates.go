package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/podscan/pkg/data"
	"github.com/kerbaras/podscan/pkg/services"
)

// printDuplicates renders each duplicate group, title groups first, in
// first-seen key order.
func printDuplicates(out io.Writer, d data.Duplicates) {
	if d.Empty() {
		fmt.Fprintln(out, "No duplicate episodes found.")
		return
	}

	fmt.Fprintln(out, "\n=== Duplicate Episodes ===")

	if len(d.TitleKeys) > 0 {
		fmt.Fprintln(out, "\nDuplicates by title:")
		for _, title := range d.TitleKeys {
			fmt.Fprintf(out, "\nTitle: %s\n", title)
			fmt.Fprintln(out, groupTable(d.ByTitle[title], "Episode"))
		}
	}

	if len(d.NumberKeys) > 0 {
		fmt.Fprintln(out, "\nDuplicates by episode number:")
		for _, number := range d.NumberKeys {
			fmt.Fprintf(out, "\nEpisode #: %d\n", number)
			fmt.Fprintln(out, groupTable(d.ByNumber[number], "Title"))
		}
	}
}

// groupTable builds a bordered table for one duplicate group. The middle
// column shows whichever field is not the grouping key.
func groupTable(group []data.Episode, detail string) *table.Table {
	var (
		purple = lipgloss.Color("99")

		headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "ID", detail, "Date", "Enclosure")

	for i, ep := range group {
		var value string
		if detail == "Title" {
			value = truncateString(ep.Title, 40)
		} else if ep.Number != 0 {
			value = strconv.FormatInt(ep.Number, 10)
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.FormatInt(ep.ID, 10),
			value,
			formatDate(ep.Published),
			truncateString(ep.EnclosureURL, 40),
		)
	}
	return t
}

// exportDuplicates writes the merged export file and prints the manual
// follow-up notes. Nothing is written when both groupings are empty.
func exportDuplicates(out io.Writer, d data.Duplicates, dir string, now time.Time) error {
	records := services.Export(d)
	if len(records) == 0 {
		fmt.Fprintln(out, "No duplicate episodes found to export.")
		return nil
	}

	path, err := services.WriteExport(records, dir, now)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nExporting %d episodes to %s\n", len(records), path)
	fmt.Fprintln(out, "Export complete. You can use this file for manual handling of episodes.")
	fmt.Fprintln(out, "Note: The PodcastIndex API does not support direct episode deletion or updates through their public API.")
	fmt.Fprintln(out, "If you need to remove or update duplicate episodes, please contact PodcastIndex support with the specific episode IDs.")
	return nil
}
