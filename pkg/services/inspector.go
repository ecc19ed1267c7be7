package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kerbaras/podscan/pkg/data"
)

// Duplicate type tags written to export records.
const (
	DuplicateByTitle  = "title"
	DuplicateByNumber = "episode_number"
)

// FindDuplicates partitions episodes into two independent groupings, by
// trimmed title and by episode number, and keeps only groups with more
// than one member. Episodes with an empty title are excluded from the
// title grouping; episodes without a number are excluded from the number
// grouping. Input order is preserved within each group.
func FindDuplicates(episodes []data.Episode) data.Duplicates {
	byTitle := make(map[string][]data.Episode)
	var titleOrder []string
	for _, ep := range episodes {
		title := strings.TrimSpace(ep.Title)
		if title == "" {
			continue
		}
		if _, ok := byTitle[title]; !ok {
			titleOrder = append(titleOrder, title)
		}
		byTitle[title] = append(byTitle[title], ep)
	}

	byNumber := make(map[int64][]data.Episode)
	var numberOrder []int64
	for _, ep := range episodes {
		if ep.Number == 0 {
			continue
		}
		if _, ok := byNumber[ep.Number]; !ok {
			numberOrder = append(numberOrder, ep.Number)
		}
		byNumber[ep.Number] = append(byNumber[ep.Number], ep)
	}

	dup := data.Duplicates{
		ByTitle:  make(map[string][]data.Episode),
		ByNumber: make(map[int64][]data.Episode),
	}
	for _, title := range titleOrder {
		if group := byTitle[title]; len(group) > 1 {
			dup.ByTitle[title] = group
			dup.TitleKeys = append(dup.TitleKeys, title)
		}
	}
	for _, number := range numberOrder {
		if group := byNumber[number]; len(group) > 1 {
			dup.ByNumber[number] = group
			dup.NumberKeys = append(dup.NumberKeys, number)
		}
	}
	return dup
}

// Export flattens both groupings into one record list. Title groups are
// emitted first; an episode already flagged by title is skipped when its
// number group is reached, so each episode ID appears exactly once.
func Export(d data.Duplicates) []data.ExportRecord {
	var records []data.ExportRecord
	seen := make(map[int64]bool)

	for _, title := range d.TitleKeys {
		for _, ep := range d.ByTitle[title] {
			records = append(records, exportRecord(ep, DuplicateByTitle, title))
			seen[ep.ID] = true
		}
	}
	for _, number := range d.NumberKeys {
		for _, ep := range d.ByNumber[number] {
			if seen[ep.ID] {
				continue
			}
			seen[ep.ID] = true
			records = append(records, exportRecord(ep, DuplicateByNumber, number))
		}
	}
	return records
}

func exportRecord(ep data.Episode, dupType string, dupValue any) data.ExportRecord {
	return data.ExportRecord{
		ID:             ep.ID,
		Title:          ep.Title,
		EpisodeNumber:  ep.Number,
		DatePublished:  ep.Published,
		URL:            ep.EnclosureURL,
		DuplicateType:  dupType,
		DuplicateValue: dupValue,
	}
}

// WriteExport writes records to podcast_episodes_export_<unix>.json under
// dir and returns the file path. The timestamp comes from now so callers
// can pin it in tests.
func WriteExport(records []data.ExportRecord, dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("podcast_episodes_export_%d.json", now.Unix()))
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}
