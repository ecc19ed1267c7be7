package data

// Podcast is a feed's canonical record in the directory, keyed by an
// integer feed ID.
type Podcast struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Episode is a single item of a feed as the directory reports it.
// Number is 0 when the feed does not tag the item with an episode number.
type Episode struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Number       int64  `json:"episode"`
	Published    int64  `json:"datePublished"`
	EnclosureURL string `json:"enclosureUrl"`
}

// Duplicates holds the two independent duplicate groupings of an episode
// list. Every group has at least two members. TitleKeys and NumberKeys
// record first-seen key order so reports and exports stay deterministic.
type Duplicates struct {
	ByTitle   map[string][]Episode
	TitleKeys []string

	ByNumber   map[int64][]Episode
	NumberKeys []int64
}

// Empty reports whether no duplicate group exists in either mapping.
func (d Duplicates) Empty() bool {
	return len(d.ByTitle) == 0 && len(d.ByNumber) == 0
}

// ExportRecord is one flagged episode in the JSON export file.
// DuplicateValue carries the offending key: the shared title for
// "title" records, the shared number for "episode_number" records.
type ExportRecord struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	EpisodeNumber  int64  `json:"episode_number"`
	DatePublished  int64  `json:"date_published"`
	URL            string `json:"url"`
	DuplicateType  string `json:"duplicate_type"`
	DuplicateValue any    `json:"duplicate_value"`
}
