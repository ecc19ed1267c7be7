package sources

import "github.com/kerbaras/podscan/pkg/data"

// Directory is a read-only podcast directory.
type Directory interface {
	PodcastByFeedURL(feedURL string) (*data.Podcast, error)
	PodcastByFeedID(feedID int64) (*data.Podcast, error)
	EpisodesByFeedID(feedID int64, max int) ([]data.Episode, error)
}
