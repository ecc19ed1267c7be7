package sources

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kerbaras/podscan/pkg/data"
)

// DefaultMaxEpisodes caps a single episodes page when the caller does not
// override it.
const DefaultMaxEpisodes = 1000

type Feed struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (f *Feed) ToPodcast() *data.Podcast {
	return &data.Podcast{
		ID:    f.ID,
		Title: f.Title,
		URL:   f.URL,
	}
}

type Item struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Episode       int64  `json:"episode"`
	DatePublished int64  `json:"datePublished"`
	EnclosureURL  string `json:"enclosureUrl"`
}

func (i *Item) ToEpisode() data.Episode {
	return data.Episode{
		ID:           i.ID,
		Title:        i.Title,
		Number:       i.Episode,
		Published:    i.DatePublished,
		EnclosureURL: i.EnclosureURL,
	}
}

// envelope is the outer wrapper around every directory response. Status is
// the string "true" on success; anything else is a failure described by
// Description.
type envelope struct {
	Status      string `json:"status"`
	Description string `json:"description"`
	Feed        *Feed  `json:"feed"`
	Items       []Item `json:"items"`
}

type PodcastIndex struct {
	api     *http.Client
	baseURL string
	key     string
	secret  string
	now     func() time.Time
}

func NewPodcastIndex(key, secret string) *PodcastIndex {
	return &PodcastIndex{
		api:     http.DefaultClient,
		baseURL: "https://api.podcastindex.org/api/1.0",
		key:     key,
		secret:  secret,
		now:     time.Now,
	}
}

func (p *PodcastIndex) get(path string, params url.Values) (*envelope, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s?%s", p.baseURL, path, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	req.Header = authHeaders(p.key, p.secret, p.now())
	req.Header.Set("Accept", "application/json")

	resp, err := p.api.Do(req)
	if err != nil {
		return nil, fmt.Errorf("podcastindex request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding podcastindex response: %w", err)
	}
	if env.Status != "true" {
		return nil, &APIError{Description: env.Description}
	}
	return &env, nil
}

func (p *PodcastIndex) PodcastByFeedURL(feedURL string) (*data.Podcast, error) {
	env, err := p.get("/podcasts/byfeedurl", url.Values{"url": {feedURL}})
	if err != nil {
		return nil, err
	}
	if env.Feed == nil {
		return &data.Podcast{}, nil
	}
	return env.Feed.ToPodcast(), nil
}

func (p *PodcastIndex) PodcastByFeedID(feedID int64) (*data.Podcast, error) {
	env, err := p.get("/podcasts/byfeedid", url.Values{"id": {strconv.FormatInt(feedID, 10)}})
	if err != nil {
		return nil, err
	}
	if env.Feed == nil {
		return &data.Podcast{}, nil
	}
	return env.Feed.ToPodcast(), nil
}

func (p *PodcastIndex) EpisodesByFeedID(feedID int64, max int) ([]data.Episode, error) {
	if max <= 0 {
		max = DefaultMaxEpisodes
	}
	params := url.Values{
		"id":  {strconv.FormatInt(feedID, 10)},
		"max": {strconv.Itoa(max)},
	}
	env, err := p.get("/episodes/byfeedid", params)
	if err != nil {
		return nil, err
	}
	out := make([]data.Episode, len(env.Items))
	for i, item := range env.Items {
		out[i] = item.ToEpisode()
	}
	return out, nil
}
