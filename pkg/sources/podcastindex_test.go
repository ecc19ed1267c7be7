package sources

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient(serverURL string) *PodcastIndex {
	p := NewPodcastIndex("key", "secret")
	p.baseURL = serverURL
	p.now = func() time.Time { return time.Unix(42, 0) }
	return p
}

func TestPodcastByFeedURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/podcasts/byfeedurl", r.URL.Path)
		assert.Equal(t, "http://example.com/feed.xml", r.URL.Query().Get("url"))
		assert.Equal(t, "key", r.Header.Get("X-Auth-Key"))
		assert.Equal(t, "42", r.Header.Get("X-Auth-Date"))
		// sha1("key" + "secret" + "42")
		assert.Equal(t, "1a520d945e1622a9d65fc376218e22e1cc749af0", r.Header.Get("Authorization"))
		assert.Equal(t, "podscan/1.0", r.Header.Get("User-Agent"))

		fmt.Fprint(w, `{"status":"true","feed":{"id":920666,"title":"Podcasting 2.0","url":"http://example.com/feed.xml"}}`)
	}))
	defer server.Close()

	podcast, err := testClient(server.URL).PodcastByFeedURL("http://example.com/feed.xml")

	assert.NoError(t, err)
	assert.Equal(t, int64(920666), podcast.ID)
	assert.Equal(t, "Podcasting 2.0", podcast.Title)
	assert.Equal(t, "http://example.com/feed.xml", podcast.URL)
}

func TestPodcastByFeedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/podcasts/byfeedid", r.URL.Path)
		assert.Equal(t, "920666", r.URL.Query().Get("id"))

		fmt.Fprint(w, `{"status":"true","feed":{"id":920666,"title":"Podcasting 2.0"}}`)
	}))
	defer server.Close()

	podcast, err := testClient(server.URL).PodcastByFeedID(920666)

	assert.NoError(t, err)
	assert.Equal(t, int64(920666), podcast.ID)
}

func TestEpisodesByFeedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/episodes/byfeedid", r.URL.Path)
		assert.Equal(t, "920666", r.URL.Query().Get("id"))
		assert.Equal(t, "50", r.URL.Query().Get("max"))

		fmt.Fprint(w, `{"status":"true","items":[
			{"id":1,"title":"Ep A","episode":1,"datePublished":1700000000,"enclosureUrl":"http://example.com/1.mp3"},
			{"id":2,"title":"Ep B","episode":null,"datePublished":1700086400,"enclosureUrl":"http://example.com/2.mp3"}
		]}`)
	}))
	defer server.Close()

	episodes, err := testClient(server.URL).EpisodesByFeedID(920666, 50)

	assert.NoError(t, err)
	assert.Len(t, episodes, 2)
	assert.Equal(t, int64(1), episodes[0].ID)
	assert.Equal(t, "Ep A", episodes[0].Title)
	assert.Equal(t, int64(1), episodes[0].Number)
	assert.Equal(t, int64(1700000000), episodes[0].Published)
	assert.Equal(t, "http://example.com/1.mp3", episodes[0].EnclosureURL)
	assert.Equal(t, int64(0), episodes[1].Number)
}

func TestEpisodesByFeedIDDefaultMax(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000", r.URL.Query().Get("max"))
		fmt.Fprint(w, `{"status":"true","items":[]}`)
	}))
	defer server.Close()

	episodes, err := testClient(server.URL).EpisodesByFeedID(920666, 0)

	assert.NoError(t, err)
	assert.Empty(t, episodes)
}

func TestAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"false","description":"No podcasts match this URL."}`)
	}))
	defer server.Close()

	_, err := testClient(server.URL).PodcastByFeedURL("http://example.com/feed.xml")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %v", err)
	}
	assert.Equal(t, "No podcasts match this URL.", apiErr.Description)
}

func TestUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := testClient(server.URL).EpisodesByFeedID(920666, 10)

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("Expected *UpstreamError, got %v", err)
	}
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.Status)
	assert.Contains(t, upstreamErr.Body, "unauthorized")
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := testClient(server.URL).PodcastByFeedID(920666)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "podcastindex request failed")
}
