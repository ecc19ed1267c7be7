package sources

import "fmt"

// UpstreamError is a non-200 response from the directory.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("podcastindex: unexpected status %d: %s", e.Status, e.Body)
}

// APIError is a logical failure the directory reports inside a 200
// envelope, carrying its description field.
type APIError struct {
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("podcastindex: %s", e.Description)
}
