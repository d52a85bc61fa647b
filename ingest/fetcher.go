package ingest

import (
	"context"
	"io"
	"net/http"
	"time"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

var _ cmdlib.PageFetcher = (*Fetcher)(nil)

// Fetcher retrieves man-page HTML over plain HTTP. Man pages are statically
// rendered, so no browser automation is needed.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a sane request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch downloads the page body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", cmdlib.Errorf(cmdlib.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", cmdlib.Errorf(cmdlib.EUNAVAILABLE, "fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
