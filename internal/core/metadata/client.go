// Package metadata fetches song and playlist metadata from the upstream
// conversion API and caches song lookups in the key-value store.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every upstream call. The legacy deployment relied on
// the platform's request lifetime instead; an explicit timeout keeps slow
// upstreams from stalling the serving path.
const DefaultTimeout = 10 * time.Second

// ErrUpstream reports a non-2xx upstream response.
var ErrUpstream = errors.New("metadata: upstream request failed")

// Client calls the upstream metadata API.
type Client struct {
	SongURL     string
	PlaylistURL string
	UserAgent   string
	HTTPClient  *http.Client
}

// FetchSong issues exactly one GET for the metadata of a canonical music
// URL. No retries: this sits on the user-facing request path.
func (c *Client) FetchSong(ctx context.Context, musicURL string) ([]byte, error) {
	resp, err := c.DoSong(ctx, musicURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("metadata: read song response: %w", err)
	}
	return body, nil
}

// DoSong performs the raw upstream song request and returns the response
// unread. The /api/song proxy uses it to forward status and body verbatim.
func (c *Client) DoSong(ctx context.Context, musicURL string) (*http.Response, error) {
	if c == nil || c.SongURL == "" {
		return nil, errors.New("metadata: client is not configured")
	}

	endpoint := c.SongURL + "?url=" + url.QueryEscape(musicURL)
	return c.get(ctx, endpoint)
}

// FetchPlaylist issues exactly one GET for playlist metadata.
func (c *Client) FetchPlaylist(ctx context.Context, playlistID string) ([]byte, error) {
	if c == nil || c.PlaylistURL == "" {
		return nil, errors.New("metadata: playlist endpoint is not configured")
	}

	endpoint := c.PlaylistURL + "?id=" + url.QueryEscape(playlistID)
	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("metadata: read playlist response: %w", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("metadata: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metadata: upstream call: %w", err)
	}
	return resp, nil
}
