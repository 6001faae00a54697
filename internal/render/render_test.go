package render

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FlazeIGuess/unitune-worker/internal/core/metadata"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("https://unitune.app")
	require.NoError(t, err)
	return r
}

func sampleView() PageView {
	return SongView(&metadata.Song{
		Title:     "Bohemian Rhapsody",
		Artist:    "Queen",
		Thumbnail: "https://img.example/cover.jpg",
		Links: []metadata.PlatformLink{
			{Platform: "spotify", URL: "https://open.spotify.com/track/1"},
			{Platform: "tidal", URL: "https://tidal.com/browse/track/2"},
		},
	}, "https://unitune.app/s/abc", "https://open.spotify.com/track/1")
}

func TestPageContainsMetadataAndOGTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, sampleView()))

	html := buf.String()
	require.Contains(t, html, `og:title`)
	require.Contains(t, html, "Bohemian Rhapsody – Queen")
	require.Contains(t, html, `<meta property="og:image" content="https://img.example/cover.jpg">`)
	require.Contains(t, html, `<meta property="og:url" content="https://unitune.app/s/abc">`)
	require.Contains(t, html, `href="https://open.spotify.com/track/1"`)
	require.Contains(t, html, `href="https://tidal.com/browse/track/2"`)
	// The bot page is complete: no client-side re-fetch.
	require.NotContains(t, html, "/api/song")
}

func TestShellCarriesOGTagsAndRefetch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Shell(&buf, sampleView()))

	html := buf.String()
	require.Contains(t, html, `og:title`)
	require.Contains(t, html, "Bohemian Rhapsody – Queen")
	require.Contains(t, html, "/api/song")
	require.Contains(t, html, "cookie-consent")
	require.Contains(t, html, "donation-widget")
}

func TestErrorPageHasNoInternalDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Error(&buf, http.StatusNotFound, "We couldn't find that track."))

	html := buf.String()
	require.Contains(t, html, "404")
	require.Contains(t, html, "We couldn't find that track.")
}

func TestHome(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Home(&buf))
	require.Contains(t, buf.String(), "unitune")
}

func TestPageEscapesMetadata(t *testing.T) {
	view := sampleView()
	view.Title = `<script>alert("xss")</script>`

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, view))
	require.NotContains(t, buf.String(), `<script>alert`)
}

func TestEmptyTitleFallsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, PageView{}))
	require.Contains(t, buf.String(), "Unknown track")
}
