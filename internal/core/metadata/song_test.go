package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSong(t *testing.T) {
	raw := []byte(`{
		"title": "Bohemian Rhapsody",
		"artistName": "Queen",
		"thumbnailUrl": "https://img.example/cover.jpg",
		"pageUrl": "https://unitune.app/s/abc",
		"linksByPlatform": {
			"tidal": {"url": "https://tidal.com/browse/track/2"},
			"spotify": {"url": "https://open.spotify.com/track/1"},
			"deezer": {"url": ""}
		}
	}`)

	song, err := ParseSong(raw)
	require.NoError(t, err)
	require.Equal(t, "Bohemian Rhapsody", song.Title)
	require.Equal(t, "Queen", song.Artist)
	require.Equal(t, "https://img.example/cover.jpg", song.Thumbnail)

	// Empty links are dropped, remaining links sorted by platform.
	require.Equal(t, []PlatformLink{
		{Platform: "spotify", URL: "https://open.spotify.com/track/1"},
		{Platform: "tidal", URL: "https://tidal.com/browse/track/2"},
	}, song.Links)
}

func TestParseSongTolerantOfMissingFields(t *testing.T) {
	song, err := ParseSong([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, song.Title)
	require.Empty(t, song.Links)
}

func TestParseSongMalformed(t *testing.T) {
	_, err := ParseSong([]byte(`{broken`))
	require.Error(t, err)
}
