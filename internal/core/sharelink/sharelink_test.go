package sharelink

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSpotifyTrack(t *testing.T) {
	// Base64 of spotify:track:123, with standard padding.
	url, err := Decode("c3BvdGlmeTp0cmFjazoxMjM=")
	require.NoError(t, err)
	require.Equal(t, "https://open.spotify.com/track/123", url)
}

func TestDecodeTidalAlbum(t *testing.T) {
	// Base64 of tidal:album:456, unpadded as produced by Encode.
	url, err := Decode("dGlkYWw6YWxidW06NDU2")
	require.NoError(t, err)
	require.Equal(t, "https://tidal.com/browse/album/456", url)
}

func TestDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		platform string
		typ      string
		id       string
		want     string
	}{
		{"spotify", "track", "4cOdK2wGLETKBW3PvgPWqT", "https://open.spotify.com/track/4cOdK2wGLETKBW3PvgPWqT"},
		{"spotify", "album", "789", "https://open.spotify.com/album/789"},
		{"tidal", "track", "88025431", "https://tidal.com/browse/track/88025431"},
		{"deezer", "album", "302127", "https://www.deezer.com/album/302127"},
		{"youtubemusic", "track", "dQw4w9WgXcQ", "https://music.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"amazonmusic", "album", "B0DJH69LZ1", "https://music.amazon.com/albums/B0DJH69LZ1"},
	}

	for _, tc := range cases {
		url, err := Decode(Encode(tc.platform, tc.typ, tc.id))
		require.NoError(t, err, "%s:%s:%s", tc.platform, tc.typ, tc.id)
		require.Equal(t, tc.want, url)
	}
}

func TestDecodeCaseInsensitivePlatform(t *testing.T) {
	url, err := Decode(Encode("Spotify", "track", "123"))
	require.NoError(t, err)
	require.Equal(t, "https://open.spotify.com/track/123", url)
}

func TestDecodeIDWithColons(t *testing.T) {
	url, err := Decode(Encode("spotify", "track", "a:b:c"))
	require.NoError(t, err)
	require.Equal(t, "https://open.spotify.com/track/a:b:c", url)
}

func TestDecodeUnsupportedPlatform(t *testing.T) {
	_, err := Decode(Encode("myspace", "track", "123"))
	require.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestDecodeMalformedBase64(t *testing.T) {
	_, err := Decode("%%%not-base64%%%")
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestDecodeEmptySegment(t *testing.T) {
	_, err := Decode("")
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestDecodePayloadWithoutColons(t *testing.T) {
	segment := base64.RawURLEncoding.EncodeToString([]byte("justaword"))
	_, err := Decode(segment)
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestDecodeFullURLPayloadRejected(t *testing.T) {
	// Payloads that decode to a complete URL were never produced by the
	// link shortener; they surface as invalid identifiers.
	segment := base64.RawURLEncoding.EncodeToString([]byte("https://open.spotify.com/track/123"))
	_, err := Decode(segment)
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestPlatformsSorted(t *testing.T) {
	platforms := Platforms()
	require.NotEmpty(t, platforms)
	for i := 1; i < len(platforms); i++ {
		require.Less(t, platforms[i-1].Key, platforms[i].Key)
	}
}
