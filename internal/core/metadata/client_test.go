package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchSongRequestShape(t *testing.T) {
	var gotURL, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"title":"x"}`))
	}))
	defer server.Close()

	client := &Client{SongURL: server.URL, UserAgent: "unitune-server/1.0 (+https://unitune.app)"}
	body, err := client.FetchSong(context.Background(), "https://open.spotify.com/track/1?si=abc&x=y")
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"x"}`, string(body))
	require.Equal(t, "https://open.spotify.com/track/1?si=abc&x=y", gotURL)
	require.Equal(t, "unitune-server/1.0 (+https://unitune.app)", gotUA)
}

func TestFetchSongNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := &Client{SongURL: server.URL}
	_, err := client.FetchSong(context.Background(), "https://open.spotify.com/track/1")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestFetchSongNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := &Client{SongURL: server.URL}
	_, err := client.FetchSong(context.Background(), "https://open.spotify.com/track/1")
	require.Error(t, err)
}

func TestFetchSongUnconfigured(t *testing.T) {
	client := &Client{}
	_, err := client.FetchSong(context.Background(), "https://open.spotify.com/track/1")
	require.Error(t, err)
}

func TestDoSongForwardsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer server.Close()

	client := &Client{SongURL: server.URL}
	resp, err := client.DoSong(context.Background(), "https://open.spotify.com/track/1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestFetchPlaylist(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("id")
		_, _ = w.Write([]byte(`{"name":"Mix"}`))
	}))
	defer server.Close()

	client := &Client{PlaylistURL: server.URL}
	body, err := client.FetchPlaylist(context.Background(), "pl-42")
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Mix"}`, string(body))
	require.Equal(t, "pl-42", gotID)
}
