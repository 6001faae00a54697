package metadata

import (
	"encoding/json"
	"sort"
	"strings"
)

// Song is the lenient view of the upstream metadata payload used for
// rendering. The raw payload itself stays opaque in the cache; only the
// fields the pages need are pulled out here.
type Song struct {
	Title     string
	Artist    string
	Thumbnail string
	PageURL   string
	Links     []PlatformLink
}

// PlatformLink is one per-platform listen link.
type PlatformLink struct {
	Platform string
	URL      string
}

// ParseSong extracts the render fields from an upstream payload. Missing
// fields are tolerated; only malformed JSON is an error.
func ParseSong(raw json.RawMessage) (*Song, error) {
	var payload struct {
		Title           string `json:"title"`
		ArtistName      string `json:"artistName"`
		ThumbnailURL    string `json:"thumbnailUrl"`
		PageURL         string `json:"pageUrl"`
		LinksByPlatform map[string]struct {
			URL string `json:"url"`
		} `json:"linksByPlatform"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	song := &Song{
		Title:     strings.TrimSpace(payload.Title),
		Artist:    strings.TrimSpace(payload.ArtistName),
		Thumbnail: strings.TrimSpace(payload.ThumbnailURL),
		PageURL:   strings.TrimSpace(payload.PageURL),
	}

	for platform, link := range payload.LinksByPlatform {
		if strings.TrimSpace(link.URL) == "" {
			continue
		}
		song.Links = append(song.Links, PlatformLink{
			Platform: platform,
			URL:      link.URL,
		})
	}

	// Deterministic order for templates and tests.
	sort.Slice(song.Links, func(i, j int) bool {
		return song.Links[i].Platform < song.Links[j].Platform
	})

	return song, nil
}
