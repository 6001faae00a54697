package metadata

import "encoding/json"

// Playlist is the subset of playlist metadata the pages need.
type Playlist struct {
	Title      string
	Creator    string
	Thumbnail  string
	PageURL    string
	TrackCount int
}

// ParsePlaylist extracts display fields from a raw upstream playlist
// response. Missing fields are tolerated like in ParseSong.
func ParsePlaylist(raw json.RawMessage) (*Playlist, error) {
	var payload struct {
		Title        string `json:"title"`
		CreatorName  string `json:"creatorName"`
		ThumbnailURL string `json:"thumbnailUrl"`
		PageURL      string `json:"pageUrl"`
		Tracks       []struct {
			Title string `json:"title"`
		} `json:"tracks"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	return &Playlist{
		Title:      payload.Title,
		Creator:    payload.CreatorName,
		Thumbnail:  payload.ThumbnailURL,
		PageURL:    payload.PageURL,
		TrackCount: len(payload.Tracks),
	}, nil
}
