package metadata

import (
	"context"
	"encoding/json"
	"time"

	"github.com/FlazeIGuess/unitune-worker/internal/core/kv"
)

// FreshnessWindow is how long a cached entry is served without an upstream
// call. Freshness is checked by the reader; the store TTL is only a backstop.
const FreshnessWindow = 24 * time.Hour

const keyPrefix = "metadata:"

// cachedEntry is the wire form stored under metadata:{identifier}.
// Data stays opaque: its structure is owned by the upstream API.
type cachedEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Resolver answers song-metadata lookups from cache or one upstream fetch.
type Resolver struct {
	Store  kv.Store
	Client *Client
	TTL    time.Duration
	Clock  func() time.Time
}

// Resolve returns the metadata for musicURL, keyed in the cache by the
// share-link identifier (short and stable, unlike the URL).
//
// Store failures on either side degrade to cache-miss behavior; an upstream
// failure yields nil so the caller can render its not-found page. Resolve
// never returns an error.
func (r *Resolver) Resolve(ctx context.Context, musicURL, identifier string) json.RawMessage {
	if r == nil || r.Client == nil {
		return nil
	}

	key := keyPrefix + identifier
	nowMs := r.now().UnixMilli()

	if r.Store != nil {
		if raw, err := r.Store.Get(ctx, key); err == nil {
			var entry cachedEntry
			if json.Unmarshal(raw, &entry) == nil && nowMs-entry.Timestamp < FreshnessWindow.Milliseconds() {
				return entry.Data
			}
		}
	}

	data, err := r.Client.FetchSong(ctx, musicURL)
	if err != nil {
		return nil
	}

	if r.Store != nil {
		entry := cachedEntry{Data: data, Timestamp: nowMs}
		if raw, err := json.Marshal(entry); err == nil {
			// Best effort: a failed cache write must not fail the request.
			_ = r.Store.Put(ctx, key, raw, r.ttl())
		}
	}

	return data
}

func (r *Resolver) ttl() time.Duration {
	if r != nil && r.TTL > 0 {
		return r.TTL
	}
	return FreshnessWindow
}

func (r *Resolver) now() time.Time {
	if r != nil && r.Clock != nil {
		return r.Clock()
	}
	return time.Now().UTC()
}
