// Package ratelimit implements token-bucket admission control keyed by
// client IP and persisted in the shared key-value store.
//
// The limiter is deliberately best-effort: state updates are plain
// read-modify-write cycles with no locking or transactions, so concurrent
// requests from the same IP may slightly over-admit. Store failures never
// block the serving path; every store error fails open.
package ratelimit

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/FlazeIGuess/unitune-worker/internal/core/kv"
)

// Defaults enforce an average of one request per second with bursts of 60.
const (
	DefaultMaxTokens  = 60
	DefaultRefillRate = 1 // tokens per second
	DefaultWindow     = 60 * time.Second
)

const keyPrefix = "ratelimit:"

// UnknownClient is the shared-bucket sentinel used when no usable client
// address could be derived from the request.
const UnknownClient = "unknown"

// Limiter admits or rejects requests for a client IP.
type Limiter struct {
	Store      kv.Store
	MaxTokens  float64
	RefillRate float64
	Window     time.Duration
	Clock      func() time.Time
}

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Remaining  int
	Limit      int
}

// bucketState is the wire form stored under ratelimit:{ip}. LastRefill is
// milliseconds since epoch. RequestCount is diagnostic only.
type bucketState struct {
	Tokens       float64 `json:"tokens"`
	LastRefill   int64   `json:"lastRefill"`
	RequestCount int64   `json:"requestCount"`
}

// Check runs one token-bucket admission cycle for clientIP.
//
// A nil store, a failed read, a failed write, or a corrupt stored record all
// fail open: the request is admitted. Rate limiting must never become a
// single point of failure for the serving path.
func (l *Limiter) Check(ctx context.Context, clientIP string) Decision {
	limit := int(l.maxTokens())
	open := Decision{Allowed: true, Remaining: limit, Limit: limit}

	if l == nil || l.Store == nil {
		return open
	}
	if clientIP == "" {
		clientIP = UnknownClient
	}

	nowMs := l.now().UnixMilli()
	key := keyPrefix + clientIP

	state := bucketState{Tokens: l.maxTokens(), LastRefill: nowMs}
	raw, err := l.Store.Get(ctx, key)
	switch {
	case err == nil:
		if unmarshalErr := json.Unmarshal(raw, &state); unmarshalErr != nil {
			return open
		}
	case err == kv.ErrNotFound:
		// lazily created bucket, starts full
	default:
		return open
	}

	// Refill from elapsed time. LastRefill only advances when whole tokens
	// were added, otherwise repeated sub-second reads would drift the clock
	// forward without ever granting a token.
	elapsed := float64(nowMs-state.LastRefill) / 1000
	if refill := math.Floor(elapsed * l.refillRate()); refill > 0 {
		state.Tokens = math.Min(state.Tokens+refill, l.maxTokens())
		state.LastRefill = nowMs
	}

	ttl := 2 * l.window()

	if state.Tokens >= 1 {
		state.Tokens--
		state.RequestCount++
		if err := l.persist(ctx, key, state, ttl); err != nil {
			return open
		}
		return Decision{
			Allowed:   true,
			Remaining: int(math.Floor(state.Tokens)),
			Limit:     limit,
		}
	}

	if err := l.persist(ctx, key, state, ttl); err != nil {
		return open
	}
	return Decision{
		Allowed:    false,
		RetryAfter: time.Duration(math.Ceil(1/l.refillRate())) * time.Second,
		Remaining:  0,
		Limit:      limit,
	}
}

func (l *Limiter) persist(ctx context.Context, key string, state bucketState, ttl time.Duration) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return l.Store.Put(ctx, key, raw, ttl)
}

func (l *Limiter) maxTokens() float64 {
	if l != nil && l.MaxTokens > 0 {
		return l.MaxTokens
	}
	return DefaultMaxTokens
}

func (l *Limiter) refillRate() float64 {
	if l != nil && l.RefillRate > 0 {
		return l.RefillRate
	}
	return DefaultRefillRate
}

func (l *Limiter) window() time.Duration {
	if l != nil && l.Window > 0 {
		return l.Window
	}
	return DefaultWindow
}

func (l *Limiter) now() time.Time {
	if l != nil && l.Clock != nil {
		return l.Clock()
	}
	return time.Now().UTC()
}
