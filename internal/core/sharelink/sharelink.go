// Package sharelink decodes the compact, URL-safe identifiers used in
// /s/{identifier} paths into canonical music URLs.
//
// An identifier is the unpadded URL-safe Base64 encoding of a
// platform:type:id triple, for example c3BvdGlmeTp0cmFjazoxMjM for
// spotify:track:123. The id portion may itself contain colons.
package sharelink

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// ErrInvalidIdentifier covers malformed Base64 and decoded payloads that
	// do not form a platform:type:id triple.
	ErrInvalidIdentifier = errors.New("sharelink: invalid identifier")

	// ErrUnsupportedPlatform is returned for well-formed triples naming a
	// platform the registry does not know.
	ErrUnsupportedPlatform = errors.New("sharelink: unsupported platform")
)

var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// Decode converts an opaque path segment into a canonical music URL.
func Decode(segment string) (string, error) {
	if strings.TrimSpace(segment) == "" {
		return "", ErrInvalidIdentifier
	}

	decoded, err := decodeBase64(segment)
	if err != nil {
		return "", ErrInvalidIdentifier
	}

	// A decoded payload that is already a full URL is not supported here;
	// the upstream service never produced such identifiers and the legacy
	// behavior surfaced them as invalid links.
	if schemePattern.MatchString(decoded) {
		return "", ErrInvalidIdentifier
	}

	if !strings.Contains(decoded, ":") {
		return "", ErrInvalidIdentifier
	}

	// Split on the first two colons only; track ids may contain colons.
	parts := strings.SplitN(decoded, ":", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", ErrInvalidIdentifier
	}

	platform, ok := Lookup(parts[0])
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, strings.ToLower(parts[0]))
	}

	return platform.URL(parts[1], parts[2]), nil
}

// Encode produces the identifier for a platform:type:id triple. Inverse of
// Decode for every registered platform.
func Encode(platform, typ, id string) string {
	payload := platform + ":" + typ + ":" + id
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// decodeBase64 pads the segment to a multiple of four, maps the URL-safe
// alphabet back to the standard one, and decodes.
func decodeBase64(segment string) (string, error) {
	normalized := strings.NewReplacer("-", "+", "_", "/").Replace(segment)
	if padding := len(normalized) % 4; padding != 0 {
		normalized += strings.Repeat("=", 4-padding)
	}

	decoded, err := base64.StdEncoding.DecodeString(normalized)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Lookup finds a platform by its case-insensitive registry key.
func Lookup(key string) (Platform, bool) {
	platform, ok := registry[strings.ToLower(strings.TrimSpace(key))]
	return platform, ok
}

// Platforms returns all registered platforms sorted by key.
func Platforms() []Platform {
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	platforms := make([]Platform, 0, len(keys))
	for _, key := range keys {
		platforms = append(platforms, registry[key])
	}
	return platforms
}
