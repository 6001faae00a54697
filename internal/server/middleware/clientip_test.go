package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "cloudflare header wins",
			headers: map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1", "X-Real-IP": "192.0.2.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "first forwarded entry",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1, 10.0.0.2"},
			want:    "198.51.100.1",
		},
		{
			name:    "forwarded entry trimmed",
			headers: map[string]string{"X-Forwarded-For": "  198.51.100.1 , 10.0.0.1"},
			want:    "198.51.100.1",
		},
		{
			name:    "real ip fallback",
			headers: map[string]string{"X-Real-IP": "192.0.2.1"},
			want:    "192.0.2.1",
		},
		{
			name:    "forwarded beats real ip",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.1", "X-Real-IP": "192.0.2.1"},
			want:    "198.51.100.1",
		},
		{
			name:    "no headers",
			headers: nil,
			want:    "unknown",
		},
		{
			name:    "empty forwarded falls through",
			headers: map[string]string{"X-Forwarded-For": "  ", "X-Real-IP": "192.0.2.1"},
			want:    "192.0.2.1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/s/abc", nil)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			require.Equal(t, tc.want, ResolveClientIP(r))
		})
	}
}
