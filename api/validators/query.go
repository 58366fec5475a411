package validators

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Query parameter parsing is lenient: a malformed value reads the same as an
// absent one, so a bad filter widens the result set instead of failing the
// request.

func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func QueryInt(r *http.Request, key string) *int {
	raw := QueryString(r, key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func QueryIntDefault(r *http.Request, key string, fallback int) int {
	if value := QueryInt(r, key); value != nil {
		return *value
	}
	return fallback
}

func QueryFloat(r *http.Request, key string) *float64 {
	raw := QueryString(r, key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// QueryDate accepts RFC 3339 timestamps or bare dates.
func QueryDate(r *http.Request, key string) *time.Time {
	raw := QueryString(r, key)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if value, err := time.Parse(layout, raw); err == nil {
			return &value
		}
	}
	return nil
}

// QueryStringList splits a comma-separated parameter, dropping empty parts.
func QueryStringList(r *http.Request, key string) []string {
	raw := QueryString(r, key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
