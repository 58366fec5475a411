package validators

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestQueryFloatIgnoresMalformedValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/arttoys?rating=4.5&price=cheap", nil)

	if got := QueryFloat(r, "rating"); got == nil || *got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
	if got := QueryFloat(r, "price"); got != nil {
		t.Fatalf("malformed value should read as absent, got %v", got)
	}
	if got := QueryFloat(r, "missing"); got != nil {
		t.Fatalf("missing value should be nil, got %v", got)
	}
}

func TestQueryDateAcceptsBothLayouts(t *testing.T) {
	r := httptest.NewRequest("GET", "/arttoys?a=2026-04-01&b=2026-04-01T12:30:00Z&c=yesterday", nil)

	a := QueryDate(r, "a")
	if a == nil || !a.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", a)
	}
	if b := QueryDate(r, "b"); b == nil || b.Hour() != 12 {
		t.Fatalf("unexpected timestamp %v", b)
	}
	if c := QueryDate(r, "c"); c != nil {
		t.Fatalf("malformed date should be nil, got %v", c)
	}
}

func TestQueryStringList(t *testing.T) {
	r := httptest.NewRequest("GET", "/arttoys?tags=labubu,%20forest,,&empty=", nil)

	tags := QueryStringList(r, "tags")
	if len(tags) != 2 || tags[0] != "labubu" || tags[1] != "forest" {
		t.Fatalf("unexpected tags %v", tags)
	}
	if got := QueryStringList(r, "empty"); got != nil {
		t.Fatalf("expected nil for empty param, got %v", got)
	}
}

func TestQueryIntDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/arttoys?page=3&limit=abc", nil)

	if got := QueryIntDefault(r, "page", 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := QueryIntDefault(r, "limit", 12); got != 12 {
		t.Fatalf("expected fallback 12, got %d", got)
	}
}
