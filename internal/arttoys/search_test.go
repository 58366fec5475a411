package arttoys

import (
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
)

func TestFuzzyMatch(t *testing.T) {
	cases := []struct {
		term, token string
		want        bool
	}{
		{"labubu", "labubu", true},
		{"labubu", "labubo", true},  // substitution
		{"labubu", "labub", true},   // deletion
		{"labubu", "labubbu", true}, // insertion
		{"labubu", "lababa", false}, // two edits
		{"labubu", "molly", false},
		{"xabubu", "labubu", false}, // prefix must match exactly
		{"hu", "he", false},         // short terms match exactly only
		{"hu", "hu", true},
	}
	for _, tc := range cases {
		if got := fuzzyMatch(tc.term, tc.token); got != tc.want {
			t.Fatalf("fuzzyMatch(%q, %q) = %v, want %v", tc.term, tc.token, got, tc.want)
		}
	}
}

func TestQueryTermsIncludesConcatenatedForm(t *testing.T) {
	terms := queryTerms("Hu Tao")
	want := map[string]bool{"hu": false, "tao": false, "hutao": false}
	for _, term := range terms {
		if _, ok := want[term]; !ok {
			t.Fatalf("unexpected term %q", term)
		}
		want[term] = true
	}
	for term, seen := range want {
		if !seen {
			t.Fatalf("missing term %q", term)
		}
	}
}

func TestScoreCatalogRanksNameAboveTags(t *testing.T) {
	now := time.Now()
	candidates := []models.ArtToy{
		{Name: "Molly Classic", Tags: pq.StringArray{"labubu"}, CreatedAt: now},
		{Name: "Labubu Forest", Tags: pq.StringArray{"forest"}, CreatedAt: now},
		{Name: "Dimoo Space", Tags: pq.StringArray{"space"}, CreatedAt: now},
	}

	matched := scoreCatalog("labubu", candidates)
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].toy.Name != "Labubu Forest" {
		t.Fatalf("expected name match ranked first, got %q", matched[0].toy.Name)
	}
	if matched[0].score != nameWeight || matched[1].score != tagWeight {
		t.Fatalf("unexpected scores %d / %d", matched[0].score, matched[1].score)
	}
}

func TestScoreCatalogSpacedQueryMatchesJoinedName(t *testing.T) {
	candidates := []models.ArtToy{
		{Name: "HuTao Figure"},
		{Name: "Skull Panda"},
	}

	matched := scoreCatalog("Hu Tao", candidates)
	if len(matched) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matched))
	}
	if matched[0].toy.Name != "HuTao Figure" {
		t.Fatalf("expected HuTao Figure, got %q", matched[0].toy.Name)
	}
}

func TestSortScoredOverridesRelevance(t *testing.T) {
	matched := []scoredToy{
		{toy: models.ArtToy{Name: "A", Price: 30}, score: 3},
		{toy: models.ArtToy{Name: "B", Price: 10}, score: 1},
		{toy: models.ArtToy{Name: "C", Price: 20}, score: 2},
	}

	sortScored(matched, &SortSpec{Field: "price"})
	if matched[0].toy.Price != 30 || matched[2].toy.Price != 10 {
		t.Fatalf("expected descending price order, got %v %v %v",
			matched[0].toy.Price, matched[1].toy.Price, matched[2].toy.Price)
	}
}
