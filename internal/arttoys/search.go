package arttoys

import (
	"sort"
	"strings"

	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
)

// Fuzzy matching parameters: one edit of slack per term, with the first two
// characters required to match exactly. Name hits outweigh tag hits 3:1.
const (
	maxEdits     = 1
	prefixLength = 2

	nameWeight = 3
	tagWeight  = 1
)

type scoredToy struct {
	toy   models.ArtToy
	score int
}

// scoreCatalog runs the free-text query against every candidate and returns
// the matches ordered by relevance (ties broken newest first).
func scoreCatalog(query string, candidates []models.ArtToy) []scoredToy {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	matched := make([]scoredToy, 0, len(candidates))
	for _, toy := range candidates {
		score := scoreToy(terms, toy)
		if score > 0 {
			matched = append(matched, scoredToy{toy: toy, score: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		return matched[i].toy.CreatedAt.After(matched[j].toy.CreatedAt)
	})
	return matched
}

func scoreToy(terms []string, toy models.ArtToy) int {
	score := 0
	nameTokens := tokenize(toy.Name)
	for _, term := range terms {
		if matchesAny(term, nameTokens) {
			score += nameWeight
		}
	}
	for _, term := range terms {
		for _, tag := range toy.Tags {
			if matchesAny(term, tokenize(tag)) {
				score += tagWeight
				break
			}
		}
	}
	return score
}

// queryTerms tokenizes the query; for multi-word queries the concatenated
// form is also tried, so "Hu Tao" still finds a toy named "HuTao".
func queryTerms(query string) []string {
	tokens := tokenize(query)
	if len(tokens) > 1 {
		tokens = append(tokens, strings.Join(tokens, ""))
	}
	return tokens
}

func tokenize(value string) []string {
	fields := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func matchesAny(term string, tokens []string) bool {
	for _, token := range tokens {
		if fuzzyMatch(term, token) {
			return true
		}
	}
	return false
}

// fuzzyMatch reports whether term matches token within maxEdits, requiring an
// exact prefix of prefixLength characters. Terms shorter than the prefix must
// match exactly.
func fuzzyMatch(term, token string) bool {
	if term == token {
		return true
	}
	if len(term) < prefixLength || len(token) < prefixLength {
		return false
	}
	if term[:prefixLength] != token[:prefixLength] {
		return false
	}
	return editDistance(term, token) <= maxEdits
}

// editDistance is the optimal string alignment distance: insert, delete,
// substitute, and transpose adjacent characters each cost one edit.
func editDistance(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b)-len(a) > maxEdits {
		return maxEdits + 1
	}

	prev2 := make([]int, len(a)+1)
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min3(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if prev2[i-2]+1 < curr[i] {
					curr[i] = prev2[i-2] + 1
				}
			}
		}
		prev2, prev, curr = prev, curr, prev2
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// sortScored reorders search results by an explicit sort request instead of
// relevance.
func sortScored(matched []scoredToy, spec *SortSpec) {
	less := lessFunc(spec.Field)
	if less == nil {
		return
	}
	asc := spec.Order.Ascending()
	sort.SliceStable(matched, func(i, j int) bool {
		if asc {
			return less(matched[i].toy, matched[j].toy)
		}
		return less(matched[j].toy, matched[i].toy)
	})
}

func lessFunc(field string) func(a, b models.ArtToy) bool {
	switch field {
	case "price":
		return func(a, b models.ArtToy) bool { return a.Price < b.Price }
	case "rating":
		return func(a, b models.ArtToy) bool { return a.Rating < b.Rating }
	case "name":
		return func(a, b models.ArtToy) bool { return a.Name < b.Name }
	case "sku":
		return func(a, b models.ArtToy) bool { return a.SKU < b.SKU }
	case "discountPercentage":
		return func(a, b models.ArtToy) bool { return a.DiscountPercentage < b.DiscountPercentage }
	case "availableQuota":
		return func(a, b models.ArtToy) bool { return a.AvailableQuota < b.AvailableQuota }
	case "arrivalDate":
		return func(a, b models.ArtToy) bool { return a.ArrivalDate.Before(b.ArrivalDate) }
	case "createdAt":
		return func(a, b models.ArtToy) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return nil
	}
}
