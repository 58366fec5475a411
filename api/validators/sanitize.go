package validators

import "strings"

// SanitizeString trims surrounding whitespace and, when maxLen is positive,
// truncates the result to that many bytes.
func SanitizeString(input string, maxLen int) string {
	clean := strings.TrimSpace(input)
	if maxLen <= 0 || len(clean) <= maxLen {
		return clean
	}
	return clean[:maxLen]
}
