package domain

import (
	"slices"
	"strings"
)

// NormalizeText prepares free text for storage:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeExpertise normalizes every tag, drops empty ones and removes
// duplicates. Result is sorted so that equal sets compare equal.
func NormalizeExpertise(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if n := NormalizeText(tag); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
