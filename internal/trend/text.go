package trend

import (
	"strings"

	"trend_digest/internal/domain"
)

// eventText returns the lower-cased title+content of an event. Missing
// fields are treated as empty strings, never as an error.
func eventText(ev domain.Event) string {
	if ev.Content == "" {
		return strings.ToLower(ev.Title)
	}
	return strings.ToLower(ev.Title) + " " + strings.ToLower(ev.Content)
}

// CountMentions counts events whose title or content contains keyword,
// case-insensitively.
func CountMentions(events []domain.Event, keyword string) int {
	kw := strings.ToLower(keyword)
	if kw == "" {
		return 0
	}
	count := 0
	for _, ev := range events {
		if strings.Contains(eventText(ev), kw) {
			count++
		}
	}
	return count
}

// normalizeTitle lower-cases a title and strips punctuation, keeping
// letters, digits and the separators that occur inside model names.
func normalizeTitle(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '-' || r == '.' || r == '\'':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// tokenizeTitle splits a normalized title into tokens, dropping stop-words
// and tokens of length <= 2.
func tokenizeTitle(title string, stopwords map[string]struct{}) []string {
	fields := strings.Fields(normalizeTitle(title))
	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "-.'")
		if len(f) <= 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
