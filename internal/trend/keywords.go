package trend

import (
	"strings"

	"trend_digest/internal/domain"
)

// Per-strategy floors on the current-window count. Noisier extraction
// strategies need a higher confidence bar than targeted ones: an explicit
// search query is already evidence of demand, while a generic title
// bigram is not.
const (
	minSearchSeededCount = 1
	minModelNameCount    = 3
	minBigramCount       = 5
)

// minQueryClicks is the aggregate-click floor below which a search query
// is too marginal to seed keyword candidates.
const minQueryClicks = 3

// minBigramFrequency is the current-window occurrence floor for a title
// bigram to become a candidate at all.
const minBigramFrequency = 3

// Candidate is a keyword with its counts in the two windows, produced
// fresh on every detector invocation and never persisted.
type Candidate struct {
	Keyword  string
	Current  int
	Previous int

	// MinCurrent is the current-count floor the producing strategy
	// requires before the candidate may enter the final list.
	MinCurrent int
}

// searchSeededCandidates derives candidates from an externally supplied
// search-query log. Clicks are aggregated per lower-cased query string;
// queries with enough aggregate clicks are split into tokens, and each
// token is counted by substring search over the two event windows.
func searchSeededCandidates(current, previous []domain.Event, queries []domain.SearchQuery) []Candidate {
	if len(queries) == 0 {
		return nil
	}

	clicks := make(map[string]int)
	var order []string
	for _, q := range queries {
		key := strings.ToLower(strings.TrimSpace(q.Query))
		if key == "" {
			continue
		}
		if _, seen := clicks[key]; !seen {
			order = append(order, key)
		}
		clicks[key] += q.Clicks
	}

	var candidates []Candidate
	seen := make(map[string]struct{})
	for _, query := range order {
		if clicks[query] < minQueryClicks {
			continue
		}
		for _, token := range strings.Fields(query) {
			if len(token) <= 2 {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			candidates = append(candidates, Candidate{
				Keyword:    token,
				Current:    CountMentions(current, token),
				Previous:   CountMentions(previous, token),
				MinCurrent: minSearchSeededCount,
			})
		}
	}
	return candidates
}

// modelNameCandidates derives candidates from dynamic model-name pattern
// extraction over both windows. Superseded generations are filtered from
// the current window's set before candidates are built, so a stale
// fallback model mentioned in old content does not keep trending.
func modelNameCandidates(current, previous []domain.Event) []Candidate {
	currentCounts, families := extractModelCounts(current)
	previousCounts, _ := extractModelCounts(previous)

	currentCounts = filterSupersededModels(currentCounts, families)

	var candidates []Candidate
	for name, count := range currentCounts {
		candidates = append(candidates, Candidate{
			Keyword:    name,
			Current:    count,
			Previous:   previousCounts[name],
			MinCurrent: minModelNameCount,
		})
	}
	return candidates
}

// bigramCandidates derives candidates from adjacent-word pairs in event
// titles. Only bigrams frequent enough in the current window survive.
func bigramCandidates(current, previous []domain.Event, stopwords map[string]struct{}) []Candidate {
	currentCounts := countTitleBigrams(current, stopwords)
	previousCounts := countTitleBigrams(previous, stopwords)

	var candidates []Candidate
	for bigram, count := range currentCounts {
		if count < minBigramFrequency {
			continue
		}
		candidates = append(candidates, Candidate{
			Keyword:    bigram,
			Current:    count,
			Previous:   previousCounts[bigram],
			MinCurrent: minBigramCount,
		})
	}
	return candidates
}

func countTitleBigrams(events []domain.Event, stopwords map[string]struct{}) map[string]int {
	counts := make(map[string]int)
	for _, ev := range events {
		tokens := tokenizeTitle(ev.Title, stopwords)
		for i := 0; i+1 < len(tokens); i++ {
			counts[tokens[i]+" "+tokens[i+1]]++
		}
	}
	return counts
}
