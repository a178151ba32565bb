package trend

import (
	"sort"
	"strings"

	"trend_digest/internal/domain"
)

const (
	// DefaultMinGrowthRate is the percentage growth a keyword must show
	// to be reported as rising.
	DefaultMinGrowthRate = 50

	// DefaultMaxResults bounds the trend list to cap downstream
	// persistence volume.
	DefaultMaxResults = 30

	// mentionGrowthThreshold is the absolute percentage change in total
	// event volume below which the whole-corpus signal is suppressed.
	mentionGrowthThreshold = 10
)

// Detector derives rising keywords from two adjacent event windows. The
// zero value is not usable; construct with NewDetector.
type Detector struct {
	minGrowthRate float64
	maxResults    int
	stopwords     map[string]struct{}
}

// DetectorConfig carries the tunables for a Detector. Zero fields fall
// back to defaults, so tests can substitute minimal fixtures.
type DetectorConfig struct {
	MinGrowthRate float64
	MaxResults    int
	Stopwords     []string
}

func NewDetector(cfg DetectorConfig) *Detector {
	d := &Detector{
		minGrowthRate: cfg.MinGrowthRate,
		maxResults:    cfg.MaxResults,
		stopwords:     make(map[string]struct{}),
	}
	if d.minGrowthRate == 0 {
		d.minGrowthRate = DefaultMinGrowthRate
	}
	if d.maxResults == 0 {
		d.maxResults = DefaultMaxResults
	}
	words := cfg.Stopwords
	if words == nil {
		words = DefaultStopwords
	}
	for _, w := range words {
		d.stopwords[strings.ToLower(w)] = struct{}{}
	}
	return d
}

// DetectRisingKeywords merges the three extraction strategies, scores
// every candidate against the previous window, filters by the growth
// floor and each strategy's count floor, deduplicates across strategies
// and returns the ranked trend list. A nil or empty query log simply
// disables the search-seeded strategy.
func (d *Detector) DetectRisingKeywords(current, previous []domain.Event, queries []domain.SearchQuery) []domain.TrendResult {
	var candidates []Candidate
	candidates = append(candidates, searchSeededCandidates(current, previous, queries)...)
	candidates = append(candidates, modelNameCandidates(current, previous)...)
	candidates = append(candidates, bigramCandidates(current, previous, d.stopwords)...)

	// Filter first, then deduplicate: a candidate that fails its own
	// floors must not shadow the same keyword surfaced by a later
	// strategy. Among surviving duplicates the first strategy's display
	// form and counts win.
	seen := make(map[string]struct{}, len(candidates))
	var results []domain.TrendResult
	for _, c := range candidates {
		growth := CalculateTrend(c.Current, c.Previous)
		if growth < d.minGrowthRate || c.Current < c.MinCurrent {
			continue
		}

		key := strings.ToLower(c.Keyword)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		results = append(results, domain.TrendResult{
			Keyword:      c.Keyword,
			GrowthRate:   growth,
			CurrentCount: c.Current,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].GrowthRate != results[j].GrowthRate {
			return results[i].GrowthRate > results[j].GrowthRate
		}
		if results[i].CurrentCount != results[j].CurrentCount {
			return results[i].CurrentCount > results[j].CurrentCount
		}
		return results[i].Keyword < results[j].Keyword
	})

	if len(results) > d.maxResults {
		results = results[:d.maxResults]
	}
	return results
}

// MentionGrowth reports the whole-corpus volume shift between the two
// windows. It is exempt from per-keyword floors; the signal is only
// suppressed when the absolute change is small.
func (d *Detector) MentionGrowth(current, previous []domain.Event) (float64, bool) {
	growth := CalculateTrend(len(current), len(previous))
	if growth >= -mentionGrowthThreshold && growth <= mentionGrowthThreshold {
		return 0, false
	}
	return growth, true
}
