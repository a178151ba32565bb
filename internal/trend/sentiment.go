package trend

import (
	"math"
	"strings"

	"trend_digest/internal/domain"
)

// sentimentThreshold is the absolute growth a sentiment tally must show
// before a directional signal is worth reporting.
const sentimentThreshold = 20

// SentimentAnalyzer classifies community voices with keyword-bag
// membership tests and reports the dominant week-over-week swing.
type SentimentAnalyzer struct {
	positive []string
	negative []string
}

// SentimentConfig carries the marker lexicons. Nil slices fall back to
// the defaults, so tests can substitute minimal fixtures.
type SentimentConfig struct {
	PositiveMarkers []string
	NegativeMarkers []string
}

func NewSentimentAnalyzer(cfg SentimentConfig) *SentimentAnalyzer {
	positive := cfg.PositiveMarkers
	if positive == nil {
		positive = DefaultPositiveMarkers
	}
	negative := cfg.NegativeMarkers
	if negative == nil {
		negative = DefaultNegativeMarkers
	}

	// Markers are matched against lower-cased voice text.
	return &SentimentAnalyzer{
		positive: loweredMarkers(positive),
		negative: loweredMarkers(negative),
	}
}

func loweredMarkers(markers []string) []string {
	out := make([]string, len(markers))
	for i, m := range markers {
		out[i] = strings.ToLower(m)
	}
	return out
}

// AnalyzeTrend tallies positive and negative marker hits in each window
// and returns the dominant swing, or nil when neither direction clears
// the significance threshold. The two tallies are independent: a voice
// containing both kinds of markers counts toward both.
//
// The positive branch must win the magnitude comparison and clear the
// threshold; the negative branch is reached whenever it clears the
// threshold and the positive branch did not already win. A large
// negative swing therefore beats a smaller positive one even when both
// clear 20%.
func (a *SentimentAnalyzer) AnalyzeTrend(currentVoices, previousVoices []domain.Event) *domain.SentimentTrend {
	curPos, curNeg := a.tally(currentVoices)
	prevPos, prevNeg := a.tally(previousVoices)

	posGrowth := CalculateTrend(curPos, prevPos)
	negGrowth := CalculateTrend(curNeg, prevNeg)

	if math.Abs(posGrowth) > math.Abs(negGrowth) && math.Abs(posGrowth) > sentimentThreshold {
		return &domain.SentimentTrend{
			Sentiment:     domain.SentimentPositive,
			GrowthRate:    posGrowth,
			CurrentCount:  curPos,
			PreviousCount: prevPos,
		}
	}
	if math.Abs(negGrowth) > sentimentThreshold {
		return &domain.SentimentTrend{
			Sentiment:     domain.SentimentNegative,
			GrowthRate:    negGrowth,
			CurrentCount:  curNeg,
			PreviousCount: prevNeg,
		}
	}
	return nil
}

func (a *SentimentAnalyzer) tally(voices []domain.Event) (positive, negative int) {
	for _, v := range voices {
		text := eventText(v)
		if containsAny(text, a.positive) {
			positive++
		}
		if containsAny(text, a.negative) {
			negative++
		}
	}
	return positive, negative
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
