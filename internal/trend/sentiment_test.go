package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_digest/internal/domain"
)

func voicesWith(marker string, n int) []domain.Event {
	voices := make([]domain.Event, n)
	for i := range voices {
		voices[i] = domain.Event{Title: "post", Content: "this is " + marker, Source: "reddit"}
	}
	return voices
}

func fixtureAnalyzer() *SentimentAnalyzer {
	return NewSentimentAnalyzer(SentimentConfig{
		PositiveMarkers: []string{"good"},
		NegativeMarkers: []string{"bad"},
	})
}

func TestAnalyzeTrend_PositiveSwing(t *testing.T) {
	a := fixtureAnalyzer()

	current := append(voicesWith("good", 8), voicesWith("bad", 2)...)
	previous := append(voicesWith("good", 5), voicesWith("bad", 2)...)

	got := a.AnalyzeTrend(current, previous)

	require.NotNil(t, got)
	assert.Equal(t, domain.SentimentPositive, got.Sentiment)
	assert.InDelta(t, 60, got.GrowthRate, 1e-9)
	assert.Equal(t, 8, got.CurrentCount)
	assert.Equal(t, 5, got.PreviousCount)
}

func TestAnalyzeTrend_BelowThreshold(t *testing.T) {
	a := fixtureAnalyzer()

	// Positive up 15%, negative down 10%: neither clears 20%.
	current := append(voicesWith("good", 23), voicesWith("bad", 9)...)
	previous := append(voicesWith("good", 20), voicesWith("bad", 10)...)

	assert.Nil(t, a.AnalyzeTrend(current, previous))
}

func TestAnalyzeTrend_LargerNegativeSwingWins(t *testing.T) {
	a := fixtureAnalyzer()

	// Positive up 30% and negative up 100%: both clear the threshold,
	// the larger magnitude is reported.
	current := append(voicesWith("good", 13), voicesWith("bad", 10)...)
	previous := append(voicesWith("good", 10), voicesWith("bad", 5)...)

	got := a.AnalyzeTrend(current, previous)

	require.NotNil(t, got)
	assert.Equal(t, domain.SentimentNegative, got.Sentiment)
	assert.InDelta(t, 100, got.GrowthRate, 1e-9)
	assert.Equal(t, 10, got.CurrentCount)
	assert.Equal(t, 5, got.PreviousCount)
}

func TestAnalyzeTrend_MixedVoiceCountsBothWays(t *testing.T) {
	a := fixtureAnalyzer()

	mixed := []domain.Event{{Title: "good parts and bad parts", Source: "hn"}}
	curPos, curNeg := a.tally(mixed)

	assert.Equal(t, 1, curPos)
	assert.Equal(t, 1, curNeg)
}

func TestAnalyzeTrend_EmptyWindows(t *testing.T) {
	a := fixtureAnalyzer()
	assert.Nil(t, a.AnalyzeTrend(nil, nil))
}

func TestAnalyzeTrend_MixedCaseMarkers(t *testing.T) {
	a := NewSentimentAnalyzer(SentimentConfig{
		PositiveMarkers: []string{"Impressive"},
		NegativeMarkers: []string{"Broken"},
	})

	current := voicesWith("impressive work", 5)
	got := a.AnalyzeTrend(current, nil)

	require.NotNil(t, got)
	assert.Equal(t, domain.SentimentPositive, got.Sentiment)
	assert.Equal(t, 5, got.CurrentCount)
}

func TestAnalyzeTrend_DefaultLexicons(t *testing.T) {
	a := NewSentimentAnalyzer(SentimentConfig{})

	current := voicesWith("absolutely amazing release", 5)
	got := a.AnalyzeTrend(current, nil)

	require.NotNil(t, got)
	assert.Equal(t, domain.SentimentPositive, got.Sentiment)
	assert.Equal(t, float64(100), got.GrowthRate)
}
