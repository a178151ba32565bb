package trend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trend_digest/internal/domain"
)

func eventFixture(title, content, source string) domain.Event {
	return domain.Event{Title: title, Content: content, Source: source}
}

func TestDetectRisingKeywords_NewModelRises(t *testing.T) {
	words := []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta",
		"eta", "theta", "iota", "kappa", "lambda", "sigma",
	}
	var current []domain.Event
	for _, w := range words {
		current = append(current, eventFixture(fmt.Sprintf("GPT-9 %s coverage", w), "", "media"))
	}

	d := NewDetector(DetectorConfig{})
	results := d.DetectRisingKeywords(current, nil, nil)

	require.Len(t, results, 1)
	assert.Equal(t, "Gpt-9", results[0].Keyword)
	assert.Equal(t, 12, results[0].CurrentCount)
	assert.Equal(t, float64(100), results[0].GrowthRate)

	for _, r := range results {
		assert.NotEqual(t, "Gpt-7", r.Keyword)
	}
}

func TestDetectRisingKeywords_EmptyWindows(t *testing.T) {
	d := NewDetector(DetectorConfig{})
	assert.Empty(t, d.DetectRisingKeywords(nil, nil, nil))
}

func TestDetectRisingKeywords_Idempotent(t *testing.T) {
	current := []domain.Event{
		eventFixture("Claude 4 opus ships", "claude 4 opus everywhere", "media"),
		eventFixture("Claude 4 opus pricing", "", "reddit"),
		eventFixture("Claude 4 opus in practice", "", "hn"),
		eventFixture("Gemini 3 pro launch", "gemini 3 pro gemini 3 pro", "media"),
	}
	previous := []domain.Event{
		eventFixture("Claude 4 opus rumor", "", "media"),
	}
	queries := []domain.SearchQuery{
		{Query: "claude pricing", Clicks: 4},
	}

	d := NewDetector(DetectorConfig{})
	first := d.DetectRisingKeywords(current, previous, queries)
	second := d.DetectRisingKeywords(current, previous, queries)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestDetectRisingKeywords_ThresholdAndOrderingInvariants(t *testing.T) {
	var current, previous []domain.Event
	// Three model names with different growth profiles plus ambient noise.
	for i := 0; i < 9; i++ {
		current = append(current, eventFixture(fmt.Sprintf("Qwen 4 note %d", i), "", "media"))
	}
	for i := 0; i < 6; i++ {
		current = append(current, eventFixture(fmt.Sprintf("Grok 5 note %d", i), "", "media"))
		previous = append(previous, eventFixture(fmt.Sprintf("Qwen 4 old %d", i), "", "media"))
	}
	for i := 0; i < 4; i++ {
		current = append(current, eventFixture(fmt.Sprintf("Llama 6 note %d", i), "", "media"))
		previous = append(previous, eventFixture(fmt.Sprintf("Llama 6 old %d", i), "", "media"))
	}

	d := NewDetector(DetectorConfig{MinGrowthRate: 50})
	results := d.DetectRisingKeywords(current, previous, nil)

	require.NotEmpty(t, results)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.GrowthRate, float64(50))
		assert.Greater(t, r.CurrentCount, 0)
	}
	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1], results[i]
		assert.GreaterOrEqual(t, prev.GrowthRate, cur.GrowthRate)
		if prev.GrowthRate == cur.GrowthRate {
			assert.GreaterOrEqual(t, prev.CurrentCount, cur.CurrentCount)
		}
	}
	// Llama-6 is flat week over week and must not appear.
	for _, r := range results {
		assert.NotEqual(t, "Llama-6", r.Keyword)
	}
}

func TestDetectRisingKeywords_DeduplicatesAcrossStrategies(t *testing.T) {
	current := []domain.Event{
		eventFixture("GPT-5 alpha", "", "media"),
		eventFixture("GPT-5 beta", "", "reddit"),
		eventFixture("GPT-5 gamma", "", "hn"),
	}
	queries := []domain.SearchQuery{
		{Query: "gpt-5 review", Clicks: 5},
	}

	d := NewDetector(DetectorConfig{})
	results := d.DetectRisingKeywords(current, nil, queries)

	require.Len(t, results, 1)
	// The search-seeded instance is found first and its display form wins.
	assert.Equal(t, "gpt-5", results[0].Keyword)
	assert.Equal(t, 3, results[0].CurrentCount)
}

func TestDetectRisingKeywords_FilteredCandidateDoesNotShadow(t *testing.T) {
	// "GPT 5" in space form: the search token "gpt-5" finds no substring
	// matches and fails the growth floor, while model-name extraction
	// still recognizes the release. The failed candidate must not
	// suppress it.
	current := []domain.Event{
		eventFixture("GPT 5 alpha coverage", "", "media"),
		eventFixture("GPT 5 beta coverage", "", "reddit"),
		eventFixture("GPT 5 gamma coverage", "", "hn"),
	}
	queries := []domain.SearchQuery{
		{Query: "gpt-5 review", Clicks: 5},
	}

	d := NewDetector(DetectorConfig{})
	results := d.DetectRisingKeywords(current, nil, queries)

	require.Len(t, results, 1)
	assert.Equal(t, "Gpt-5", results[0].Keyword)
	assert.Equal(t, 3, results[0].CurrentCount)
}

func TestDetectRisingKeywords_StrategyFloors(t *testing.T) {
	// Two mentions of a model name: enough growth, below the
	// model-strategy floor of 3.
	current := []domain.Event{
		eventFixture("Deepseek 4 released", "", "media"),
		eventFixture("Deepseek 4 thoughts", "", "reddit"),
	}

	d := NewDetector(DetectorConfig{})
	assert.Empty(t, d.DetectRisingKeywords(current, nil, nil))

	// A single mention suffices for a search-seeded keyword.
	queries := []domain.SearchQuery{{Query: "deepseek benchmarks", Clicks: 3}}
	results := d.DetectRisingKeywords(current, nil, queries)
	require.Len(t, results, 1)
	assert.Equal(t, "deepseek", results[0].Keyword)
	assert.Equal(t, 2, results[0].CurrentCount)
}

func TestDetectRisingKeywords_ResultCap(t *testing.T) {
	var queries []domain.SearchQuery
	var current []domain.Event
	for i := 0; i < 40; i++ {
		kw := fmt.Sprintf("keyword%02d", i)
		queries = append(queries, domain.SearchQuery{Query: kw, Clicks: 5})
		current = append(current, eventFixture("about "+kw, "", "media"))
	}

	d := NewDetector(DetectorConfig{MaxResults: 30})
	results := d.DetectRisingKeywords(current, nil, queries)

	assert.Len(t, results, 30)
}

func TestMentionGrowth(t *testing.T) {
	d := NewDetector(DetectorConfig{})

	growth, ok := d.MentionGrowth(make([]domain.Event, 12), nil)
	assert.True(t, ok)
	assert.Equal(t, float64(100), growth)

	_, ok = d.MentionGrowth(make([]domain.Event, 11), make([]domain.Event, 10))
	assert.False(t, ok, "a 10%% shift does not exceed the reporting threshold")

	growth, ok = d.MentionGrowth(make([]domain.Event, 5), make([]domain.Event, 10))
	assert.True(t, ok)
	assert.Equal(t, float64(-50), growth)

	_, ok = d.MentionGrowth(nil, nil)
	assert.False(t, ok)
}
