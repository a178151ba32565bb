package domain

import "time"

// TrendType distinguishes the rows written to the trends table.
type TrendType string

const (
	TrendTypeKeyword      TrendType = "keyword"
	TrendTypeSentiment    TrendType = "sentiment"
	TrendTypeMentionCount TrendType = "mention_count"
	TrendTypeCorroborated TrendType = "corroborated"
)

// TrendResult is a single rising keyword with its week-over-week growth.
type TrendResult struct {
	Keyword      string  `json:"keyword"`
	GrowthRate   float64 `json:"growth_rate"` // percentage, may be negative
	CurrentCount int     `json:"current_count"`
}

// Sentiment is the direction of a sentiment swing.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// SentimentTrend is the dominant sentiment swing across community voices.
// At most one is produced per run.
type SentimentTrend struct {
	Sentiment     Sentiment `json:"sentiment"`
	GrowthRate    float64   `json:"growth_rate"`
	CurrentCount  int       `json:"current_count"`
	PreviousCount int       `json:"previous_count"`
}

// CorroborationResult reports that a keyword is mentioned across several
// independent sources, a confidence signal distinct from growth rate.
type CorroborationResult struct {
	Keyword string   `json:"keyword"`
	Sources []string `json:"sources"`
	Count   int      `json:"count"`
}

// TrendReport is the full output of one analysis run, handed to the
// persistence layer and the downstream summarizer.
type TrendReport struct {
	Trends            []TrendResult         `json:"trends"`
	MentionGrowthRate float64               `json:"mention_growth_rate"`
	MentionGrowthSet  bool                  `json:"mention_growth_set"`
	SentimentTrend    *SentimentTrend       `json:"sentiment_trend,omitempty"`
	Corroborated      []CorroborationResult `json:"corroborated"`
	PeriodStart       time.Time             `json:"period_start"`
	PeriodEnd         time.Time             `json:"period_end"`
}

// Trend is a persisted trend row.
type Trend struct {
	ID            int64     `db:"id"`
	Keyword       string    `db:"keyword"`
	Type          TrendType `db:"trend_type"`
	Value         float64   `db:"value"`
	PreviousValue float64   `db:"previous_value"`
	GrowthRate    float64   `db:"growth_rate"`
	Sources       []string  `db:"-"`
	PeriodStart   time.Time `db:"period_start"`
	PeriodEnd     time.Time `db:"period_end"`
	CreatedAt     time.Time `db:"created_at"`
}
