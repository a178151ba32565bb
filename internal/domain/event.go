package domain

import "time"

// Event is a timestamped textual record from any ingestion source:
// a news item, a forum post, a release announcement.
type Event struct {
	ID         int64
	Source     string // source tag (e.g., "openai-blog", "reddit/LocalLLaMA")
	Kind       string // "official", "media" or "community"
	ExternalID string
	Title      string
	Content    string
	URL        string
	CreatedAt  time.Time
}

// SearchQuery is one day's search-console row for a single query string.
type SearchQuery struct {
	Query       string
	Clicks      int
	Impressions int
	Date        time.Time
}

// Window is a contiguous time range over which events are queried.
// Start is inclusive, End exclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Previous returns the adjacent window of equal length ending at w.Start.
func (w Window) Previous() Window {
	return Window{Start: w.Start.Add(-w.End.Sub(w.Start)), End: w.Start}
}
