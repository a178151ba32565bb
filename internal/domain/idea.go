package domain

import "time"

// BlogIdea is an article proposal produced by the LLM summarizer from a
// trend report.
type BlogIdea struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Angle     string    `db:"angle"`
	Keywords  []string  `db:"-"`
	Priority  string    `db:"priority"` // "high", "medium" or "low"
	CreatedAt time.Time `db:"created_at"`
}
