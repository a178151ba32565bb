package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"trend_digest/internal/domain"
)

type SearchQueryStore struct {
	db *sqlx.DB
}

func NewSearchQueryStore(db *sqlx.DB) *SearchQueryStore {
	return &SearchQueryStore{db: db}
}

type searchQueryRow struct {
	Query       string    `db:"query"`
	Clicks      int       `db:"clicks"`
	Impressions int       `db:"impressions"`
	Date        time.Time `db:"date"`
}

// QuerySince returns per-day search-console rows recorded on or after
// the cutoff date. Aggregation across days is the analyzer's concern.
func (s *SearchQueryStore) QuerySince(ctx context.Context, since time.Time) ([]domain.SearchQuery, error) {
	var rows []searchQueryRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT query, clicks, impressions, date
		FROM search_queries
		WHERE date >= $1
		ORDER BY date DESC, clicks DESC`, since)
	if err != nil {
		return nil, err
	}

	queries := make([]domain.SearchQuery, len(rows))
	for i, r := range rows {
		queries[i] = domain.SearchQuery{
			Query:       r.Query,
			Clicks:      r.Clicks,
			Impressions: r.Impressions,
			Date:        r.Date,
		}
	}
	return queries, nil
}
