package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trend_digest/internal/domain"
)

type TrendStore struct {
	db *sqlx.DB
}

func NewTrendStore(db *sqlx.DB) *TrendStore {
	return &TrendStore{db: db}
}

// InsertBatch writes trend rows. It participates in an ambient
// transaction when one is carried by the context.
func (s *TrendStore) InsertBatch(ctx context.Context, trends []domain.Trend) error {
	if len(trends) == 0 {
		return nil
	}

	query := `
		INSERT INTO trends (
			keyword, trend_type, value, previous_value, growth_rate,
			sources, period_start, period_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	exec := GetExecutor(ctx, s.db)
	for _, t := range trends {
		_, err := exec.ExecContext(ctx, query,
			t.Keyword,
			t.Type,
			t.Value,
			t.PreviousValue,
			t.GrowthRate,
			pq.Array(t.Sources),
			t.PeriodStart,
			t.PeriodEnd,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// LatestByType returns the most recent trend rows of one type, newest
// first.
func (s *TrendStore) LatestByType(ctx context.Context, trendType domain.TrendType, limit int) ([]domain.Trend, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, keyword, trend_type, value, previous_value, growth_rate,
		       sources, period_start, period_end, created_at
		FROM trends
		WHERE trend_type = $1
		ORDER BY created_at DESC, growth_rate DESC
		LIMIT $2`, trendType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trends []domain.Trend
	for rows.Next() {
		var t domain.Trend
		var sources pq.StringArray
		err := rows.Scan(
			&t.ID, &t.Keyword, &t.Type, &t.Value, &t.PreviousValue,
			&t.GrowthRate, &sources, &t.PeriodStart, &t.PeriodEnd, &t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		t.Sources = sources
		trends = append(trends, t)
	}
	return trends, rows.Err()
}
