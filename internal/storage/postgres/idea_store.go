package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"trend_digest/internal/domain"
)

type IdeaStore struct {
	db *sqlx.DB
}

func NewIdeaStore(db *sqlx.DB) *IdeaStore {
	return &IdeaStore{db: db}
}

func (s *IdeaStore) InsertBatch(ctx context.Context, ideas []domain.BlogIdea) error {
	if len(ideas) == 0 {
		return nil
	}

	query := `
		INSERT INTO blog_ideas (title, angle, keywords, priority)
		VALUES ($1, $2, $3, $4)`

	exec := GetExecutor(ctx, s.db)
	for _, idea := range ideas {
		_, err := exec.ExecContext(ctx, query,
			idea.Title,
			idea.Angle,
			pq.Array(idea.Keywords),
			idea.Priority,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *IdeaStore) Latest(ctx context.Context, limit int) ([]domain.BlogIdea, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, title, angle, keywords, priority, created_at
		FROM blog_ideas
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []domain.BlogIdea
	for rows.Next() {
		var idea domain.BlogIdea
		var keywords pq.StringArray
		err := rows.Scan(&idea.ID, &idea.Title, &idea.Angle, &keywords, &idea.Priority, &idea.CreatedAt)
		if err != nil {
			return nil, err
		}
		idea.Keywords = keywords
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}
