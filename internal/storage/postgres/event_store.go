package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"trend_digest/internal/domain"
)

type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

type eventRow struct {
	ID         int64          `db:"id"`
	Source     string         `db:"source"`
	Kind       string         `db:"kind"`
	ExternalID string         `db:"external_id"`
	Title      string         `db:"title"`
	Content    sql.NullString `db:"content"`
	URL        sql.NullString `db:"url"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r eventRow) toDomain() domain.Event {
	return domain.Event{
		ID:         r.ID,
		Source:     r.Source,
		Kind:       r.Kind,
		ExternalID: r.ExternalID,
		Title:      r.Title,
		Content:    r.Content.String,
		URL:        r.URL.String,
		CreatedAt:  r.CreatedAt,
	}
}

// QueryEvents returns raw events (official and media sources) whose
// created_at falls inside the window.
func (s *EventStore) QueryEvents(ctx context.Context, window domain.Window) ([]domain.Event, error) {
	return s.query(ctx, `
		SELECT id, source, kind, external_id, title, content, url, created_at
		FROM raw_events
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`, window)
}

// QueryVoices returns community voice records inside the window. Voices
// share the event shape.
func (s *EventStore) QueryVoices(ctx context.Context, window domain.Window) ([]domain.Event, error) {
	return s.query(ctx, `
		SELECT id, source, kind, external_id, title, content, url, created_at
		FROM user_voices
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`, window)
}

func (s *EventStore) query(ctx context.Context, query string, window domain.Window) ([]domain.Event, error) {
	var rows []eventRow
	if err := s.db.SelectContext(ctx, &rows, query, window.Start, window.End); err != nil {
		return nil, err
	}

	events := make([]domain.Event, len(rows))
	for i, r := range rows {
		events[i] = r.toDomain()
	}
	return events, nil
}

// Upsert inserts an event, ignoring duplicates on (source, external_id).
// Community-kind events land in user_voices, everything else in
// raw_events. It reports whether a new row was written.
func (s *EventStore) Upsert(ctx context.Context, event *domain.Event) (bool, error) {
	table := "raw_events"
	if event.Kind == "community" {
		table = "user_voices"
	}

	query := `
		INSERT INTO ` + table + ` (source, kind, external_id, title, content, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source, external_id) DO NOTHING
		RETURNING id`

	exec := GetExecutor(ctx, s.db)
	var id int64
	err := exec.QueryRowxContext(ctx, query,
		event.Source,
		event.Kind,
		event.ExternalID,
		event.Title,
		event.Content,
		event.URL,
		event.CreatedAt,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil // already present
	}
	if err != nil {
		return false, err
	}

	event.ID = id
	return true, nil
}
