package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"trend_digest/internal/config"
	"trend_digest/internal/domain"
)

type EventStore interface {
	QueryEvents(ctx context.Context, window domain.Window) ([]domain.Event, error)
	QueryVoices(ctx context.Context, window domain.Window) ([]domain.Event, error)
	Upsert(ctx context.Context, event *domain.Event) (bool, error)
}

type SearchQueryStore interface {
	QuerySince(ctx context.Context, since time.Time) ([]domain.SearchQuery, error)
}

type TrendStore interface {
	InsertBatch(ctx context.Context, trends []domain.Trend) error
}

type IdeaStore interface {
	InsertBatch(ctx context.Context, ideas []domain.BlogIdea) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportPublisher interface {
	PublishReport(ctx context.Context, report *domain.TrendReport) error
	Close() error
}

type IdeaGenerator interface {
	GenerateIdeas(ctx context.Context, report *domain.TrendReport) ([]domain.BlogIdea, error)
}

type FeedSource interface {
	Feeds() []config.FeedConfig
	FetchFeed(ctx context.Context, feed config.FeedConfig) ([]domain.Event, error)
}
