package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"trend_digest/internal/config"
	"trend_digest/internal/domain"
)

// IngestService polls the configured feeds and writes their items into
// the event store. Failures on individual feeds are counted, not fatal:
// one dead feed must not starve the rest of the pipeline.
type IngestService struct {
	source FeedSource
	events EventStore
	logger *slog.Logger
	config config.IngestConfig
}

func NewIngestService(
	source FeedSource,
	events EventStore,
	logger *slog.Logger,
	cfg config.IngestConfig,
) *IngestService {
	return &IngestService{
		source: source,
		events: events,
		logger: logger.With("job", "ingest"),
		config: cfg,
	}
}

func (s *IngestService) Run(ctx context.Context) error {
	_, err := s.Ingest(ctx)
	return err
}

// Ingest fetches all feeds concurrently and upserts their events.
func (s *IngestService) Ingest(ctx context.Context) (*domain.IngestStats, error) {
	startTime := time.Now()

	feeds := s.source.Feeds()
	stats := &domain.IngestStats{Feeds: len(feeds)}

	s.logger.Info("starting ingest", "feeds", len(feeds))

	var mu sync.Mutex
	var fetched []domain.Event

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, feed := range feeds {
		g.Go(func() error {
			events, err := s.source.FetchFeed(gctx, feed)
			if err != nil {
				s.logger.Warn("feed fetch failed", "feed", feed.Name, "error", err)
				mu.Lock()
				stats.Errors++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			fetched = append(fetched, events...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	stats.Fetched = len(fetched)

	cutoff := time.Now().AddDate(0, 0, -s.config.MaxHistorical)
	for i := range fetched {
		event := &fetched[i]
		if event.CreatedAt.Before(cutoff) {
			stats.Skipped++
			continue
		}

		isNew, err := s.events.Upsert(ctx, event)
		if err != nil {
			s.logger.Warn("upsert failed",
				"source", event.Source,
				"external_id", event.ExternalID,
				"error", err,
			)
			stats.Errors++
			continue
		}

		if isNew {
			stats.New++
		} else {
			stats.Skipped++
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("ingest completed",
		"fetched", stats.Fetched,
		"new", stats.New,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}
