package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"trend_digest/internal/config"
	"trend_digest/internal/domain"
)

// Config holds RSS source configuration.
type Config struct {
	Feeds          []config.FeedConfig
	Timeout        time.Duration
	MaxItemsPer    int
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source polls a set of RSS/Atom feeds and normalizes their items to
// domain events.
type Source struct {
	parser         *gofeed.Parser
	feeds          []config.FeedConfig
	maxItemsPer    int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: cfg.Timeout}
	parser.UserAgent = "TrendDigest/1.0"

	return &Source{
		parser:         parser,
		feeds:          cfg.Feeds,
		maxItemsPer:    cfg.MaxItemsPer,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "rss"),
	}
}

// Feeds returns the configured feed list.
func (s *Source) Feeds() []config.FeedConfig {
	return s.feeds
}

// FetchFeed fetches one feed and returns its items as events, newest
// items first as served by the feed.
func (s *Source) FetchFeed(ctx context.Context, feed config.FeedConfig) ([]domain.Event, error) {
	parsed, err := s.fetchWithRetry(ctx, feed.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feed.Name, err)
	}

	items := parsed.Items
	if s.maxItemsPer > 0 && len(items) > s.maxItemsPer {
		items = items[:s.maxItemsPer]
	}

	events := make([]domain.Event, 0, len(items))
	for _, item := range items {
		if item.Title == "" {
			continue
		}

		createdAt := time.Now()
		if item.PublishedParsed != nil {
			createdAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			createdAt = *item.UpdatedParsed
		}

		externalID := item.GUID
		if externalID == "" {
			externalID = item.Link
		}

		content := item.Description
		if content == "" {
			content = item.Content
		}

		events = append(events, domain.Event{
			Source:     feed.Source,
			Kind:       feed.Kind,
			ExternalID: externalID,
			Title:      item.Title,
			Content:    content,
			URL:        item.Link,
			CreatedAt:  createdAt,
		})
	}

	s.logger.Debug("fetched feed",
		"feed", feed.Name,
		"items", len(events),
	)

	return events, nil
}

func (s *Source) fetchWithRetry(ctx context.Context, url string) (*gofeed.Feed, error) {
	var feed *gofeed.Feed
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		feed, err = s.parser.ParseURLWithContext(url, ctx)
		if err == nil {
			return feed, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("feed request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
