package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"trend_digest/internal/config"
	"trend_digest/internal/domain"
	"trend_digest/internal/trend"
)

// AnalysisService runs one trend-detection pass: it pulls two adjacent
// event windows from the store, hands them to the pure core, persists
// the resulting trend rows in a single transaction and publishes the
// report downstream.
type AnalysisService struct {
	events    EventStore
	queries   SearchQueryStore
	trends    TrendStore
	ideas     IdeaStore
	txManager TransactionManager
	publisher ReportPublisher
	generator IdeaGenerator
	detector  *trend.Detector
	sentiment *trend.SentimentAnalyzer
	logger    *slog.Logger
	config    config.AnalysisConfig
}

func NewAnalysisService(
	events EventStore,
	queries SearchQueryStore,
	trends TrendStore,
	ideas IdeaStore,
	txManager TransactionManager,
	publisher ReportPublisher,
	generator IdeaGenerator,
	detector *trend.Detector,
	sentiment *trend.SentimentAnalyzer,
	logger *slog.Logger,
	cfg config.AnalysisConfig,
) *AnalysisService {
	return &AnalysisService{
		events:    events,
		queries:   queries,
		trends:    trends,
		ideas:     ideas,
		txManager: txManager,
		publisher: publisher,
		generator: generator,
		detector:  detector,
		sentiment: sentiment,
		logger:    logger.With("job", "analysis"),
		config:    cfg,
	}
}

func (s *AnalysisService) Run(ctx context.Context) error {
	_, err := s.Analyze(ctx)
	return err
}

// Analyze performs one full analysis run over the configured window.
func (s *AnalysisService) Analyze(ctx context.Context) (*domain.AnalysisStats, error) {
	startTime := time.Now()

	now := time.Now().UTC()
	currentWindow := domain.Window{Start: now.AddDate(0, 0, -s.config.WindowDays), End: now}
	previousWindow := currentWindow.Previous()

	s.logger.Info("starting analysis",
		"window_days", s.config.WindowDays,
		"min_growth_rate", s.config.MinGrowthRate,
	)

	var currentEvents, previousEvents, currentVoices, previousVoices []domain.Event

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		currentEvents, err = s.events.QueryEvents(gctx, currentWindow)
		return err
	})
	g.Go(func() (err error) {
		previousEvents, err = s.events.QueryEvents(gctx, previousWindow)
		return err
	})
	g.Go(func() (err error) {
		currentVoices, err = s.events.QueryVoices(gctx, currentWindow)
		return err
	})
	g.Go(func() (err error) {
		previousVoices, err = s.events.QueryVoices(gctx, previousWindow)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("query windows: %w", err)
	}

	searchQueries := s.loadSearchQueries(ctx, now)

	report := s.buildReport(
		currentWindow,
		currentEvents, previousEvents,
		currentVoices, previousVoices,
		searchQueries,
	)

	stats := &domain.AnalysisStats{
		CurrentEvents:  len(currentEvents),
		PreviousEvents: len(previousEvents),
		CurrentVoices:  len(currentVoices),
		PreviousVoices: len(previousVoices),
		Trends:         len(report.Trends),
		Corroborated:   len(report.Corroborated),
		SentimentFound: report.SentimentTrend != nil,
	}

	if err := s.persistReport(ctx, report); err != nil {
		return stats, fmt.Errorf("persist report: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReport(ctx, report); err != nil {
			return stats, fmt.Errorf("publish report: %w", err)
		}
	}

	stats.Ideas = s.generateIdeas(ctx, report)
	stats.Duration = time.Since(startTime)

	s.logger.Info("analysis completed",
		"trends", stats.Trends,
		"corroborated", stats.Corroborated,
		"sentiment_found", stats.SentimentFound,
		"ideas", stats.Ideas,
		"duration", stats.Duration,
	)

	return stats, nil
}

// loadSearchQueries fetches the optional search-console log. A missing
// store or a failed read just disables the search-seeded strategy; the
// run proceeds on the other two.
func (s *AnalysisService) loadSearchQueries(ctx context.Context, now time.Time) []domain.SearchQuery {
	if s.queries == nil {
		return nil
	}

	since := now.AddDate(0, 0, -s.config.SearchQueryDays)
	queries, err := s.queries.QuerySince(ctx, since)
	if err != nil {
		s.logger.Warn("search query log unavailable", "error", err)
		return nil
	}
	return queries
}

func (s *AnalysisService) buildReport(
	window domain.Window,
	currentEvents, previousEvents []domain.Event,
	currentVoices, previousVoices []domain.Event,
	searchQueries []domain.SearchQuery,
) *domain.TrendReport {
	report := &domain.TrendReport{
		PeriodStart: window.Start,
		PeriodEnd:   window.End,
	}

	report.Trends = s.detector.DetectRisingKeywords(currentEvents, previousEvents, searchQueries)
	report.MentionGrowthRate, report.MentionGrowthSet = s.detector.MentionGrowth(currentEvents, previousEvents)
	report.SentimentTrend = s.sentiment.AnalyzeTrend(currentVoices, previousVoices)

	// Corroboration validates the top keywords against the combined
	// corpus: a keyword echoed by both media and community sources is a
	// stronger signal than either alone.
	combined := make([]domain.Event, 0, len(currentEvents)+len(currentVoices))
	combined = append(combined, currentEvents...)
	combined = append(combined, currentVoices...)

	topN := s.config.CorroborateTopN
	if topN > len(report.Trends) {
		topN = len(report.Trends)
	}
	for _, t := range report.Trends[:topN] {
		if result := trend.DetectMultiSourceMentions(combined, t.Keyword, s.config.MinSources); result != nil {
			report.Corroborated = append(report.Corroborated, *result)
		}
	}

	return report
}

func (s *AnalysisService) persistReport(ctx context.Context, report *domain.TrendReport) error {
	rows := trendRows(report)
	if len(rows) == 0 {
		s.logger.Info("no trends to persist")
		return nil
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.trends.InsertBatch(txCtx, rows)
	})
}

// trendRows flattens a report into persistable rows.
func trendRows(report *domain.TrendReport) []domain.Trend {
	var rows []domain.Trend

	for _, t := range report.Trends {
		rows = append(rows, domain.Trend{
			Keyword:     t.Keyword,
			Type:        domain.TrendTypeKeyword,
			Value:       float64(t.CurrentCount),
			GrowthRate:  t.GrowthRate,
			PeriodStart: report.PeriodStart,
			PeriodEnd:   report.PeriodEnd,
		})
	}

	if report.MentionGrowthSet {
		rows = append(rows, domain.Trend{
			Keyword:     "overall",
			Type:        domain.TrendTypeMentionCount,
			Value:       report.MentionGrowthRate,
			GrowthRate:  report.MentionGrowthRate,
			PeriodStart: report.PeriodStart,
			PeriodEnd:   report.PeriodEnd,
		})
	}

	if st := report.SentimentTrend; st != nil {
		rows = append(rows, domain.Trend{
			Keyword:       string(st.Sentiment),
			Type:          domain.TrendTypeSentiment,
			Value:         float64(st.CurrentCount),
			PreviousValue: float64(st.PreviousCount),
			GrowthRate:    st.GrowthRate,
			PeriodStart:   report.PeriodStart,
			PeriodEnd:     report.PeriodEnd,
		})
	}

	for _, c := range report.Corroborated {
		rows = append(rows, domain.Trend{
			Keyword:     c.Keyword,
			Type:        domain.TrendTypeCorroborated,
			Value:       float64(c.Count),
			Sources:     c.Sources,
			PeriodStart: report.PeriodStart,
			PeriodEnd:   report.PeriodEnd,
		})
	}

	return rows
}

// generateIdeas is best-effort: a failed LLM call never fails the run.
func (s *AnalysisService) generateIdeas(ctx context.Context, report *domain.TrendReport) int {
	if s.generator == nil || s.ideas == nil || len(report.Trends) == 0 {
		return 0
	}

	ideas, err := s.generator.GenerateIdeas(ctx, report)
	if err != nil {
		s.logger.Warn("idea generation failed", "error", err)
		return 0
	}
	if len(ideas) == 0 {
		return 0
	}

	if err := s.ideas.InsertBatch(ctx, ideas); err != nil {
		s.logger.Warn("failed to store ideas", "error", err)
		return 0
	}

	return len(ideas)
}
