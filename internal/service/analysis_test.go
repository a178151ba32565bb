package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trend_digest/internal/config"
	"trend_digest/internal/domain"
	"trend_digest/internal/service/mocks"
	"trend_digest/internal/trend"
)

type AnalysisServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	events    *mocks.MockEventStore
	queries   *mocks.MockSearchQueryStore
	trends    *mocks.MockTrendStore
	ideas     *mocks.MockIdeaStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockReportPublisher
	generator *mocks.MockIdeaGenerator

	service *AnalysisService
	cfg     config.AnalysisConfig
	logger  *slog.Logger
}

func (s *AnalysisServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.events = mocks.NewMockEventStore(s.ctrl)
	s.queries = mocks.NewMockSearchQueryStore(s.ctrl)
	s.trends = mocks.NewMockTrendStore(s.ctrl)
	s.ideas = mocks.NewMockIdeaStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockReportPublisher(s.ctrl)
	s.generator = mocks.NewMockIdeaGenerator(s.ctrl)

	s.cfg = config.AnalysisConfig{
		Interval:        time.Hour,
		WindowDays:      7,
		MinGrowthRate:   50,
		MaxResults:      30,
		MinSources:      2,
		CorroborateTopN: 3,
		SearchQueryDays: 28,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewAnalysisService(
		s.events,
		s.queries,
		s.trends,
		s.ideas,
		s.txManager,
		s.publisher,
		s.generator,
		trend.NewDetector(trend.DetectorConfig{MinGrowthRate: s.cfg.MinGrowthRate, MaxResults: s.cfg.MaxResults}),
		trend.NewSentimentAnalyzer(trend.SentimentConfig{}),
		s.logger,
		s.cfg,
	)
}

func (s *AnalysisServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAnalysisServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}

// expectWindows wires the four concurrent window reads. The current
// window ends near now, the previous one a full window earlier, so the
// end timestamp is enough to tell them apart.
func (s *AnalysisServiceTestSuite) expectWindows(currentEvents, previousEvents, currentVoices, previousVoices []domain.Event) {
	marker := time.Now().UTC().Add(-time.Hour)

	s.events.EXPECT().QueryEvents(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w domain.Window) ([]domain.Event, error) {
			if w.End.After(marker) {
				return currentEvents, nil
			}
			return previousEvents, nil
		},
	).Times(2)

	s.events.EXPECT().QueryVoices(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, w domain.Window) ([]domain.Event, error) {
			if w.End.After(marker) {
				return currentVoices, nil
			}
			return previousVoices, nil
		},
	).Times(2)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_RisingModel() {
	ctx := context.Background()

	currentEvents := []domain.Event{
		{Source: "techcrunch", Kind: "media", Title: "GPT-9 launches today"},
		{Source: "techcrunch", Kind: "media", Title: "GPT-9 benchmark results"},
		{Source: "hn", Kind: "community", Title: "GPT-9 first impressions"},
		{Source: "hn", Kind: "community", Title: "Show HN: building with GPT-9"},
	}

	s.expectWindows(currentEvents, nil, nil, nil)
	s.queries.EXPECT().QuerySince(gomock.Any(), gomock.Any()).Return(nil, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	var persisted []domain.Trend
	s.trends.EXPECT().InsertBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rows []domain.Trend) error {
			persisted = rows
			return nil
		},
	)

	s.publisher.EXPECT().PublishReport(ctx, gomock.Any()).Return(nil)

	ideas := []domain.BlogIdea{
		{Title: "What GPT-9 changes for developers", Priority: "high"},
		{Title: "GPT-9 versus the field", Priority: "medium"},
	}
	s.generator.EXPECT().GenerateIdeas(ctx, gomock.Any()).Return(ideas, nil)
	s.ideas.EXPECT().InsertBatch(ctx, ideas).Return(nil)

	stats, err := s.service.Analyze(ctx)

	s.NoError(err)
	s.Equal(4, stats.CurrentEvents)
	s.Equal(0, stats.PreviousEvents)
	s.Equal(1, stats.Trends)
	s.Equal(1, stats.Corroborated)
	s.False(stats.SentimentFound)
	s.Equal(2, stats.Ideas)

	// keyword row + overall mention-count row + corroborated row
	s.Require().Len(persisted, 3)
	s.Equal("Gpt-9", persisted[0].Keyword)
	s.Equal(domain.TrendTypeKeyword, persisted[0].Type)
	s.Equal(float64(4), persisted[0].Value)
	s.Equal(100.0, persisted[0].GrowthRate)
	s.Equal("overall", persisted[1].Keyword)
	s.Equal(domain.TrendTypeMentionCount, persisted[1].Type)
	s.Equal(100.0, persisted[1].GrowthRate)
	s.Equal("Gpt-9", persisted[2].Keyword)
	s.Equal(domain.TrendTypeCorroborated, persisted[2].Type)
	s.Equal([]string{"hn", "techcrunch"}, persisted[2].Sources)
	s.Equal(float64(4), persisted[2].Value)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_QuietPeriod() {
	ctx := context.Background()

	s.expectWindows(nil, nil, nil, nil)
	s.queries.EXPECT().QuerySince(gomock.Any(), gomock.Any()).Return(nil, nil)

	// nothing to persist, so no transaction either
	s.publisher.EXPECT().PublishReport(ctx, gomock.Any()).Return(nil)

	stats, err := s.service.Analyze(ctx)

	s.NoError(err)
	s.Equal(0, stats.Trends)
	s.Equal(0, stats.Corroborated)
	s.False(stats.SentimentFound)
	s.Equal(0, stats.Ideas)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_SearchQueryLogUnavailable() {
	ctx := context.Background()

	s.expectWindows(nil, nil, nil, nil)
	s.queries.EXPECT().QuerySince(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	s.publisher.EXPECT().PublishReport(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Analyze(ctx)

	s.NoError(err)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_EventQueryError() {
	ctx := context.Background()

	s.events.EXPECT().QueryEvents(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down")).MinTimes(1).MaxTimes(2)
	s.events.EXPECT().QueryVoices(gomock.Any(), gomock.Any()).
		Return(nil, nil).MaxTimes(2)

	stats, err := s.service.Analyze(ctx)

	s.Error(err)
	s.ErrorContains(err, "query windows")
	s.Nil(stats)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_PersistError() {
	ctx := context.Background()

	currentEvents := []domain.Event{
		{Source: "techcrunch", Kind: "media", Title: "Claude 5 announced"},
		{Source: "hn", Kind: "community", Title: "Claude 5 is out"},
		{Source: "reddit", Kind: "community", Title: "Claude 5 megathread"},
	}

	s.expectWindows(currentEvents, nil, nil, nil)
	s.queries.EXPECT().QuerySince(gomock.Any(), gomock.Any()).Return(nil, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("deadlock"))

	stats, err := s.service.Analyze(ctx)

	s.Error(err)
	s.ErrorContains(err, "persist report")
	s.NotNil(stats)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_IdeaGenerationFailureIsNonFatal() {
	ctx := context.Background()

	currentEvents := []domain.Event{
		{Source: "techcrunch", Kind: "media", Title: "Gemini 4 released"},
		{Source: "hn", Kind: "community", Title: "Gemini 4 hands on"},
		{Source: "reddit", Kind: "community", Title: "Gemini 4 discussion"},
	}

	s.expectWindows(currentEvents, nil, nil, nil)
	s.queries.EXPECT().QuerySince(gomock.Any(), gomock.Any()).Return(nil, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.trends.EXPECT().InsertBatch(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().PublishReport(ctx, gomock.Any()).Return(nil)

	s.generator.EXPECT().GenerateIdeas(ctx, gomock.Any()).Return(nil, errors.New("rate limited"))

	stats, err := s.service.Analyze(ctx)

	s.NoError(err)
	s.Equal(0, stats.Ideas)
}

func (s *AnalysisServiceTestSuite) TestAnalyze_WithoutPublisherOrGenerator() {
	ctx := context.Background()

	service := NewAnalysisService(
		s.events,
		nil,
		s.trends,
		s.ideas,
		s.txManager,
		nil,
		nil,
		trend.NewDetector(trend.DetectorConfig{MinGrowthRate: s.cfg.MinGrowthRate, MaxResults: s.cfg.MaxResults}),
		trend.NewSentimentAnalyzer(trend.SentimentConfig{}),
		s.logger,
		s.cfg,
	)

	s.expectWindows(nil, nil, nil, nil)

	stats, err := service.Analyze(ctx)

	s.NoError(err)
	s.Equal(0, stats.Trends)
}
