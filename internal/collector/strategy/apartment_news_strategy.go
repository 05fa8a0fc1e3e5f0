package strategy

import (
	"context"
	"fmt"

	"golang-apt-news-collector/internal/collector/config"
	"golang-apt-news-collector/internal/collector/repository"
	"golang-apt-news-collector/internal/collector/service"
	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"
)

// ApartmentNewsStrategy collects per-apartment news with relevance scoring
// and threshold filtering.
type ApartmentNewsStrategy struct {
	cfg        *config.Config
	runner     *service.BatchRunner
	searchRepo repository.NewsSearchRepository
	logger     *logger.Logger
}

// NewApartmentNewsStrategy creates a new instance of ApartmentNewsStrategy.
func NewApartmentNewsStrategy(
	cfg *config.Config,
	searchRepo repository.NewsSearchRepository,
	relevanceRepo repository.RelevanceRepository,
	contentRepo repository.ArticleContentRepository,
	store repository.NewsStoreRepository,
	log *logger.Logger,
) *ApartmentNewsStrategy {
	pipeline := service.NewPipeline(searchRepo, relevanceRepo, contentRepo, service.PipelineOptions{
		NewsPerEntity:     cfg.Collector.NewsPerEntity,
		MinRelevanceScore: cfg.Collector.MinRelevanceScore,
		ScoringEnabled:    true,
		FetchFullContent:  cfg.Collector.FetchFullContent,
	}, log)

	return &ApartmentNewsStrategy{
		cfg:        cfg,
		runner:     service.NewBatchRunner(pipeline, store, log),
		searchRepo: searchRepo,
		logger:     log,
	}
}

// GetType returns the job type this strategy handles.
func (s *ApartmentNewsStrategy) GetType() string {
	return TypeApartmentNews
}

// Execute runs the apartment news collection batch.
func (s *ApartmentNewsStrategy) Execute(ctx context.Context) (string, *entity.CollectionRun, error) {
	if !s.searchRepo.Configured() {
		s.logger.Warn("Search API credentials missing, leaving prior apartment news untouched")
		return SKIPPED, nil, nil
	}

	run, err := s.runner.Run(ctx, s.cfg.Collector.Apartments)
	if err != nil {
		return "", nil, fmt.Errorf("apartment news batch failed: %w", err)
	}

	return SUCCESS, run, nil
}
