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

// RegionNewsStrategy collects per-region news headlines. It is the same
// pipeline with scoring disabled: every fetched item is kept in provider
// order.
type RegionNewsStrategy struct {
	cfg        *config.Config
	runner     *service.BatchRunner
	searchRepo repository.NewsSearchRepository
	logger     *logger.Logger
}

// NewRegionNewsStrategy creates a new instance of RegionNewsStrategy.
func NewRegionNewsStrategy(
	cfg *config.Config,
	searchRepo repository.NewsSearchRepository,
	store repository.NewsStoreRepository,
	log *logger.Logger,
) *RegionNewsStrategy {
	pipeline := service.NewPipeline(searchRepo, nil, nil, service.PipelineOptions{
		NewsPerEntity:  cfg.Collector.NewsPerEntity,
		ScoringEnabled: false,
	}, log)

	return &RegionNewsStrategy{
		cfg:        cfg,
		runner:     service.NewBatchRunner(pipeline, store, log),
		searchRepo: searchRepo,
		logger:     log,
	}
}

// GetType returns the job type this strategy handles.
func (s *RegionNewsStrategy) GetType() string {
	return TypeRegionNews
}

// Execute runs the region news collection batch.
func (s *RegionNewsStrategy) Execute(ctx context.Context) (string, *entity.CollectionRun, error) {
	if !s.searchRepo.Configured() {
		s.logger.Warn("Search API credentials missing, leaving prior region news untouched")
		return SKIPPED, nil, nil
	}

	targets := make([]entity.Target, 0, len(s.cfg.Collector.Regions))
	for _, region := range s.cfg.Collector.Regions {
		targets = append(targets, entity.Target{Name: region})
	}

	run, err := s.runner.Run(ctx, targets)
	if err != nil {
		return "", nil, fmt.Errorf("region news batch failed: %w", err)
	}

	return SUCCESS, run, nil
}
