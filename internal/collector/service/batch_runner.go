package service

import (
	"context"
	"fmt"

	"golang-apt-news-collector/internal/collector/repository"
	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"
	"golang-apt-news-collector/pkg/utils"
)

// BatchRunner iterates target entities one at a time, invokes the pipeline
// for each and persists the merged run. Entities are processed strictly
// sequentially; nothing here needs locking.
type BatchRunner struct {
	pipeline *Pipeline
	store    repository.NewsStoreRepository
	logger   *logger.Logger
}

// NewBatchRunner creates a new BatchRunner.
func NewBatchRunner(pipeline *Pipeline, store repository.NewsStoreRepository, log *logger.Logger) *BatchRunner {
	return &BatchRunner{
		pipeline: pipeline,
		store:    store,
		logger:   log,
	}
}

// Run collects news for every target in input order and persists the merged
// document. An entity whose pipeline fails entirely keeps its record from the
// prior run; only a persistence failure is fatal.
func (r *BatchRunner) Run(ctx context.Context, targets []entity.Target) (*entity.CollectionRun, error) {
	prior := r.store.Load(ctx)

	run := &entity.CollectionRun{
		LastUpdated: utils.TimeNowKST(),
		Metadata: entity.RunMetadata{
			TotalEntities:   len(targets),
			RelevanceFilter: r.filterMode(),
		},
		Entities: make(map[string]*entity.EntityResult, len(targets)),
	}
	if r.pipeline.opts.ScoringEnabled {
		run.Metadata.MinRelevanceScore = r.pipeline.opts.MinRelevanceScore
	}

	for _, target := range targets {
		if !utils.ShouldContinue(ctx, r.logger) {
			break
		}

		r.logger.Info("Collecting news",
			logger.StringField("entity", target.Name),
			logger.StringField("region", target.Region),
		)

		result, err := r.collectSafely(ctx, target)
		if err != nil {
			r.logger.Error("Collection failed for entity", logger.ErrorField(err), logger.StringField("entity", target.Name))
			if previous, ok := prior.Entities[target.Name]; ok {
				r.logger.Info("Carrying forward prior result", logger.StringField("entity", target.Name))
				run.Entities[target.Name] = previous
			}
			continue
		}

		r.logger.Info("Collected news",
			logger.StringField("entity", target.Name),
			logger.IntField("matched", result.NewsCount),
			logger.IntField("total_available", result.TotalNews),
		)
		run.Entities[target.Name] = result
	}

	if err := r.store.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to persist collection run: %w", err)
	}

	return run, nil
}

// collectSafely shields the batch from panics inside a single entity's
// pipeline run.
func (r *BatchRunner) collectSafely(ctx context.Context, target entity.Target) (result *entity.EntityResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("pipeline panicked: %v", rec)
		}
	}()
	return r.pipeline.Collect(ctx, target)
}

func (r *BatchRunner) filterMode() string {
	if !r.pipeline.opts.ScoringEnabled {
		return entity.RelevanceFilterDisabled
	}
	return r.pipeline.relevanceRepo.Mode()
}
