package repository

import (
	"context"

	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/pkg/logger"
)

// fallbackRelevanceRepository wraps a model-backed judge with the keyword
// judge. A call failure, parse failure or out-of-range score from the primary
// degrades to the fallback for that single document; nothing propagates to
// the caller.
type fallbackRelevanceRepository struct {
	primary  RelevanceRepository
	fallback RelevanceRepository
	logger   *logger.Logger
}

// NewFallbackRelevanceRepository decorates primary with fallback.
func NewFallbackRelevanceRepository(primary, fallback RelevanceRepository, log *logger.Logger) RelevanceRepository {
	return &fallbackRelevanceRepository{
		primary:  primary,
		fallback: fallback,
		logger:   log,
	}
}

func (r *fallbackRelevanceRepository) Mode() string {
	return r.primary.Mode()
}

func (r *fallbackRelevanceRepository) Judge(ctx context.Context, entityName, title, description string) (*dto.RelevanceVerdict, error) {
	verdict, err := r.primary.Judge(ctx, entityName, title, description)
	if err == nil && verdict.Valid() {
		return verdict, nil
	}

	if err != nil {
		r.logger.Warn("Model relevance judge failed, degrading to keyword judge",
			logger.ErrorField(err),
			logger.StringField("entity", entityName),
			logger.StringField("title", title),
		)
	} else {
		r.logger.Warn("Model relevance judge returned out-of-range score, degrading to keyword judge",
			logger.Float64Field("score", verdict.Score),
			logger.StringField("entity", entityName),
		)
	}

	return r.fallback.Judge(ctx, entityName, title, description)
}
