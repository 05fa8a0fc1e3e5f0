package strategy

import (
	"context"

	"golang-apt-news-collector/internal/entity"
)

// Collection job types.
const (
	TypeApartmentNews = "apartment_news"
	TypeRegionNews    = "region_news"
)

// Run statuses reported by a strategy.
const (
	SUCCESS = "SUCCESS"
	SKIPPED = "SKIPPED"
)

// CollectionStrategy defines one batch collection variant.
type CollectionStrategy interface {
	// Execute runs the batch once. A SKIPPED status with a nil run means the
	// run was a deliberate no-op (e.g. missing search credentials) and must
	// not be treated as a failure.
	Execute(ctx context.Context) (string, *entity.CollectionRun, error)
	GetType() string
}
