package repository

import (
	"context"

	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/internal/entity"
)

// NewsSearchRepository fetches candidate news items for a query. Search never
// returns an error: missing credentials, transport and parse failures all
// degrade to an empty result set so the batch continues for other entities.
type NewsSearchRepository interface {
	Search(ctx context.Context, query string, limit int) *dto.SearchResult
	Configured() bool
}

// RelevanceRepository judges how relevant a news item is to a named entity.
type RelevanceRepository interface {
	Judge(ctx context.Context, entityName, title, description string) (*dto.RelevanceVerdict, error)
	Mode() string
}

// NewsStoreRepository persists collection run documents.
type NewsStoreRepository interface {
	// Load returns the stored run, or an empty run when the file is missing
	// or unreadable.
	Load(ctx context.Context) *entity.CollectionRun
	// Save writes the run atomically; a failure here is fatal to the batch.
	Save(ctx context.Context, run *entity.CollectionRun) error
}

// ArticleContentRepository fetches the readable text of a linked article.
type ArticleContentRepository interface {
	FetchReadableText(ctx context.Context, url string) (string, error)
}
