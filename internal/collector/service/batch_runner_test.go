package service

import (
	"context"
	"fmt"
	"testing"

	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory NewsStoreRepository.
type fakeStore struct {
	prior   *entity.CollectionRun
	saved   *entity.CollectionRun
	saveErr error
}

func (f *fakeStore) Load(_ context.Context) *entity.CollectionRun {
	if f.prior == nil {
		return &entity.CollectionRun{Entities: map[string]*entity.EntityResult{}}
	}
	return f.prior
}

func (f *fakeStore) Save(_ context.Context, run *entity.CollectionRun) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = run
	return nil
}

func TestBatchRunnerCarriesForwardPriorResultOnFailure(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{
		searchResultOf("a-news"),
		searchResultOf("b-news"),
	}}
	relevance := &stubRelevanceRepo{
		scores: map[string]float64{"a-news": 0.9},
		errFor: map[string]error{"b-news": fmt.Errorf("model unavailable")},
	}
	log := newTestLogger(t)

	priorB := &entity.EntityResult{NewsCount: 3, Summary: "이전 실행 결과"}
	store := &fakeStore{prior: &entity.CollectionRun{
		Entities: map[string]*entity.EntityResult{"B": priorB},
	}}

	runner := NewBatchRunner(scoringPipeline(search, relevance, log), store, log)
	run, err := runner.Run(context.Background(), []entity.Target{{Name: "A"}, {Name: "B"}})
	require.NoError(t, err)

	require.Contains(t, run.Entities, "A")
	assert.Equal(t, 1, run.Entities["A"].NewsCount)

	require.Contains(t, run.Entities, "B")
	assert.Same(t, priorB, run.Entities["B"])

	assert.Same(t, run, store.saved)
}

func TestBatchRunnerDropsFailedEntityWithoutPrior(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("a-news")}}
	relevance := &stubRelevanceRepo{errFor: map[string]error{"a-news": fmt.Errorf("model unavailable")}}
	log := newTestLogger(t)
	store := &fakeStore{}

	runner := NewBatchRunner(scoringPipeline(search, relevance, log), store, log)
	run, err := runner.Run(context.Background(), []entity.Target{{Name: "A"}})
	require.NoError(t, err)

	assert.NotContains(t, run.Entities, "A")
}

func TestBatchRunnerMetadata(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("a-news")}}
	relevance := &stubRelevanceRepo{scores: map[string]float64{"a-news": 0.9}}
	log := newTestLogger(t)
	store := &fakeStore{}

	runner := NewBatchRunner(scoringPipeline(search, relevance, log), store, log)
	run, err := runner.Run(context.Background(), []entity.Target{{Name: "A"}})
	require.NoError(t, err)

	assert.Equal(t, 1, run.Metadata.TotalEntities)
	assert.Equal(t, entity.RelevanceFilterKeyword, run.Metadata.RelevanceFilter)
	assert.Equal(t, 0.6, run.Metadata.MinRelevanceScore)
	assert.False(t, run.LastUpdated.IsZero())
}

func TestBatchRunnerMetadataScoringDisabled(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("a-news")}}
	log := newTestLogger(t)
	store := &fakeStore{}

	pipeline := NewPipeline(search, nil, nil, PipelineOptions{NewsPerEntity: 10}, log)
	runner := NewBatchRunner(pipeline, store, log)
	run, err := runner.Run(context.Background(), []entity.Target{{Name: "서울 송파구"}})
	require.NoError(t, err)

	assert.Equal(t, entity.RelevanceFilterDisabled, run.Metadata.RelevanceFilter)
	assert.Zero(t, run.Metadata.MinRelevanceScore)
}

func TestBatchRunnerPersistenceFailureIsFatal(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("a-news")}}
	relevance := &stubRelevanceRepo{scores: map[string]float64{"a-news": 0.9}}
	log := newTestLogger(t)
	store := &fakeStore{saveErr: fmt.Errorf("disk full")}

	runner := NewBatchRunner(scoringPipeline(search, relevance, log), store, log)
	_, err := runner.Run(context.Background(), []entity.Target{{Name: "A"}})
	assert.Error(t, err)
}
