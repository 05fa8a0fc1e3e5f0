package service

import (
	"context"
	"fmt"
	"testing"

	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/internal/entity"
	"golang-apt-news-collector/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

// stubSearchRepo replays canned search results in call order.
type stubSearchRepo struct {
	results []*dto.SearchResult
	queries []string
}

func (s *stubSearchRepo) Search(_ context.Context, query string, _ int) *dto.SearchResult {
	s.queries = append(s.queries, query)
	call := len(s.queries) - 1
	if call < len(s.results) {
		return s.results[call]
	}
	return &dto.SearchResult{Items: []dto.NaverNewsItem{}}
}

func (s *stubSearchRepo) Configured() bool { return true }

// stubRelevanceRepo scores items by title lookup.
type stubRelevanceRepo struct {
	scores map[string]float64
	errFor map[string]error
}

func (s *stubRelevanceRepo) Judge(_ context.Context, _, title, _ string) (*dto.RelevanceVerdict, error) {
	if err, ok := s.errFor[title]; ok {
		return nil, err
	}
	score, ok := s.scores[title]
	if !ok {
		return nil, fmt.Errorf("no stubbed score for title %q", title)
	}
	return &dto.RelevanceVerdict{Score: score, Reason: "직접 언급"}, nil
}

func (s *stubRelevanceRepo) Mode() string { return entity.RelevanceFilterKeyword }

func searchResultOf(titles ...string) *dto.SearchResult {
	items := make([]dto.NaverNewsItem, 0, len(titles))
	for _, title := range titles {
		items = append(items, dto.NaverNewsItem{
			Title:       title,
			Link:        "https://n.news.naver.com/article/1",
			Description: title + " 내용",
			PubDate:     "Mon, 02 Jan 2006 15:04:05 +0900",
		})
	}
	return &dto.SearchResult{Items: items, Total: len(titles)}
}

func scoringPipeline(search *stubSearchRepo, relevance *stubRelevanceRepo, log *logger.Logger) *Pipeline {
	return NewPipeline(search, relevance, nil, PipelineOptions{
		NewsPerEntity:     10,
		MinRelevanceScore: 0.6,
		ScoringEnabled:    true,
	}, log)
}

func TestCollectFiltersBelowThreshold(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("A", "B", "C")}}
	relevance := &stubRelevanceRepo{scores: map[string]float64{"A": 0.9, "B": 0.3, "C": 0.7}}
	pipeline := scoringPipeline(search, relevance, newTestLogger(t))

	result, err := pipeline.Collect(context.Background(), entity.Target{Name: "잠실엘스"})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, "A", result.Items[0].Title)
	assert.Equal(t, "C", result.Items[1].Title)
	assert.Equal(t, 2, result.NewsCount)
	assert.Equal(t, 3, result.TotalNews)
	for _, item := range result.Items {
		assert.Equal(t, "직접 언급", item.Relevance)
	}
}

func TestCollectRanksByScoreWithStableTies(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("A", "B", "C", "D")}}
	relevance := &stubRelevanceRepo{scores: map[string]float64{"A": 0.9, "B": 0.9, "C": 0.3, "D": 0.7}}
	pipeline := scoringPipeline(search, relevance, newTestLogger(t))

	result, err := pipeline.Collect(context.Background(), entity.Target{Name: "잠실엘스"})
	require.NoError(t, err)

	titles := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"A", "B", "D"}, titles)
}

func TestCollectBroadenedRetry(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{
		{Items: []dto.NaverNewsItem{}},
		searchResultOf("A"),
	}}
	relevance := &stubRelevanceRepo{scores: map[string]float64{"A": 0.9}}
	pipeline := scoringPipeline(search, relevance, newTestLogger(t))

	result, err := pipeline.Collect(context.Background(), entity.Target{Name: "잠실엘스", Region: "서울 송파구"})
	require.NoError(t, err)

	require.Equal(t, []string{"잠실엘스 아파트", "서울 송파구 잠실엘스"}, search.queries)
	assert.Equal(t, 1, result.NewsCount)
}

func TestCollectNoRetryWithoutRegion(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{{Items: []dto.NaverNewsItem{}}}}
	relevance := &stubRelevanceRepo{}
	pipeline := scoringPipeline(search, relevance, newTestLogger(t))

	result, err := pipeline.Collect(context.Background(), entity.Target{Name: "잠실엘스"})
	require.NoError(t, err)

	assert.Equal(t, []string{"잠실엘스 아파트"}, search.queries)
	assert.Equal(t, 0, result.NewsCount)
	assert.Equal(t, "잠실엘스 관련 최신 뉴스가 충분하지 않습니다.", result.Summary)
}

func TestCollectScoringDisabledKeepsProviderOrder(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("C", "A", "B")}}
	pipeline := NewPipeline(search, nil, nil, PipelineOptions{
		NewsPerEntity:  10,
		ScoringEnabled: false,
	}, newTestLogger(t))

	result, err := pipeline.Collect(context.Background(), entity.Target{Name: "서울 송파구"})
	require.NoError(t, err)

	titles := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"C", "A", "B"}, titles)
	assert.Empty(t, result.RelevanceScore)
	for _, item := range result.Items {
		assert.Empty(t, item.Relevance)
	}
}

func TestCollectPropagatesJudgeFailure(t *testing.T) {
	search := &stubSearchRepo{results: []*dto.SearchResult{searchResultOf("A")}}
	relevance := &stubRelevanceRepo{errFor: map[string]error{"A": fmt.Errorf("model unavailable")}}
	pipeline := scoringPipeline(search, relevance, newTestLogger(t))

	_, err := pipeline.Collect(context.Background(), entity.Target{Name: "잠실엘스"})
	assert.Error(t, err)
}

func TestRelevanceTier(t *testing.T) {
	testCases := []struct {
		name     string
		scores   []float64
		expected string
	}{
		{"very high at boundary", []float64{0.85}, entity.RelevanceTierVeryHigh},
		{"high just under very high", []float64{0.84}, entity.RelevanceTierHigh},
		{"high at boundary", []float64{0.70}, entity.RelevanceTierHigh},
		{"medium just under high", []float64{0.69}, entity.RelevanceTierMedium},
		{"mean of mixed scores", []float64{0.9, 0.9}, entity.RelevanceTierVeryHigh},
		{"empty set defaults to medium", nil, entity.RelevanceTierMedium},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			retained := make([]scoredItem, 0, len(tc.scores))
			for _, score := range tc.scores {
				retained = append(retained, scoredItem{score: score})
			}
			assert.Equal(t, tc.expected, relevanceTier(retained))
		})
	}
}

func TestSummarize(t *testing.T) {
	items := []entity.NewsItem{
		{Title: "잠실엘스 신고가 경신", Description: "27억원에 거래"},
		{Title: "인근 단지 분양 소식", Description: "청약 경쟁률"},
	}
	summary := summarize("잠실엘스", items)
	assert.Equal(t, "잠실엘스: 신고가 경신, 분양/입주 관련 뉴스가 주목받고 있습니다.", summary)
}

func TestSummarizeNoTopicMatch(t *testing.T) {
	items := []entity.NewsItem{
		{Title: "잠실엘스 주변 공원 조성", Description: "산책로 개선"},
	}
	summary := summarize("잠실엘스", items)
	assert.Equal(t, "잠실엘스 관련 최신 부동산 뉴스입니다.", summary)
}

func TestSummarizeCapsAtThreeTopics(t *testing.T) {
	items := []entity.NewsItem{
		{Title: "신고가", Description: "상승"},
		{Title: "재건축", Description: "분양"},
		{Title: "거래량", Description: "매물"},
	}
	summary := summarize("잠실엘스", items)
	assert.Equal(t, "잠실엘스: 신고가 경신, 가격 상승, 재건축 관련 뉴스가 주목받고 있습니다.", summary)
}
