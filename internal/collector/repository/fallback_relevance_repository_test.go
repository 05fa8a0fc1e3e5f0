package repository

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

type fixedJudge struct {
	verdict *dto.RelevanceVerdict
	err     error
	mode    string
	calls   int
}

func (f *fixedJudge) Judge(_ context.Context, _, _, _ string) (*dto.RelevanceVerdict, error) {
	f.calls++
	return f.verdict, f.err
}

func (f *fixedJudge) Mode() string { return f.mode }

func TestFallbackUsesPrimaryWhenHealthy(t *testing.T) {
	primary := &fixedJudge{verdict: &dto.RelevanceVerdict{Score: 0.8, Reason: "모델 판정"}, mode: entity.RelevanceFilterLLM}
	fallback := &fixedJudge{verdict: &dto.RelevanceVerdict{Score: 0.2, Reason: "관련성 낮음"}, mode: entity.RelevanceFilterKeyword}

	judge := NewFallbackRelevanceRepository(primary, fallback, newTestLogger(t))
	verdict, err := judge.Judge(context.Background(), "잠실엘스", "제목", "내용")
	require.NoError(t, err)

	assert.InDelta(t, 0.8, verdict.Score, 1e-9)
	assert.Zero(t, fallback.calls)
	assert.Equal(t, entity.RelevanceFilterLLM, judge.Mode())
}

func TestFallbackDegradesOnPrimaryError(t *testing.T) {
	primary := &fixedJudge{err: fmt.Errorf("model unavailable"), mode: entity.RelevanceFilterLLM}
	fallback := &fixedJudge{verdict: &dto.RelevanceVerdict{Score: 0.7, Reason: "직접 언급"}, mode: entity.RelevanceFilterKeyword}

	judge := NewFallbackRelevanceRepository(primary, fallback, newTestLogger(t))
	verdict, err := judge.Judge(context.Background(), "잠실엘스", "제목", "내용")
	require.NoError(t, err)

	assert.InDelta(t, 0.7, verdict.Score, 1e-9)
	assert.Equal(t, 1, fallback.calls)
}

func TestFallbackDegradesOnOutOfRangeScore(t *testing.T) {
	primary := &fixedJudge{verdict: &dto.RelevanceVerdict{Score: 1.4, Reason: "범위 밖"}, mode: entity.RelevanceFilterLLM}
	fallback := &fixedJudge{verdict: &dto.RelevanceVerdict{Score: 0.2, Reason: "관련성 낮음"}, mode: entity.RelevanceFilterKeyword}

	judge := NewFallbackRelevanceRepository(primary, fallback, newTestLogger(t))
	verdict, err := judge.Judge(context.Background(), "잠실엘스", "제목", "내용")
	require.NoError(t, err)

	assert.InDelta(t, 0.2, verdict.Score, 1e-9)
	assert.Equal(t, 1, fallback.calls)
}
