package repository

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang-apt-news-collector/internal/collector/dto"
	"golang-apt-news-collector/internal/entity"
)

// transactionKeywords signal concrete price or trade information when they
// co-occur with a direct mention of the entity.
var transactionKeywords = []string{"억", "만원", "거래", "신고가", "최고가", "매매", "전세"}

// brandTokens are common apartment brand prefixes stripped before the
// partial-match check, so "래미안대치팰리스" still matches "대치팰리스".
var brandTokens = []string{"래미안", "자이", "힐스테이트"}

// keywordRelevanceRepository is the deterministic, dependency-free relevance
// judge. It is always available and serves as the fallback for the
// model-backed judges.
type keywordRelevanceRepository struct{}

// NewKeywordRelevanceRepository creates a new keyword-based relevance judge.
func NewKeywordRelevanceRepository() RelevanceRepository {
	return &keywordRelevanceRepository{}
}

func (r *keywordRelevanceRepository) Mode() string {
	return entity.RelevanceFilterKeyword
}

// Judge scores relevance from keyword containment. It is a total function:
// it never returns an error.
func (r *keywordRelevanceRepository) Judge(_ context.Context, entityName, title, description string) (*dto.RelevanceVerdict, error) {
	combined := strings.ToLower(title + " " + description)
	name := strings.ToLower(entityName)

	if strings.Contains(combined, name) {
		for _, kw := range transactionKeywords {
			if strings.Contains(combined, kw) {
				return &dto.RelevanceVerdict{Score: 0.9, Reason: "직접 언급 + 가격/거래 정보"}, nil
			}
		}
		return &dto.RelevanceVerdict{Score: 0.7, Reason: "직접 언급"}, nil
	}

	fragment := name
	for _, brand := range brandTokens {
		fragment = strings.ReplaceAll(fragment, strings.ToLower(brand), "")
	}
	if utf8.RuneCountInString(fragment) > 2 && strings.Contains(combined, fragment) {
		return &dto.RelevanceVerdict{Score: 0.5, Reason: "부분 매칭"}, nil
	}

	return &dto.RelevanceVerdict{Score: 0.2, Reason: "관련성 낮음"}, nil
}
