package telegram

import (
	"strings"
	"testing"
	"time"

	"golang-apt-news-collector/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatCollectionRun(t *testing.T) {
	run := &entity.CollectionRun{
		LastUpdated: time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC),
		Entities: map[string]*entity.EntityResult{
			"헬리오시티": {NewsCount: 2, RelevanceScore: entity.RelevanceTierHigh},
			"잠실엘스":  {NewsCount: 3, RelevanceScore: entity.RelevanceTierVeryHigh},
		},
	}

	msg := FormatCollectionRun("apartment_news", run)

	assert.Contains(t, msg, "*apartment_news 수집 완료* (2026-08-28 06:00)")
	assert.Contains(t, msg, "대상 2곳, 뉴스 5건")
	assert.Contains(t, msg, "• *잠실엘스*: 3건 (very_high)")
	assert.Contains(t, msg, "• *헬리오시티*: 2건 (high)")

	// entity lines are sorted by name, independent of map iteration order
	assert.Less(t, strings.Index(msg, "잠실엘스"), strings.Index(msg, "헬리오시티"))
}

func TestFormatCollectionRunWithoutTier(t *testing.T) {
	run := &entity.CollectionRun{
		LastUpdated: time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC),
		Entities: map[string]*entity.EntityResult{
			"서울 송파구": {NewsCount: 4},
		},
	}

	msg := FormatCollectionRun("region_news", run)
	assert.Contains(t, msg, "• *서울 송파구*: 4건\n")
	assert.NotContains(t, msg, "건 (")
}
