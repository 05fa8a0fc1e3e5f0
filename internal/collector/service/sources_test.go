package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeSource(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "known publisher",
			url:      "https://www.hankyung.com/realestate/article/2024060412345",
			expected: "한국경제",
		},
		{
			name:     "known publisher with country domain",
			url:      "https://news.mk.co.kr/article/123",
			expected: "매일경제",
		},
		{
			name:     "unknown publisher falls back",
			url:      "https://blog.example.com/post/1",
			expected: "기타",
		},
		{
			name:     "empty url falls back",
			url:      "",
			expected: "기타",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AttributeSource(tc.url))
		})
	}
}

func TestAttributeSourceFirstMatchWins(t *testing.T) {
	// hankyung.com precedes sedaily.com in the table, so a URL containing
	// both must attribute to the earlier entry on every call.
	url := "https://www.hankyung.com/article?ref=sedaily.com"
	for i := 0; i < 10; i++ {
		assert.Equal(t, "한국경제", AttributeSource(url))
	}
}
