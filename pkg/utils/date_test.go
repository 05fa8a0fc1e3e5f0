package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPubDate(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "RFC1123Z provider timestamp",
			raw:      "Mon, 02 Jan 2006 15:04:05 +0900",
			expected: "2006-01-02",
		},
		{
			name:     "RFC3339 timestamp",
			raw:      "2026-08-27T09:30:00+09:00",
			expected: "2026-08-27",
		},
		{
			name:     "malformed long input truncates to ten runes",
			raw:      "unparseable-timestamp",
			expected: "unparseabl",
		},
		{
			name:     "malformed short input passes through",
			raw:      "short",
			expected: "short",
		},
		{
			name:     "empty input",
			raw:      "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatPubDate(tc.raw))
		})
	}
}

func TestTruncateRunesDoesNotSplitMultibyte(t *testing.T) {
	assert.Equal(t, "가나다", TruncateRunes("가나다라마", 3))
	assert.Equal(t, "가나다", TruncateRunes("가나다", 10))
}
