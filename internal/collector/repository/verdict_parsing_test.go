package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdictJSON(t *testing.T) {
	verdict, err := parseVerdictJSON(`{"score": 0.8, "reason": "직접 언급"}`)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, verdict.Score, 1e-9)
	assert.Equal(t, "직접 언급", verdict.Reason)
}

func TestParseVerdictJSONTrimsCodeFence(t *testing.T) {
	raw := "```json\n{\"score\": 0.5, \"reason\": \"부분 매칭\"}\n```"
	verdict, err := parseVerdictJSON(raw)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, verdict.Score, 1e-9)
}

func TestParseVerdictJSONRejectsOutOfRangeScore(t *testing.T) {
	_, err := parseVerdictJSON(`{"score": 1.5, "reason": "너무 높음"}`)
	assert.Error(t, err)
}

func TestParseVerdictJSONRejectsEmptyContent(t *testing.T) {
	_, err := parseVerdictJSON("")
	assert.Error(t, err)
}

func TestParseVerdictJSONRejectsMalformedJSON(t *testing.T) {
	_, err := parseVerdictJSON("score: 0.8")
	assert.Error(t, err)
}
