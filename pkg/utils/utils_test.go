package utils

import (
	"context"
	"testing"
	"time"

	"golang-apt-news-collector/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoSafeRecoversPanic(t *testing.T) {
	done := make(chan struct{})
	GoSafe(func() {
		defer close(done)
		panic("boom")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("GoSafe never ran the function")
	}
	// reaching here without the process dying is the assertion
}

func TestShouldContinue(t *testing.T) {
	log, err := logger.New("error", "json")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	assert.True(t, ShouldContinue(ctx, log))

	cancel()
	assert.False(t, ShouldContinue(ctx, log))
}
