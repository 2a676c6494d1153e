package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"dixanta.dev/internal/config"
)

func TestServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := &app{
		cfg: &config.Config{
			ServerAddr:      "127.0.0.1:0",
			DataPath:        writeProjects(t, `[{"title": "One"}]`),
			BaseURL:         "http://localhost",
			Watch:           true,
			ShutdownTimeout: time.Second,
		},
		logger: zaptest.NewLogger(t),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, a) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeFailsWithoutData(t *testing.T) {
	a := &app{
		cfg:    &config.Config{ServerAddr: "127.0.0.1:0", DataPath: t.TempDir()},
		logger: zaptest.NewLogger(t),
	}

	err := serve(context.Background(), a)
	assert.ErrorContains(t, err, "load content")
}
