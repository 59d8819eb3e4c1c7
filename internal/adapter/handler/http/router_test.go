package http

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterShutdownBeforeServe(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, "127.0.0.1:0", s.router.Addr())

	require.NoError(t, s.router.Shutdown(context.Background()))

	done := make(chan error, 1)
	go func() { done <- s.router.Serve() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after Shutdown")
	}
}

func TestRouterShutdownStopsServe(t *testing.T) {
	s := newTestServer(t)

	done := make(chan error, 1)
	go func() { done <- s.router.Serve() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.router.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve kept running after Shutdown")
	}
}
