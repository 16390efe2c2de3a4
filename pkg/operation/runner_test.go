package operation

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestOperationRunner_Run(t *testing.T) {
	tests := []struct {
		name  string
		async bool
	}{
		{name: "sync", async: false},
		{name: "async", async: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			runner := NewRunner(&logger, tt.async)

			var calls int32
			op := OperationFunc(func(ctx context.Context) error {
				atomic.AddInt32(&calls, 1)
				return nil
			})

			err := runner.Run(context.Background(), op)
			require.NoError(t, err)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "operation should run exactly once")
		})
	}
}

func TestOperationRunner_Run_propagatesError(t *testing.T) {
	tests := []struct {
		name  string
		async bool
	}{
		{name: "sync", async: false},
		{name: "async", async: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zerolog.New(zerolog.NewTestWriter(t))
			runner := NewRunner(&logger, tt.async)

			op := OperationFunc(func(ctx context.Context) error {
				return errors.Errorf("boom")
			})

			err := runner.Run(context.Background(), op)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestOperationRunner_Run_asyncCancellation(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := NewRunner(&logger, true)

	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	op := OperationFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	go func() {
		<-started
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- runner.Run(ctx, op)
	}()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "operation cancelled")
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not return after cancellation")
	}
}
