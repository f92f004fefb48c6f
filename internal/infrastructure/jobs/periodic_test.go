package jobs_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avatarctic/catalog-edge/internal/infrastructure/jobs"
)

func TestPeriodic_RunsUntilStopped(t *testing.T) {
	var runs atomic.Int32
	ran := make(chan struct{}, 10)
	p := jobs.NewPeriodic("test", 5*time.Millisecond, func(ctx context.Context) {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
	}, logrus.New())

	p.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
	p.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after Stop returns")
	require.NotPanics(t, p.Stop)
}

func TestPeriodic_DisabledWithNonPositiveInterval(t *testing.T) {
	var runs atomic.Int32
	p := jobs.NewPeriodic("off", 0, func(ctx context.Context) { runs.Add(1) }, nil)
	p.Start(context.Background())
	p.Stop()
	assert.Equal(t, int32(0), runs.Load())
}

func TestPeriodic_StopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := jobs.NewPeriodic("ctx", time.Hour, func(ctx context.Context) {}, nil)
	p.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after context cancellation")
	}
}

func TestPeriodic_StartAndStopFromDifferentGoroutines(t *testing.T) {
	for range 20 {
		p := jobs.NewPeriodic("race", time.Millisecond, func(ctx context.Context) {}, nil)
		started := make(chan struct{})
		go func() {
			p.Start(context.Background())
			close(started)
		}()
		p.Stop()
		<-started
		require.NotPanics(t, p.Stop)
	}
}
