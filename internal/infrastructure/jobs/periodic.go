package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Periodic runs fn every interval on its own goroutine until stopped.
// It is owned by the process lifecycle: Start once, Stop on shutdown.
type Periodic struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context)
	logger   *logrus.Logger

	startOnce   sync.Once
	stopOnce    sync.Once
	started     atomic.Bool
	stopChan    chan struct{}
	stoppedChan chan struct{}
}

func NewPeriodic(name string, interval time.Duration, fn func(ctx context.Context), logger *logrus.Logger) *Periodic {
	return &Periodic{
		name:        name,
		interval:    interval,
		fn:          fn,
		logger:      logger,
		stopChan:    make(chan struct{}),
		stoppedChan: make(chan struct{}),
	}
}

// Start launches the loop. A non-positive interval disables the job.
func (p *Periodic) Start(ctx context.Context) {
	if p.interval <= 0 {
		if p.logger != nil {
			p.logger.WithField("job", p.name).Info("periodic job disabled")
		}
		return
	}
	p.startOnce.Do(func() {
		p.started.Store(true)
		if p.logger != nil {
			p.logger.WithFields(logrus.Fields{"job": p.name, "interval": p.interval.String()}).Info("starting periodic job")
		}
		go p.loop(ctx)
	})
}

// Stop signals the loop to exit and waits for it. Safe to call more than once or without Start.
func (p *Periodic) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
		if p.started.Load() {
			<-p.stoppedChan
		}
		if p.logger != nil {
			p.logger.WithField("job", p.name).Info("periodic job stopped")
		}
	})
}

func (p *Periodic) loop(ctx context.Context) {
	defer close(p.stoppedChan)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopChan:
			return
		case <-ticker.C:
			p.fn(ctx)
		}
	}
}
