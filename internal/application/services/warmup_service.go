package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/avatarctic/catalog-edge/internal/core/domain/catalog"
	"github.com/avatarctic/catalog-edge/internal/core/ports"
)

const (
	warmTrendingLimit = 8
	warmVideosLimit   = 16
)

type warmTask struct {
	name string
	run  func(ctx context.Context) (fromCache bool, err error)
}

type WarmupService struct {
	videos     ports.VideoService
	categories ports.CategoryService
	logger     *logrus.Logger
}

func NewWarmupService(videos ports.VideoService, categories ports.CategoryService, logger *logrus.Logger) ports.WarmupService {
	return &WarmupService{videos: videos, categories: categories, logger: logger}
}

// Preload fetches what the landing page needs: the category list and trending videos.
func (s *WarmupService) Preload(ctx context.Context) *ports.WarmupReport {
	return s.run(ctx, "preload", s.categoriesTask(), s.trendingTask())
}

// Warm additionally loads the first page of the public video listing.
func (s *WarmupService) Warm(ctx context.Context) *ports.WarmupReport {
	return s.run(ctx, "warm", s.categoriesTask(), s.trendingTask(), s.firstPageTask())
}

func (s *WarmupService) categoriesTask() warmTask {
	return warmTask{name: "categories", run: func(ctx context.Context) (bool, error) {
		res, err := s.categories.ListCategories(ctx)
		if err != nil {
			return false, err
		}
		return res.FromCache, nil
	}}
}

func (s *WarmupService) trendingTask() warmTask {
	return warmTask{name: "trending", run: func(ctx context.Context) (bool, error) {
		res, err := s.videos.GetTrending(ctx, warmTrendingLimit)
		if err != nil {
			return false, err
		}
		return res.FromCache, nil
	}}
}

func (s *WarmupService) firstPageTask() warmTask {
	return warmTask{name: "videos", run: func(ctx context.Context) (bool, error) {
		res, err := s.videos.ListVideos(ctx, catalog.ListVideosParams{Page: 1, Limit: warmVideosLimit})
		if err != nil {
			return false, err
		}
		return res.FromCache, nil
	}}
}

// run starts every task concurrently and waits for all of them. A task failure is
// recorded in its own outcome and never cancels or fails its siblings.
func (s *WarmupService) run(ctx context.Context, kind string, tasks ...warmTask) *ports.WarmupReport {
	report := &ports.WarmupReport{
		RunID:    uuid.NewString(),
		Outcomes: make([]ports.WarmupOutcome, len(tasks)),
	}

	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			start := time.Now()
			fromCache, err := task.run(ctx)
			out := ports.WarmupOutcome{Task: task.name, FromCache: fromCache, Duration: time.Since(start)}
			if err != nil {
				out.Error = err.Error()
			}
			report.Outcomes[i] = out
			warmupTasks.WithLabelValues(task.name, outcome(err)).Inc()
			return nil
		})
	}
	_ = g.Wait()

	if s.logger != nil {
		fields := logrus.Fields{"run_id": report.RunID, "kind": kind, "tasks": len(tasks), "failed": report.Failed()}
		if report.Failed() > 0 {
			for _, o := range report.Outcomes {
				if o.Error != "" {
					s.logger.WithFields(logrus.Fields{"run_id": report.RunID, "task": o.Task}).Warn("cache warm-up task failed: " + o.Error)
				}
			}
			s.logger.WithFields(fields).Warn("cache warm-up finished with failures")
		} else {
			s.logger.WithFields(fields).Info("cache warm-up finished")
		}
	}
	return report
}
