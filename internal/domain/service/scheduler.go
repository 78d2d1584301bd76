package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/diegoclair/game-club-rotation/internal/domain"
	"github.com/diegoclair/game-club-rotation/internal/domain/contract"
	"github.com/getsentry/sentry-go"
	"github.com/robfig/cron/v3"
)

// scheduler is the periodic trigger of the queue. It runs one tick on start
// and then one per interval. A failed tick is logged and reported; the next
// one runs on schedule.
type scheduler struct {
	queue    contract.QueueService
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func newScheduler(queue contract.QueueService, interval time.Duration, logger *slog.Logger) *scheduler {
	if interval <= 0 {
		interval = domain.DefaultQueueInterval
	}

	return &scheduler{
		queue:    queue,
		interval: interval,
		logger:   logger,
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	cronLogger := cron.VerbosePrintfLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelDebug))

	// Both the first tick and the scheduled ones go through the same chain,
	// so a slow tick makes the next one skip instead of piling up.
	job := cron.NewChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	).Then(cron.FuncJob(func() { s.runTick(ctx) }))

	c := cron.New(cron.WithLogger(cronLogger))
	c.Schedule(cron.Every(s.interval), job)
	c.Start()

	s.cron = c
	s.cancel = cancel
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		job.Run()
	}()

	s.logger.Info("scheduler started", "event", "scheduler", "interval", s.interval.String())
}

// Stop cancels the running tick, if any, and waits for it to return.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.logger.Info("scheduler stopping", "event", "scheduler")
	s.cancel()
	<-s.cron.Stop().Done()
	s.wg.Wait()
	s.running = false
}

func (s *scheduler) runTick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()
	if err := s.queue.UpdateQueue(ctx); err != nil {
		s.logger.Error("queue tick failed", "event", "scheduler", "error", err)
		sentry.CaptureException(err)
		return
	}

	s.logger.Debug("queue tick done", "event", "scheduler", "duration", time.Since(start).String())
}
