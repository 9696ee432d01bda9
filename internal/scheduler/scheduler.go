package scheduler

import (
	"context"
	"time"

	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sweeper interface {
	RunSweepOnce(ctx context.Context, now time.Time) (domain.SweepResult, error)
}

// Scheduler drives the time-based booking transitions on a fixed interval.
// It owns the wall clock; the sweep itself never reads one.
type Scheduler struct {
	bookingService sweeper
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService sweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	res, err := s.bookingService.RunSweepOnce(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("sweep run failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if res.Completed > 0 || res.Expired > 0 {
		s.logger.Info("sweep finished",
			logger.Int("completed", res.Completed),
			logger.Int("expired", res.Expired),
		)
	}
}
