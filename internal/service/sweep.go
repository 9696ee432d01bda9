package service

import (
	"context"
	"errors"

	"time"

	"github.com/howlil/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// RunSweepOnce applies the time-driven transitions due at now: completions
// of paid bookings whose window ended and expirations of unpaid payments
// past their deadline. Candidates are processed independently; one failure
// never aborts the batch, the booking is retried on the next run. Re-running
// with no elapsed time transitions nothing, the repository guards see the
// already-applied state.
func (s *BookingService) RunSweepOnce(ctx context.Context, now time.Time) (domain.SweepResult, error) {
	var res domain.SweepResult
	var errCompletions, errExpirations error

	due, err := s.bookingRepo.DueCompletions(ctx, now)
	if err != nil {
		errCompletions = err
		s.logger.Error("sweep: list due completions", logger.String("error", err.Error()))
	}
	for _, b := range due {
		completed, err := s.bookingRepo.Complete(ctx, b.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				// Another writer got there first; nothing to retry.
				continue
			}
			s.logger.Error("sweep: complete booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		res.Completed++
		bg := context.WithoutCancel(ctx)
		go s.notifyWithRefs(bg, completed, func(borrower *domain.Borrower, v *domain.Venue) {
			s.notifier.NotifyBookingCompleted(bg, borrower, v, completed)
		})
		s.publish(bg, "booking.completed", completed)
	}

	dueExp, err := s.bookingRepo.DueExpirations(ctx, now)
	if err != nil {
		errExpirations = err
		s.logger.Error("sweep: list due expirations", logger.String("error", err.Error()))
	}
	for _, b := range dueExp {
		expired, err := s.bookingRepo.ExpirePayment(ctx, b.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidTransition) {
				continue
			}
			s.logger.Error("sweep: expire payment",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		res.Expired++
		bg := context.WithoutCancel(ctx)
		go s.notifyWithRefs(bg, expired, func(borrower *domain.Borrower, v *domain.Venue) {
			s.notifier.NotifyBookingExpired(bg, borrower, v, expired)
		})
		s.publish(bg, "booking.expired", expired)
	}

	// Steady-state silence: no log line when nothing was due.
	if res.Completed > 0 || res.Expired > 0 {
		s.logger.Info("sweep applied transitions",
			logger.Int("completed", res.Completed),
			logger.Int("expired", res.Expired),
		)
	}

	return res, errors.Join(errCompletions, errExpirations)
}
