package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/internal/utils"
	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Loop repeats passes forever. After every pass it waits until the next
// activation time of its schedule.
type Loop struct {
	runner   PassRunner
	schedule cron.Schedule
	waiter   Waiter
	now      func() time.Time

	logger *logger.Logger
}

// NewLoop returns a [Loop] running runner on schedule and waiting with
// waiter between passes.
func NewLoop(runner PassRunner, schedule cron.Schedule, waiter Waiter, logger *logger.Logger) *Loop {
	return &Loop{
		runner:   runner,
		schedule: schedule,
		waiter:   waiter,
		now:      time.Now,
		logger:   logger,
	}
}

// Run blocks until ctx is done or a pass fails. It returns ctx.Err() on
// cancellation.
func (l *Loop) Run(ctx context.Context) error {
	for {
		passID := utils.NewPassID()
		log := l.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str(logger.PassField, passID)
		})

		log.Info().Msg("pass started")
		report, err := l.runner.RunPass(log.WithContext(ctx))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			return fmt.Errorf("pass %s: %w", passID, err)
		}

		log.Info().
			Int("shards", report.Shards).
			Int("accounts", report.Accounts).
			Int("succeeded", report.Succeeded).
			Int("failed", report.Failed).
			Int("timed_out", report.TimedOut).
			Dur("duration", report.Duration).
			Msg("pass finished")

		next := l.schedule.Next(l.now())
		log.Info().
			Time("next_pass_at", next).
			Msgf("next pass %s", humanize.Time(next))

		if err = l.waiter.Wait(ctx, next); err != nil {
			return err
		}
	}
}

// TimerWaiter waits with a plain timer.
type TimerWaiter struct{}

// Wait implements [Waiter].
func (TimerWaiter) Wait(ctx context.Context, until time.Time) error {
	return sleep(ctx, time.Until(until))
}
