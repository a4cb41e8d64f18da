package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/trigger"
)

type Evaluator interface {
	Evaluate(ctx context.Context, callerID uint, now time.Time) (*trigger.Result, error)
}

type Result struct {
	Callers     int
	NewlyQueued int
	Failed      int
	Retired     int
}

// Sweeper evaluates every caller with active reminders on a cron schedule, so alarms are
// queued even while no client is polling.
type Sweeper struct {
	reminders domain.ReminderRepository
	evaluator Evaluator
	schedule  string
	cron      *cron.Cron
	now       func() time.Time
}

func NewSweeper(reminders domain.ReminderRepository, evaluator Evaluator, schedule string, location *time.Location) *Sweeper {
	if location == nil {
		location = time.Local
	}

	return &Sweeper{
		reminders: reminders,
		evaluator: evaluator,
		schedule:  schedule,
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		now: time.Now,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()

	slog.InfoContext(ctx, "reminder sweep started",
		slog.String("schedule", s.schedule),
	)
	return nil
}

// Stop waits for a running sweep to finish or for ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		slog.InfoContext(ctx, "reminder sweep stopped")
	case <-ctx.Done():
		slog.WarnContext(ctx, "reminder sweep did not stop in time")
	}
}

func (s *Sweeper) RunOnce(ctx context.Context) Result {
	ctx, span := tracing.StartSweepSpan(ctx)
	defer span.End()

	var result Result

	callers, err := s.reminders.ListCallersWithActiveReminders(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list callers for sweep",
			slog.String("error", err.Error()),
		)
		tracing.RecordResult(span, err)
		return result
	}

	now := s.now()
	for _, callerID := range callers {
		if ctx.Err() != nil {
			break
		}

		evaluated, err := s.evaluator.Evaluate(ctx, callerID, now)
		if err != nil {
			slog.WarnContext(ctx, "sweep evaluation failed",
				slog.Uint64("caller_id", uint64(callerID)),
				slog.String("error", err.Error()),
			)
			result.Failed++
			continue
		}

		result.Callers++
		result.NewlyQueued += evaluated.NewlyQueued
		result.Failed += evaluated.Failed
		result.Retired += evaluated.Retired
	}

	if result.NewlyQueued > 0 || result.Failed > 0 || result.Retired > 0 {
		slog.InfoContext(ctx, "reminder sweep completed",
			slog.Int("callers", result.Callers),
			slog.Int("newly_queued", result.NewlyQueued),
			slog.Int("failed", result.Failed),
			slog.Int("retired", result.Retired),
		)
	}

	tracing.RecordResult(span, nil)
	return result
}
