package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/metrics"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/tracing"
)

const (
	deactivateMaxRetries     = 3
	defaultDeactivateBackoff = 100 * time.Millisecond
)

type DismissResult struct {
	Entry *domain.QueueEntry
	// Deactivated reports whether the parent reminder is now inactive because of this dismissal.
	Deactivated bool
}

type Service struct {
	queue             domain.QueueRepository
	reminders         domain.ReminderRepository
	recorder          domain.AlarmEventRecorder
	alarmMetrics      *metrics.AlarmMetrics
	advanceOffset     time.Duration
	deactivateBackoff time.Duration
	now               func() time.Time
}

func NewService(
	queue domain.QueueRepository,
	reminders domain.ReminderRepository,
	recorder domain.AlarmEventRecorder,
	alarmMetrics *metrics.AlarmMetrics,
	advanceOffset time.Duration,
) *Service {
	if advanceOffset <= 0 {
		advanceOffset = domain.DefaultAdvanceOffset
	}

	return &Service{
		queue:             queue,
		reminders:         reminders,
		recorder:          recorder,
		alarmMetrics:      alarmMetrics,
		advanceOffset:     advanceOffset,
		deactivateBackoff: defaultDeactivateBackoff,
		now:               time.Now,
	}
}

// FetchQueue returns the caller's undismissed alarms, oldest first.
func (s *Service) FetchQueue(ctx context.Context, callerID uint) ([]domain.QueueEntry, error) {
	entries, err := s.queue.ListQueue(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}
	return entries, nil
}

// Dismiss acknowledges one queued alarm. Dismissing the exact-time alarm retires its reminder.
func (s *Service) Dismiss(ctx context.Context, callerID uint, queueID string) (*DismissResult, error) {
	ctx, span := tracing.StartDismissSpan(ctx, callerID, queueID)
	defer span.End()

	entry, err := s.queue.Remove(ctx, callerID, queueID)
	if err != nil {
		if !errors.Is(err, domain.ErrQueueEntryNotFound) {
			slog.ErrorContext(ctx, "failed to dismiss alarm",
				slog.Uint64("caller_id", uint64(callerID)),
				slog.String("queue_id", queueID),
				slog.String("error", err.Error()),
			)
		}
		tracing.RecordDismissResult(span, "", 0, false, err)
		return nil, err
	}

	result := &DismissResult{Entry: entry}

	if entry.TriggerType.IsExact() {
		result.Deactivated = s.deactivate(ctx, entry.ReminderID)
	}

	if s.alarmMetrics != nil {
		s.alarmMetrics.RecordAlarmDismissed(ctx, entry.TriggerType.String())
	}
	s.recordDismissed(ctx, entry)

	slog.InfoContext(ctx, "alarm dismissed",
		slog.Uint64("caller_id", uint64(callerID)),
		slog.String("queue_id", queueID),
		slog.Uint64("reminder_id", uint64(entry.ReminderID)),
		slog.String("trigger_type", entry.TriggerType.String()),
		slog.Bool("reminder_deactivated", result.Deactivated),
	)

	tracing.RecordDismissResult(span, entry.TriggerType.String(), entry.ReminderID, result.Deactivated, nil)
	return result, nil
}

// deactivate reports whether the reminder ended up inactive. The dismissal itself already
// succeeded, so failures are logged rather than returned; the next evaluation retires the
// reminder from its acknowledged exact trigger.
func (s *Service) deactivate(ctx context.Context, reminderID uint) bool {
	// The entry is gone, so a client hanging up must not abort the deactivation.
	ctx = context.WithoutCancel(ctx)

	err := s.deactivateWithRetry(ctx, reminderID)
	switch {
	case err == nil:
		return true
	case errors.Is(err, domain.ErrReminderNotFound):
		slog.WarnContext(ctx, "reminder of dismissed alarm no longer exists",
			slog.Uint64("reminder_id", uint64(reminderID)),
		)
		return false
	default:
		slog.ErrorContext(ctx, "failed to deactivate reminder after retries",
			slog.Uint64("reminder_id", uint64(reminderID)),
			slog.String("error", err.Error()),
		)
		return false
	}
}

func (s *Service) deactivateWithRetry(ctx context.Context, reminderID uint) error {
	var lastErr error
	for attempt := 0; attempt < deactivateMaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * s.deactivateBackoff
			slog.DebugContext(ctx, "retrying reminder deactivation",
				slog.Uint64("reminder_id", uint64(reminderID)),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := s.reminders.DeactivateReminder(ctx, reminderID)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrReminderNotFound) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("failed after %d attempts: %w", deactivateMaxRetries, lastErr)
}

func (s *Service) recordDismissed(ctx context.Context, entry *domain.QueueEntry) {
	if s.recorder == nil {
		return
	}

	now := s.now()
	reminder := domain.Reminder{ScheduledDatetime: entry.ScheduledDatetime}
	record := domain.AlarmEventRecord{
		CallerID:    entry.CallerID,
		ReminderID:  entry.ReminderID,
		TriggerType: entry.TriggerType,
		Event:       domain.AlarmEventDismissed,
		OccurredAt:  now,
		Lag:         now.Sub(reminder.DueAt(entry.TriggerType, s.advanceOffset)),
	}

	if err := s.recorder.RecordAlarmEvents(ctx, []domain.AlarmEventRecord{record}); err != nil {
		slog.WarnContext(ctx, "failed to record alarm event",
			slog.String("error", err.Error()),
		)
	}
}
