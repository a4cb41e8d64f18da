package trigger

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

type Result struct {
	// NewlyQueued counts entries added by this evaluation.
	NewlyQueued int
	// Due counts every due (reminder, trigger type) pair, queued earlier or not.
	Due    int
	Failed int
	// Retired counts reminders deactivated because their exact alarm was already acknowledged.
	Retired int
}

type Evaluator struct {
	reminders     domain.ReminderRepository
	queue         domain.QueueRepository
	recorder      domain.AlarmEventRecorder
	alarmMetrics  *metrics.AlarmMetrics
	advanceOffset time.Duration
}

func NewEvaluator(
	reminders domain.ReminderRepository,
	queue domain.QueueRepository,
	recorder domain.AlarmEventRecorder,
	alarmMetrics *metrics.AlarmMetrics,
	advanceOffset time.Duration,
) *Evaluator {
	if advanceOffset <= 0 {
		advanceOffset = domain.DefaultAdvanceOffset
	}

	return &Evaluator{
		reminders:     reminders,
		queue:         queue,
		recorder:      recorder,
		alarmMetrics:  alarmMetrics,
		advanceOffset: advanceOffset,
	}
}

// Evaluate queues every due trigger of the caller's active reminders that was never queued before.
// Firing a trigger never changes whether a reminder is active. A reminder whose exact alarm is
// already acknowledged is deactivated instead, completing a dismissal whose deactivation failed.
func (e *Evaluator) Evaluate(ctx context.Context, callerID uint, now time.Time) (*Result, error) {
	ctx, span := tracing.StartEvaluationSpan(ctx, callerID, now)
	defer span.End()

	start := time.Now()
	result := &Result{}

	reminders, err := e.reminders.ListActiveReminders(ctx, callerID)
	if err != nil {
		err = fmt.Errorf("failed to list active reminders: %w", err)
		tracing.RecordEvaluationResult(span, 0, 0, 0, err)
		e.recordDuration(ctx, start, "error")
		return nil, err
	}

	var events []domain.AlarmEventRecord

	for i := range reminders {
		reminder := &reminders[i]
		due := reminder.DueTriggers(now, e.advanceOffset)

		if e.retireAcknowledged(ctx, reminder, due) {
			result.Retired++
			continue
		}

		for _, trigger := range due {
			result.Due++

			queued, err := e.enqueue(ctx, reminder, trigger, now)
			if err != nil {
				slog.WarnContext(ctx, "failed to enqueue alarm",
					slog.Uint64("caller_id", uint64(callerID)),
					slog.Uint64("reminder_id", uint64(reminder.ID)),
					slog.String("trigger_type", trigger.String()),
					slog.String("error", err.Error()),
				)
				result.Failed++
				if e.alarmMetrics != nil {
					e.alarmMetrics.RecordEnqueueFailure(ctx, trigger.String())
				}
				continue
			}
			if !queued {
				continue
			}

			result.NewlyQueued++
			if e.alarmMetrics != nil {
				e.alarmMetrics.RecordAlarmQueued(ctx, trigger.String())
			}

			dueAt := reminder.DueAt(trigger, e.advanceOffset)
			events = append(events, domain.AlarmEventRecord{
				CallerID:    callerID,
				ReminderID:  reminder.ID,
				TriggerType: trigger,
				Event:       domain.AlarmEventQueued,
				OccurredAt:  now,
				Lag:         now.Sub(dueAt),
			})

			slog.InfoContext(ctx, "alarm queued",
				slog.Uint64("caller_id", uint64(callerID)),
				slog.Uint64("reminder_id", uint64(reminder.ID)),
				slog.String("trigger_type", trigger.String()),
				slog.Time("due_at", dueAt),
			)
		}
	}

	e.recordEvents(ctx, events)

	slog.DebugContext(ctx, "triggers evaluated",
		slog.Uint64("caller_id", uint64(callerID)),
		slog.Int("active_reminders", len(reminders)),
		slog.Int("due", result.Due),
		slog.Int("newly_queued", result.NewlyQueued),
		slog.Int("failed", result.Failed),
		slog.Int("retired", result.Retired),
	)

	tracing.RecordEvaluationResult(span, result.Due, result.NewlyQueued, result.Failed, nil)
	e.recordDuration(ctx, start, "success")

	return result, nil
}

// retireAcknowledged deactivates a reminder whose exact alarm was dismissed but which is still active.
// It reports whether the reminder is now inactive.
func (e *Evaluator) retireAcknowledged(ctx context.Context, reminder *domain.Reminder, due []domain.TriggerType) bool {
	if len(due) == 0 || !due[len(due)-1].IsExact() {
		return false
	}

	state, err := e.queue.GetTriggerState(ctx, reminder.CallerID, reminder.ID, domain.TriggerExact)
	if err != nil {
		slog.WarnContext(ctx, "failed to read exact trigger state",
			slog.Uint64("reminder_id", uint64(reminder.ID)),
			slog.String("error", err.Error()),
		)
		return false
	}
	if state != domain.TriggerStateAcknowledged {
		return false
	}

	if err := e.reminders.DeactivateReminder(ctx, reminder.ID); err != nil && !errors.Is(err, domain.ErrReminderNotFound) {
		slog.WarnContext(ctx, "failed to retire acknowledged reminder",
			slog.Uint64("reminder_id", uint64(reminder.ID)),
			slog.String("error", err.Error()),
		)
		return false
	}

	slog.InfoContext(ctx, "acknowledged reminder retired",
		slog.Uint64("caller_id", uint64(reminder.CallerID)),
		slog.Uint64("reminder_id", uint64(reminder.ID)),
	)
	return true
}

func (e *Evaluator) enqueue(ctx context.Context, reminder *domain.Reminder, trigger domain.TriggerType, now time.Time) (bool, error) {
	entry, err := domain.NewQueueEntry(reminder, trigger, now)
	if err != nil {
		return false, err
	}
	return e.queue.Enqueue(ctx, entry)
}

// recordEvents is best effort; analytics never fail an evaluation.
func (e *Evaluator) recordEvents(ctx context.Context, events []domain.AlarmEventRecord) {
	if e.recorder == nil || len(events) == 0 {
		return
	}

	if err := e.recorder.RecordAlarmEvents(ctx, events); err != nil {
		slog.WarnContext(ctx, "failed to record alarm events",
			slog.Int("record_count", len(events)),
			slog.String("error", err.Error()),
		)
	}
}

func (e *Evaluator) recordDuration(ctx context.Context, start time.Time, outcome string) {
	if e.alarmMetrics != nil {
		e.alarmMetrics.RecordEvaluationDuration(ctx, time.Since(start), outcome)
	}
}
