package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/metrics"
)

// Zone-less layouts sent by the caller form, read in the configured location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

type Service struct {
	repo         domain.ReminderRepository
	location     *time.Location
	alarmMetrics *metrics.AlarmMetrics
	now          func() time.Time
}

func NewService(
	repo domain.ReminderRepository,
	location *time.Location,
	alarmMetrics *metrics.AlarmMetrics,
) *Service {
	if location == nil {
		location = time.Local
	}

	return &Service{
		repo:         repo,
		location:     location,
		alarmMetrics: alarmMetrics,
		now:          time.Now,
	}
}

// ParseScheduledDatetime accepts RFC3339 or a zone-less local datetime.
func (s *Service) ParseScheduledDatetime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: scheduled_datetime is required", domain.ErrValidation)
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, s.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: invalid scheduled_datetime %q", domain.ErrValidation, raw)
}

func (s *Service) Create(ctx context.Context, callerID, recordID uint, scheduled time.Time) (*domain.Reminder, error) {
	if recordID == 0 {
		return nil, fmt.Errorf("%w: record_id is required", domain.ErrValidation)
	}
	if scheduled.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_datetime is required", domain.ErrValidation)
	}

	// The form has minute precision, so the current minute still counts as the future.
	if scheduled.Before(s.now().Truncate(time.Minute)) {
		return nil, fmt.Errorf("%w: scheduled_datetime is in the past", domain.ErrValidation)
	}

	reminder, err := s.repo.CreateReminder(ctx, callerID, recordID, scheduled)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		slog.ErrorContext(ctx, "failed to create reminder",
			slog.Uint64("caller_id", uint64(callerID)),
			slog.Uint64("record_id", uint64(recordID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if s.alarmMetrics != nil {
		s.alarmMetrics.RecordReminderCreated(ctx)
	}

	slog.InfoContext(ctx, "reminder created",
		slog.Uint64("reminder_id", uint64(reminder.ID)),
		slog.Uint64("caller_id", uint64(callerID)),
		slog.Uint64("record_id", uint64(recordID)),
		slog.Time("scheduled_datetime", reminder.ScheduledDatetime),
	)

	return reminder, nil
}

func (s *Service) ListActive(ctx context.Context, callerID uint) ([]domain.Reminder, error) {
	reminders, err := s.repo.ListActiveReminders(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// Cancel deactivates one of the caller's reminders. Reminders of other callers are reported as
// missing. Alarms already queued stay queued until dismissed.
func (s *Service) Cancel(ctx context.Context, callerID, reminderID uint) error {
	reminder, err := s.repo.GetReminder(ctx, reminderID)
	if err != nil {
		return err
	}
	if reminder.CallerID != callerID {
		return domain.ErrReminderNotFound
	}
	if !reminder.Active {
		return nil
	}

	if err := s.repo.DeactivateReminder(ctx, reminderID); err != nil {
		slog.ErrorContext(ctx, "failed to cancel reminder",
			slog.Uint64("caller_id", uint64(callerID)),
			slog.Uint64("reminder_id", uint64(reminderID)),
			slog.String("error", err.Error()),
		)
		return err
	}

	slog.InfoContext(ctx, "reminder cancelled",
		slog.Uint64("caller_id", uint64(callerID)),
		slog.Uint64("reminder_id", uint64(reminderID)),
	)
	return nil
}
