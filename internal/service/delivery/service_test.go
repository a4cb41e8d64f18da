package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

func createTestService(queue domain.QueueRepository, reminders domain.ReminderRepository, recorder domain.AlarmEventRecorder) *Service {
	svc := NewService(queue, reminders, recorder, nil, domain.DefaultAdvanceOffset)
	svc.deactivateBackoff = time.Millisecond
	return svc
}

func queueEntry(trigger domain.TriggerType) *domain.QueueEntry {
	return &domain.QueueEntry{
		QueueID:           "q-1",
		CallerID:          42,
		ReminderID:        7,
		TriggerType:       trigger,
		ScheduledDatetime: time.Date(2030, 1, 15, 14, 0, 0, 0, time.UTC),
	}
}

func TestFetchQueue(t *testing.T) {
	tests := []struct {
		name        string
		entries     []domain.QueueEntry
		repoErr     error
		expectedLen int
		expectedErr error
	}{
		{
			name:        "returns entries in queue order",
			entries:     []domain.QueueEntry{*queueEntry(domain.TriggerAdvance), *queueEntry(domain.TriggerExact)},
			expectedLen: 2,
		},
		{
			name:        "empty queue",
			entries:     []domain.QueueEntry{},
			expectedLen: 0,
		},
		{
			name:        "store failure",
			repoErr:     domain.ErrTransient,
			expectedErr: domain.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queue := domain.NewMockQueueRepository(ctrl)
			queue.EXPECT().ListQueue(gomock.Any(), uint(42)).Return(tt.entries, tt.repoErr)

			svc := createTestService(queue, nil, nil)

			entries, err := svc.FetchQueue(context.Background(), 42)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
			}
			if len(entries) != tt.expectedLen {
				t.Errorf("expected %d entries, got %d", tt.expectedLen, len(entries))
			}
		})
	}
}

func TestDismissSuccess(t *testing.T) {
	tests := []struct {
		name            string
		trigger         domain.TriggerType
		setupReminders  func(r *domain.MockReminderRepository)
		wantDeactivated bool
	}{
		{
			name:    "exact dismissal deactivates reminder",
			trigger: domain.TriggerExact,
			setupReminders: func(r *domain.MockReminderRepository) {
				r.EXPECT().DeactivateReminder(gomock.Any(), uint(7)).Return(nil)
			},
			wantDeactivated: true,
		},
		{
			name:            "advance dismissal keeps reminder active",
			trigger:         domain.TriggerAdvance,
			setupReminders:  func(r *domain.MockReminderRepository) {},
			wantDeactivated: false,
		},
		{
			name:    "exact dismissal retries transient failures",
			trigger: domain.TriggerExact,
			setupReminders: func(r *domain.MockReminderRepository) {
				gomock.InOrder(
					r.EXPECT().DeactivateReminder(gomock.Any(), uint(7)).Return(domain.ErrTransient),
					r.EXPECT().DeactivateReminder(gomock.Any(), uint(7)).Return(nil),
				)
			},
			wantDeactivated: true,
		},
		{
			name:    "exact dismissal gives up after retries",
			trigger: domain.TriggerExact,
			setupReminders: func(r *domain.MockReminderRepository) {
				r.EXPECT().DeactivateReminder(gomock.Any(), uint(7)).Return(domain.ErrTransient).Times(deactivateMaxRetries)
			},
			wantDeactivated: false,
		},
		{
			name:    "missing reminder is not retried",
			trigger: domain.TriggerExact,
			setupReminders: func(r *domain.MockReminderRepository) {
				r.EXPECT().DeactivateReminder(gomock.Any(), uint(7)).Return(domain.ErrReminderNotFound).Times(1)
			},
			wantDeactivated: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queue := domain.NewMockQueueRepository(ctrl)
			reminders := domain.NewMockReminderRepository(ctrl)
			recorder := domain.NewMockAlarmEventRecorder(ctrl)

			queue.EXPECT().Remove(gomock.Any(), uint(42), "q-1").Return(queueEntry(tt.trigger), nil)
			tt.setupReminders(reminders)
			recorder.EXPECT().RecordAlarmEvents(gomock.Any(), gomock.Len(1)).Return(nil)

			svc := createTestService(queue, reminders, recorder)

			result, err := svc.Dismiss(context.Background(), 42, "q-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Entry.TriggerType != tt.trigger {
				t.Errorf("expected trigger %s, got %s", tt.trigger, result.Entry.TriggerType)
			}
			if result.Deactivated != tt.wantDeactivated {
				t.Errorf("expected deactivated %v, got %v", tt.wantDeactivated, result.Deactivated)
			}
		})
	}
}

func TestDismissError(t *testing.T) {
	tests := []struct {
		name        string
		removeErr   error
		expectedErr error
	}{
		{
			name:        "unknown or already dismissed entry",
			removeErr:   domain.ErrQueueEntryNotFound,
			expectedErr: domain.ErrQueueEntryNotFound,
		},
		{
			name:        "store failure",
			removeErr:   domain.ErrTransient,
			expectedErr: domain.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queue := domain.NewMockQueueRepository(ctrl)
			reminders := domain.NewMockReminderRepository(ctrl)

			queue.EXPECT().Remove(gomock.Any(), uint(42), "q-1").Return(nil, tt.removeErr)

			svc := createTestService(queue, reminders, nil)

			_, err := svc.Dismiss(context.Background(), 42, "q-1")
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestDismissDeactivatesAfterClientCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := domain.NewMockQueueRepository(ctrl)
	reminders := domain.NewMockReminderRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	queue.EXPECT().Remove(gomock.Any(), uint(42), "q-1").DoAndReturn(
		func(context.Context, uint, string) (*domain.QueueEntry, error) {
			// The client goes away right after the entry is removed.
			cancel()
			return queueEntry(domain.TriggerExact), nil
		},
	)
	gomock.InOrder(
		reminders.EXPECT().DeactivateReminder(gomock.Any(), uint(7)).Return(domain.ErrTransient),
		reminders.EXPECT().DeactivateReminder(gomock.Any(), uint(7)).DoAndReturn(
			func(ctx context.Context, _ uint) error {
				return ctx.Err()
			},
		),
	)

	svc := createTestService(queue, reminders, nil)

	result, err := svc.Dismiss(ctx, 42, "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Deactivated {
		t.Error("expected reminder to be deactivated despite the cancelled request")
	}
}
