package trigger

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
	"github.com/KasumiMercury/primind-visit-reminder/internal/infra/database"
	"github.com/KasumiMercury/primind-visit-reminder/internal/service/delivery"
	"github.com/KasumiMercury/primind-visit-reminder/internal/testutil"
)

const lifecycleCallerID = 42

// flakyStore fails deactivation while failing is set.
type flakyStore struct {
	domain.ReminderRepository
	failing atomic.Bool
}

func (s *flakyStore) DeactivateReminder(ctx context.Context, reminderID uint) error {
	if s.failing.Load() {
		return domain.ErrTransient
	}
	return s.ReminderRepository.DeactivateReminder(ctx, reminderID)
}

func setupLifecycleStore(t *testing.T) *gorm.DB {
	t.Helper()

	db := testutil.SetupSQLiteDB(t)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	err := db.Exec(
		"INSERT INTO records (id, caller_id, phone_number, name, visit, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		1, lifecycleCallerID, "9800000001", "Asha", "pending", time.Now().UTC(),
	).Error
	if err != nil {
		t.Fatalf("failed to seed record: %v", err)
	}
	return db
}

func queuedTypes(t *testing.T, queue domain.QueueRepository) []domain.TriggerType {
	t.Helper()

	entries, err := queue.ListQueue(context.Background(), lifecycleCallerID)
	if err != nil {
		t.Fatalf("failed to list queue: %v", err)
	}
	types := make([]domain.TriggerType, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.TriggerType)
	}
	return types
}

func dismissFirst(t *testing.T, svc *delivery.Service, queue domain.QueueRepository) *delivery.DismissResult {
	t.Helper()

	ctx := context.Background()
	entries, err := queue.ListQueue(ctx, lifecycleCallerID)
	if err != nil || len(entries) == 0 {
		t.Fatalf("expected a queued alarm, got %d entries (err %v)", len(entries), err)
	}

	result, err := svc.Dismiss(ctx, lifecycleCallerID, entries[0].QueueID)
	if err != nil {
		t.Fatalf("failed to dismiss: %v", err)
	}
	return result
}

func TestReminderLifecycle(t *testing.T) {
	ctx := context.Background()
	store := database.NewReminderRepository(setupLifecycleStore(t))
	queue := newMemoryQueue()

	evaluator := NewEvaluator(store, queue, nil, nil, domain.DefaultAdvanceOffset)
	deliveryService := delivery.NewService(queue, store, nil, nil, domain.DefaultAdvanceOffset)

	t0 := time.Date(2030, 1, 15, 8, 0, 0, 0, time.UTC)
	reminder, err := store.CreateReminder(ctx, lifecycleCallerID, 1, t0.Add(20*time.Hour))
	if err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	evaluate := func(now time.Time) *Result {
		t.Helper()
		result, err := evaluator.Evaluate(ctx, lifecycleCallerID, now)
		if err != nil {
			t.Fatalf("evaluate at %s: %v", now, err)
		}
		return result
	}

	if got := evaluate(t0).NewlyQueued; got != 0 {
		t.Fatalf("expected nothing queued at creation, got %d", got)
	}

	if got := evaluate(t0.Add(3*time.Hour + time.Minute)).NewlyQueued; got != 1 {
		t.Fatalf("expected advance queued after 3h01m, got %d", got)
	}

	advance := dismissFirst(t, deliveryService, queue)
	if advance.Entry.TriggerType != domain.TriggerAdvance || advance.Deactivated {
		t.Fatalf("expected advance dismissal to keep the reminder, got %+v", advance)
	}

	active, err := store.ListActiveReminders(ctx, lifecycleCallerID)
	if err != nil || len(active) != 1 {
		t.Fatalf("expected reminder still active after advance dismissal, got %d (err %v)", len(active), err)
	}

	if got := evaluate(t0.Add(3*time.Hour + 2*time.Minute)).NewlyQueued; got != 0 {
		t.Fatalf("expected dismissed advance not to be queued again, got %d", got)
	}

	if got := evaluate(t0.Add(20 * time.Hour)).NewlyQueued; got != 1 {
		t.Fatalf("expected exact queued at scheduled time, got %d", got)
	}
	if types := queuedTypes(t, queue); len(types) != 1 || types[0] != domain.TriggerExact {
		t.Fatalf("expected only the exact alarm queued, got %v", types)
	}

	exact := dismissFirst(t, deliveryService, queue)
	if exact.Entry.TriggerType != domain.TriggerExact || !exact.Deactivated {
		t.Fatalf("expected exact dismissal to deactivate the reminder, got %+v", exact)
	}

	stored, err := store.GetReminder(ctx, reminder.ID)
	if err != nil {
		t.Fatalf("failed to get reminder: %v", err)
	}
	if stored.Active {
		t.Error("expected reminder to be inactive after exact dismissal")
	}

	if got := evaluate(t0.Add(21 * time.Hour)).NewlyQueued; got != 0 {
		t.Errorf("expected nothing queued after retirement, got %d", got)
	}
	if types := queuedTypes(t, queue); len(types) != 0 {
		t.Errorf("expected empty queue, got %v", types)
	}
}

func TestReminderRetiredAfterFailedDeactivation(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{ReminderRepository: database.NewReminderRepository(setupLifecycleStore(t))}
	queue := newMemoryQueue()

	evaluator := NewEvaluator(store, queue, nil, nil, domain.DefaultAdvanceOffset)
	deliveryService := delivery.NewService(queue, store, nil, nil, domain.DefaultAdvanceOffset)

	scheduled := time.Date(2030, 1, 15, 8, 0, 0, 0, time.UTC)
	reminder, err := store.CreateReminder(ctx, lifecycleCallerID, 1, scheduled)
	if err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	result, err := evaluator.Evaluate(ctx, lifecycleCallerID, scheduled)
	if err != nil || result.NewlyQueued != 2 {
		t.Fatalf("expected both alarms queued, got %+v (err %v)", result, err)
	}

	dismissFirst(t, deliveryService, queue)

	store.failing.Store(true)
	exact := dismissFirst(t, deliveryService, queue)
	if exact.Deactivated {
		t.Fatal("expected deactivation to fail while the store is down")
	}

	stored, err := store.GetReminder(ctx, reminder.ID)
	if err != nil || !stored.Active {
		t.Fatalf("expected reminder still active while the store is down (err %v)", err)
	}

	store.failing.Store(false)

	result, err = evaluator.Evaluate(ctx, lifecycleCallerID, scheduled.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Retired != 1 || result.NewlyQueued != 0 {
		t.Errorf("expected the reminder to be retired without requeueing, got %+v", result)
	}

	active, err := store.ListActiveReminders(ctx, lifecycleCallerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected no active reminders, got %d", len(active))
	}

	callers, err := store.ListCallersWithActiveReminders(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(callers) != 0 {
		t.Errorf("expected no callers with active reminders, got %v", callers)
	}
}
