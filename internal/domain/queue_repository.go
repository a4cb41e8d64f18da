package domain

import "context"

//go:generate mockgen -source=queue_repository.go -destination=queue_repository_mock.go -package=domain

type QueueRepository interface {
	// Enqueue adds the entry unless its (reminder, trigger type) pair was ever queued before.
	// It reports whether the entry was added.
	Enqueue(ctx context.Context, entry *QueueEntry) (bool, error)
	ListQueue(ctx context.Context, callerID uint) ([]QueueEntry, error)
	// Remove deletes the entry and marks its pair acknowledged.
	// Only one of several concurrent calls for the same entry succeeds; the others get ErrQueueEntryNotFound.
	Remove(ctx context.Context, callerID uint, queueID string) (*QueueEntry, error)
	GetTriggerState(ctx context.Context, callerID, reminderID uint, trigger TriggerType) (TriggerState, error)
}
