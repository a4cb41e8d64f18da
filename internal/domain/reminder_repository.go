package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=reminder_repository.go -destination=reminder_repository_mock.go -package=domain

type ReminderRepository interface {
	// CreateReminder stores an active reminder after checking that the record is assigned to the caller.
	CreateReminder(ctx context.Context, callerID, recordID uint, scheduled time.Time) (*Reminder, error)
	DeactivateReminder(ctx context.Context, reminderID uint) error
	GetReminder(ctx context.Context, reminderID uint) (*Reminder, error)
	ListActiveReminders(ctx context.Context, callerID uint) ([]Reminder, error)
	ListCallersWithActiveReminders(ctx context.Context) ([]uint, error)
	Ping(ctx context.Context) error
}
