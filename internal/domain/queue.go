package domain

import (
	"time"

	"github.com/google/uuid"
)

type QueueEntry struct {
	QueueID           string         `json:"queue_id"`
	CallerID          uint           `json:"caller_id"`
	ReminderID        uint           `json:"reminder_id"`
	TriggerType       TriggerType    `json:"trigger_type"`
	ScheduledDatetime time.Time      `json:"scheduled_datetime"`
	Record            RecordSnapshot `json:"record"`
	CreatedAt         time.Time      `json:"created_at"`
}

func NewQueueEntry(reminder *Reminder, trigger TriggerType, now time.Time) (*QueueEntry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	return &QueueEntry{
		QueueID:           id.String(),
		CallerID:          reminder.CallerID,
		ReminderID:        reminder.ID,
		TriggerType:       trigger,
		ScheduledDatetime: reminder.ScheduledDatetime,
		Record:            reminder.Record,
		CreatedAt:         now.UTC(),
	}, nil
}
