package handler

import (
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

type CreateReminderRequest struct {
	RecordID          uint   `json:"record_id"`
	ScheduledDatetime string `json:"scheduled_datetime"`
}

type CreateReminderResponse struct {
	ReminderID uint `json:"reminder_id"`
}

type ReminderItem struct {
	ReminderID        uint                  `json:"reminder_id"`
	RecordID          uint                  `json:"record_id"`
	ScheduledDatetime time.Time             `json:"scheduled_datetime"`
	Active            bool                  `json:"active"`
	CreatedAt         time.Time             `json:"created_at"`
	Record            domain.RecordSnapshot `json:"record"`
}

type CancelReminderResponse struct {
	OK bool `json:"ok"`
}

type ListRemindersResponse struct {
	Count     int            `json:"count"`
	Reminders []ReminderItem `json:"reminders"`
}

type CheckRemindersResponse struct {
	NewlyQueued int `json:"newly_queued"`
}

type QueueItem struct {
	QueueID           string                `json:"queue_id"`
	ReminderID        uint                  `json:"reminder_id"`
	TriggerType       domain.TriggerType    `json:"trigger_type"`
	ScheduledDatetime time.Time             `json:"scheduled_datetime"`
	CreatedAt         time.Time             `json:"created_at"`
	Record            domain.RecordSnapshot `json:"record"`
}

type QueueResponse struct {
	Count int         `json:"count"`
	Queue []QueueItem `json:"queue"`
}

type DismissResponse struct {
	OK bool `json:"ok"`
}

func newReminderItems(reminders []domain.Reminder) []ReminderItem {
	items := make([]ReminderItem, 0, len(reminders))
	for _, r := range reminders {
		items = append(items, ReminderItem{
			ReminderID:        r.ID,
			RecordID:          r.RecordID,
			ScheduledDatetime: r.ScheduledDatetime,
			Active:            r.Active,
			CreatedAt:         r.CreatedAt,
			Record:            r.Record,
		})
	}
	return items
}

func newQueueItems(entries []domain.QueueEntry) []QueueItem {
	items := make([]QueueItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, QueueItem{
			QueueID:           e.QueueID,
			ReminderID:        e.ReminderID,
			TriggerType:       e.TriggerType,
			ScheduledDatetime: e.ScheduledDatetime,
			CreatedAt:         e.CreatedAt,
			Record:            e.Record,
		})
	}
	return items
}
