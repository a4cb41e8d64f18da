package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=alarm_event_recorder.go -destination=alarm_event_recorder_mock.go -package=domain

type AlarmEventKind string

const (
	AlarmEventQueued    AlarmEventKind = "queued"
	AlarmEventDismissed AlarmEventKind = "dismissed"
)

type AlarmEventRecord struct {
	CallerID    uint
	ReminderID  uint
	TriggerType TriggerType
	Event       AlarmEventKind
	OccurredAt  time.Time
	// Lag is OccurredAt minus the instant the trigger became due.
	Lag time.Duration
}

type AlarmEventRecorder interface {
	RecordAlarmEvents(ctx context.Context, records []AlarmEventRecord) error
	Close() error
}
