package domain

import (
	"time"
)

type Reminder struct {
	ID                uint
	CallerID          uint
	RecordID          uint
	ScheduledDatetime time.Time
	Active            bool
	CreatedAt         time.Time
	Record            RecordSnapshot
}

// RecordSnapshot holds the contact display fields copied into an alarm.
type RecordSnapshot struct {
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Response    string    `json:"response"`
	Notes       string    `json:"notes"`
	Visit       string    `json:"visit"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DueAt returns the instant the given trigger becomes due.
func (r *Reminder) DueAt(trigger TriggerType, advanceOffset time.Duration) time.Time {
	if trigger == TriggerAdvance {
		return r.ScheduledDatetime.Add(-advanceOffset)
	}
	return r.ScheduledDatetime
}

// DueTriggers lists the triggers due at now, advance first.
// Each trigger is evaluated independently so a late evaluation yields both.
func (r *Reminder) DueTriggers(now time.Time, advanceOffset time.Duration) []TriggerType {
	due := make([]TriggerType, 0, 2)
	for _, t := range []TriggerType{TriggerAdvance, TriggerExact} {
		if !now.Before(r.DueAt(t, advanceOffset)) {
			due = append(due, t)
		}
	}
	return due
}
