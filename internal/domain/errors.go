package domain

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrRecordNotFound     = errors.New("record not found")
	ErrQueueEntryNotFound = errors.New("queue entry not found")
	ErrTransient          = errors.New("store temporarily unavailable")
)
