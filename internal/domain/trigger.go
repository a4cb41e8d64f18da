package domain

import (
	"fmt"
	"time"
)

// TriggerType identifies which of the two fixed offsets produced an alarm.
type TriggerType string

const (
	TriggerAdvance TriggerType = "advance"
	TriggerExact   TriggerType = "exact"
)

// DefaultAdvanceOffset is how long before the scheduled visit the advance alarm fires.
const DefaultAdvanceOffset = 17 * time.Hour

func (t TriggerType) String() string {
	return string(t)
}

func (t TriggerType) IsExact() bool {
	return t == TriggerExact
}

func (t TriggerType) Valid() bool {
	return t == TriggerAdvance || t == TriggerExact
}

func ParseTriggerType(s string) (TriggerType, error) {
	t := TriggerType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown trigger type %q", ErrValidation, s)
	}
	return t, nil
}

// TriggerState tracks a (reminder, trigger type) pair. An absent state means not yet due.
type TriggerState string

const (
	TriggerStateNotDue       TriggerState = ""
	TriggerStateQueued       TriggerState = "queued"
	TriggerStateAcknowledged TriggerState = "acknowledged"
)
