package config

import (
	"os"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	advanceOffsetEnv = "REMINDER_ADVANCE_OFFSET"
	localTimezoneEnv = "LOCAL_TIMEZONE"
	sweepScheduleEnv = "REMINDER_SWEEP_SCHEDULE"

	defaultAdvanceOffset = 17 * time.Hour
	defaultLocalTimezone = "Local"
)

type ReminderConfig struct {
	AdvanceOffset time.Duration
	// Location interprets zone-less scheduled datetimes submitted by the caller form.
	Location *time.Location
	// SweepSchedule enables server-side evaluation of every caller when non-empty.
	SweepSchedule string
}

func LoadReminderConfig() (*ReminderConfig, error) {
	advanceOffset := defaultAdvanceOffset
	if v := os.Getenv(advanceOffsetEnv); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			advanceOffset = parsed
		}
	}

	location, err := time.LoadLocation(getEnvOrDefault(localTimezoneEnv, defaultLocalTimezone))
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	schedule := os.Getenv(sweepScheduleEnv)
	if schedule != "" {
		if _, err := cron.ParseStandard(schedule); err != nil {
			return nil, ErrInvalidSweepSchedule
		}
	}

	return &ReminderConfig{
		AdvanceOffset: advanceOffset,
		Location:      location,
		SweepSchedule: schedule,
	}, nil
}

func (c *ReminderConfig) SweepEnabled() bool {
	return c.SweepSchedule != ""
}
