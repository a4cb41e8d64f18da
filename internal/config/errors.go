package config

import "errors"

var (
	ErrRedisAddrMissing     = errors.New("REDIS_ADDR or REDIS_URL is required")
	ErrInvalidRedisDB       = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidRedisURL      = errors.New("REDIS_URL is not a valid redis url")
	ErrJWTSecretMissing     = errors.New("JWT_SECRET is required")
	ErrInvalidTimezone      = errors.New("LOCAL_TIMEZONE is not a known time zone")
	ErrInvalidSweepSchedule = errors.New("REMINDER_SWEEP_SCHEDULE is not a valid cron spec")
	ErrServerURLMissing     = errors.New("ALARM_SERVER_URL is required")
	ErrTokenMissing         = errors.New("ALARM_TOKEN is required")
)
