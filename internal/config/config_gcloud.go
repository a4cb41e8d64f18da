//go:build gcloud

package config

import (
	"errors"
	"fmt"
)

// validatePlatform rejects settings that cannot work on Cloud Run.
func validatePlatform(cfg *Config) error {
	var errs []error

	if !cfg.Database.UsePostgres() {
		errs = append(errs, errors.New("DATABASE_URL is required: the sqlite file does not survive instance restarts"))
	}
	if cfg.AlarmEvents != nil && !cfg.AlarmEvents.Disabled && cfg.AlarmEvents.BigQueryProjectID == "" {
		errs = append(errs, errors.New("BIGQUERY_PROJECT_ID or GOOGLE_CLOUD_PROJECT is required unless ALARM_EVENTS_DISABLED=true"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("platform configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
