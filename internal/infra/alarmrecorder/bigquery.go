//go:build gcloud

package alarmrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-visit-reminder/internal/config"
	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt  time.Time `bigquery:"recorded_at"`
	OccurredAt  time.Time `bigquery:"occurred_at"`
	Event       string    `bigquery:"event"`
	TriggerType string    `bigquery:"trigger_type"`
	CallerID    int64     `bigquery:"caller_id"`
	ReminderID  int64     `bigquery:"reminder_id"`
	LagMs       int64     `bigquery:"lag_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *config.AlarmEventsConfig) (domain.AlarmEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "alarm event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, alarm event recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, alarm event recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "alarm event recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordAlarmEvents(ctx context.Context, records []domain.AlarmEventRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:  now,
			OccurredAt:  record.OccurredAt,
			Event:       string(record.Event),
			TriggerType: record.TriggerType.String(),
			CallerID:    int64(record.CallerID),
			ReminderID:  int64(record.ReminderID),
			LagMs:       record.Lag.Milliseconds(),
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert alarm events to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
