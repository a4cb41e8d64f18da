//go:build !gcloud

package alarmrecorder

import (
	"context"
	"log/slog"
	"strconv"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-visit-reminder/internal/config"
	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

const alarmEventMeasurement = "alarm_event"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *config.AlarmEventsConfig) (domain.AlarmEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "alarm event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, alarm event recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "alarm event recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordAlarmEvents(ctx context.Context, records []domain.AlarmEventRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, newAlarmEventPoint(record))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write alarm events to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func newAlarmEventPoint(record domain.AlarmEventRecord) *write.Point {
	return influxdb2.NewPoint(
		alarmEventMeasurement,
		map[string]string{
			"event":        string(record.Event),
			"trigger_type": record.TriggerType.String(),
			"caller_id":    strconv.FormatUint(uint64(record.CallerID), 10),
		},
		map[string]any{
			"reminder_id": int64(record.ReminderID),
			"lag_ms":      record.Lag.Milliseconds(),
		},
		record.OccurredAt,
	)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
