package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	alarmMeterName = "reminder.alarm"
)

type AlarmMetrics struct {
	remindersCreated   metric.Int64Counter
	alarmsQueued       metric.Int64Counter
	alarmsDismissed    metric.Int64Counter
	enqueueFailures    metric.Int64Counter
	evaluationDuration metric.Float64Histogram
}

func NewAlarmMetrics() (*AlarmMetrics, error) {
	meter := otel.Meter(alarmMeterName)

	remindersCreated, err := meter.Int64Counter(
		"reminders_created_total",
		metric.WithDescription("Total number of reminders created"),
		metric.WithUnit("{reminder}"),
	)
	if err != nil {
		return nil, err
	}

	alarmsQueued, err := meter.Int64Counter(
		"alarms_queued_total",
		metric.WithDescription("Total number of alarms added to caller queues"),
		metric.WithUnit("{alarm}"),
	)
	if err != nil {
		return nil, err
	}

	alarmsDismissed, err := meter.Int64Counter(
		"alarms_dismissed_total",
		metric.WithDescription("Total number of alarms dismissed by callers"),
		metric.WithUnit("{alarm}"),
	)
	if err != nil {
		return nil, err
	}

	enqueueFailures, err := meter.Int64Counter(
		"alarm_enqueue_failures_total",
		metric.WithDescription("Total number of due triggers that failed to enqueue"),
		metric.WithUnit("{alarm}"),
	)
	if err != nil {
		return nil, err
	}

	evaluationDuration, err := meter.Float64Histogram(
		"alarm_evaluation_duration_seconds",
		metric.WithDescription("Time spent evaluating the triggers of one caller"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
		),
	)
	if err != nil {
		return nil, err
	}

	return &AlarmMetrics{
		remindersCreated:   remindersCreated,
		alarmsQueued:       alarmsQueued,
		alarmsDismissed:    alarmsDismissed,
		enqueueFailures:    enqueueFailures,
		evaluationDuration: evaluationDuration,
	}, nil
}

func (m *AlarmMetrics) RecordReminderCreated(ctx context.Context) {
	m.remindersCreated.Add(ctx, 1)
}

func (m *AlarmMetrics) RecordAlarmQueued(ctx context.Context, triggerType string) {
	m.alarmsQueued.Add(ctx, 1, metric.WithAttributes(
		attribute.String("trigger_type", triggerType),
	))
}

func (m *AlarmMetrics) RecordAlarmDismissed(ctx context.Context, triggerType string) {
	m.alarmsDismissed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("trigger_type", triggerType),
	))
}

func (m *AlarmMetrics) RecordEnqueueFailure(ctx context.Context, triggerType string) {
	m.enqueueFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("trigger_type", triggerType),
	))
}

func (m *AlarmMetrics) RecordEvaluationDuration(ctx context.Context, duration time.Duration, outcome string) {
	m.evaluationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
