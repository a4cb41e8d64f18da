package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const alarmTracerName = "github.com/KasumiMercury/primind-visit-reminder/internal/service"

func AlarmTracer() trace.Tracer {
	return otel.Tracer(alarmTracerName)
}

func StartEvaluationSpan(ctx context.Context, callerID uint, now time.Time) (context.Context, trace.Span) {
	return AlarmTracer().Start(ctx, "alarm.evaluate",
		trace.WithAttributes(
			attribute.Int64("caller_id", int64(callerID)),
			attribute.String("evaluation.now", now.UTC().Format(time.RFC3339)),
		),
	)
}

func StartDismissSpan(ctx context.Context, callerID uint, queueID string) (context.Context, trace.Span) {
	return AlarmTracer().Start(ctx, "alarm.dismiss",
		trace.WithAttributes(
			attribute.Int64("caller_id", int64(callerID)),
			attribute.String("queue_id", queueID),
		),
	)
}

func StartSweepSpan(ctx context.Context) (context.Context, trace.Span) {
	return AlarmTracer().Start(ctx, "alarm.sweep")
}

func RecordEvaluationResult(span trace.Span, dueCount, queuedCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("evaluation.due_count", dueCount),
		attribute.Int("evaluation.queued_count", queuedCount),
		attribute.Int("evaluation.failed_count", failedCount),
	)
	RecordResult(span, err)
}

func RecordDismissResult(span trace.Span, triggerType string, reminderID uint, deactivated bool, err error) {
	if triggerType != "" {
		span.SetAttributes(
			attribute.String("trigger_type", triggerType),
			attribute.Int64("reminder_id", int64(reminderID)),
			attribute.Bool("reminder.deactivated", deactivated),
		)
	}
	RecordResult(span, err)
}

func RecordResult(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
