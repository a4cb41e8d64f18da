package alarmrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.AlarmEventRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordAlarmEvents(_ context.Context, _ []domain.AlarmEventRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
