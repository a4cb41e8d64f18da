//go:build !gcloud

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestHandlerAddsContextAttrs(t *testing.T) {
	tests := []struct {
		name           string
		ctx            func() context.Context
		expectedModule string
		expectedReqID  string
	}{
		{
			name:           "default module without request id",
			ctx:            context.Background,
			expectedModule: "visit-reminder",
		},
		{
			name: "module and request id from context",
			ctx: func() context.Context {
				ctx := WithModule(context.Background(), Module("poller"))
				return WithRequestID(ctx, "req-1")
			},
			expectedModule: "poller",
			expectedReqID:  "req-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewHandler(HandlerConfig{
				Service:       ServiceInfo{Name: "reminder", Version: "test"},
				Environment:   EnvDev,
				DefaultModule: Module("visit-reminder"),
				Level:         slog.LevelInfo,
				Writer:        &buf,
			}))

			logger.InfoContext(tt.ctx(), "hello", slog.Int("n", 1))

			var entry map[string]any
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log line %q: %v", buf.String(), err)
			}

			if entry["service"] != "reminder" {
				t.Errorf("expected service reminder, got %v", entry["service"])
			}
			if entry["env"] != "dev" {
				t.Errorf("expected env dev, got %v", entry["env"])
			}
			if entry["module"] != tt.expectedModule {
				t.Errorf("expected module %q, got %v", tt.expectedModule, entry["module"])
			}

			reqID, hasReqID := entry["request_id"]
			if tt.expectedReqID == "" && hasReqID {
				t.Errorf("expected no request_id, got %v", reqID)
			}
			if tt.expectedReqID != "" && reqID != tt.expectedReqID {
				t.Errorf("expected request_id %q, got %v", tt.expectedReqID, reqID)
			}
		})
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(HandlerConfig{
		Level:  slog.LevelWarn,
		Writer: &buf,
	}))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info log to be dropped, got %q", buf.String())
	}
}
