package logging

import (
	"context"

	"github.com/google/uuid"
)

// Module names the component a log line came from.
type Module string

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

const RequestIDHeader = "x-request-id"

type contextKey int

const (
	moduleKey contextKey = iota
	requestIDKey
)

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) (Module, bool) {
	m, ok := ctx.Value(moduleKey).(Module)
	return m, ok && m != ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func NewRequestID() string {
	return uuid.NewString()
}
