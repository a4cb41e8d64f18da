//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-visit-reminder/internal/observability"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/logging"
)

const serviceModule = "visit-reminder"

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "visit-reminder"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    serviceName,
			Version: Version,
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: logging.Module(serviceModule),
	})
}
