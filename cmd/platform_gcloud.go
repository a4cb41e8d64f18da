//go:build gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-visit-reminder/internal/observability"
	"github.com/KasumiMercury/primind-visit-reminder/internal/observability/logging"
)

const serviceModule = "visit-reminder"

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "visit-reminder"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  0.1,
		DefaultModule: logging.Module(serviceModule),
	})
}
