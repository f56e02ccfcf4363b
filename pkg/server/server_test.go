package server

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BOKA26/lovotech-nexus/pkg/config"
	handlers "github.com/BOKA26/lovotech-nexus/pkg/handlers/http"
	"github.com/BOKA26/lovotech-nexus/pkg/middleware"
)

func newTestAPIServer(metricsEnabled bool) *APIServer {
	cfg := &config.Config{}
	cfg.Metrics.Enabled = metricsEnabled

	return NewAPIServer(APIServerDI{
		MiddlewareTransport: middleware.Transport{CORSMiddleware: middleware.NewCORSMiddleware()},
		HandlerTransport:    handlers.HandlerTransport{},
		Config:              cfg,
		Logger:              logrus.New(),
	})
}

func TestShutdown_StopsMetricsServer(t *testing.T) {
	srv := newTestAPIServer(true)

	srv.setupMetricsEndpoint()
	require.NotNil(t, srv.metricsApp)

	assert.NoError(t, srv.Shutdown())
}

func TestShutdown_WithMetricsDisabled(t *testing.T) {
	srv := newTestAPIServer(false)

	srv.setupMetricsEndpoint()
	assert.Nil(t, srv.metricsApp)

	assert.NoError(t, srv.Shutdown())
}

func TestSetupMetricsEndpoint_Idempotent(t *testing.T) {
	srv := newTestAPIServer(true)

	srv.setupMetricsEndpoint()
	first := srv.metricsApp
	srv.setupMetricsEndpoint()

	assert.Same(t, first, srv.metricsApp)
	assert.NoError(t, srv.Shutdown())
}
