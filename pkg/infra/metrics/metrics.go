package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_requests_total",
		Help: "Chat completion requests received.",
	})

	ChatRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chat_rate_limited_total",
		Help: "Chat requests rejected by the sliding-window rate limit.",
	})

	ChatUpstreamErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_upstream_errors_total",
		Help: "Upstream completion failures by kind.",
	}, []string{"kind"})

	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "project_sync_runs_total",
		Help: "Project sync job runs by outcome.",
	}, []string{"status"})

	SyncedProjects = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "project_sync_last_count",
		Help: "Projects written by the most recent successful sync.",
	})
)
