// Package metrics exposes Prometheus counters for authentication outcomes.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/elifsedaa/uygulama-havuzu-backend/internal/application/ports"
)

var authAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "havuz_auth_attempts_total",
		Help: "Total auth attempts by event and outcome",
	},
	[]string{"event", "success"},
)

// RecordAuthAttempt records an auth event outcome.
func RecordAuthAttempt(event string, success bool) {
	authAttempts.WithLabelValues(event, strconv.FormatBool(success)).Inc()
}

// Recorder implements ports.AuthMetrics over the package counters.
type Recorder struct{}

func (Recorder) RecordAttempt(event string, success bool) {
	RecordAuthAttempt(event, success)
}

var _ ports.AuthMetrics = Recorder{}
