package remote

import (
	"strconv"
	"time"

	"webdrill/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "webdrill",
		Name:      "commands_total",
		Help:      "Remote commands sent, by command and HTTP status (\"error\" when no response arrived).",
	}, []string{"command", "status"})
	metricCommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "webdrill",
		Name:      "command_duration_seconds",
		Help:      "Round-trip latency of remote commands.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"command"})
)

func recordCommand(cmd entities.Command, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	metricCommandsTotal.WithLabelValues(string(cmd), label).Inc()
	metricCommandDuration.WithLabelValues(string(cmd)).Observe(elapsed.Seconds())
}
