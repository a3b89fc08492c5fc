package logger

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every exported metric name.
const Namespace = "scopelog"

// metrics counts what a Console writes, for statistical reasons.
type metrics struct {
	Emitted *prometheus.CounterVec
	Groups  prometheus.Counter
}

func newMetrics() metrics {
	const subsystem = "console"

	return metrics{
		Emitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: subsystem,
			Name:      "emitted_total",
			Help:      "Number of log lines written, by severity. A group writes two.",
		}, []string{"severity"}),
		Groups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: subsystem,
			Name:      "groups_total",
			Help:      "Number of log groups opened.",
		}),
	}
}

func (m metrics) emitted(s Severity) {
	m.Emitted.WithLabelValues(s.String()).Inc()
}

// Metrics returns the Console collectors for registration with a
// prometheus.Registerer.
func (c *Console) Metrics() []prometheus.Collector {
	return []prometheus.Collector{c.metrics.Emitted, c.metrics.Groups}
}
