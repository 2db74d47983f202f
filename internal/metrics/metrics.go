package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Charts)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Charts.WithLabelValues(labels...).Inc()
}
