package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Charts *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{Charts: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calib",
			Name:      "charts",
		}, []string{"diagram", "sink"}),
	}
}
