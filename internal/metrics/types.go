package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	BundleRequests     *prometheus.CounterVec
	BundleDuration     *prometheus.HistogramVec
	OverviewDegraded   *prometheus.CounterVec
	StorageErrors      *prometheus.CounterVec
	SlackCommands      *prometheus.CounterVec
	StartupTimeSeconds prometheus.Gauge
}
