package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		BundleRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaigns_bundle_requests_total",
			Help: "The total number of bundle requests served, by endpoint.",
		}, []string{"endpoint"}),
		BundleDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campaigns_bundle_duration_seconds",
			Help:    "The time taken to assemble a bundle, by endpoint.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		OverviewDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaigns_overview_degraded_total",
			Help: "The total number of overview fields returned as null, by field.",
		}, []string{"field"}),
		StorageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaigns_storage_errors_total",
			Help: "The total number of requests failed by a storage error, by stage.",
		}, []string{"stage"}),
		SlackCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaigns_slack_commands_total",
			Help: "The total number of Slack slash commands handled, by status.",
		}, []string{"status"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "campaigns_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.BundleRequests,
		s.BundleDuration,
		s.OverviewDegraded,
		s.StorageErrors,
		s.SlackCommands,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncBundleRequests(endpoint string) {
	s.BundleRequests.WithLabelValues(endpoint).Inc()
}

func (s *Service) ObserveBundleDuration(endpoint string, duration float64) {
	s.BundleDuration.WithLabelValues(endpoint).Observe(duration)
}

func (s *Service) IncOverviewDegraded(field string) {
	s.OverviewDegraded.WithLabelValues(field).Inc()
}

func (s *Service) IncStorageErrors(stage string) {
	s.StorageErrors.WithLabelValues(stage).Inc()
}

func (s *Service) IncSlackCommands(status string) {
	s.SlackCommands.WithLabelValues(status).Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
