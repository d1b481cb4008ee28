package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncBundleRequests(endpoint string)
	ObserveBundleDuration(endpoint string, duration float64)
	IncOverviewDegraded(field string)
	IncStorageErrors(stage string)
	IncSlackCommands(status string)
	SetStartupTime(duration float64)
}
