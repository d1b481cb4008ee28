package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	bundleRequests   map[string]int
	bundleDurations  map[string][]float64
	overviewDegraded map[string]int
	storageErrors    map[string]int
	slackCommands    map[string]int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		bundleRequests:   make(map[string]int),
		bundleDurations:  make(map[string][]float64),
		overviewDegraded: make(map[string]int),
		storageErrors:    make(map[string]int),
		slackCommands:    make(map[string]int),
	}
}

func (m *Mock) IncBundleRequests(endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bundleRequests[endpoint]++
}

func (m *Mock) ObserveBundleDuration(endpoint string, duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bundleDurations[endpoint] = append(m.bundleDurations[endpoint], duration)
}

func (m *Mock) IncOverviewDegraded(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overviewDegraded[field]++
}

func (m *Mock) IncStorageErrors(stage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storageErrors[stage]++
}

func (m *Mock) IncSlackCommands(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackCommands[status]++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// BundleRequests returns the number of times IncBundleRequests was called for endpoint.
func (m *Mock) BundleRequests(endpoint string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bundleRequests[endpoint]
}

// BundleDurations returns the durations observed for endpoint.
func (m *Mock) BundleDurations(endpoint string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.bundleDurations[endpoint]...)
}

// OverviewDegraded returns the number of times field was degraded to null.
func (m *Mock) OverviewDegraded(field string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overviewDegraded[field]
}

// StorageErrors returns the number of storage errors recorded for stage.
func (m *Mock) StorageErrors(stage string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storageErrors[stage]
}

// SlackCommands returns the number of Slack commands recorded with status.
func (m *Mock) SlackCommands(status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackCommands[status]
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
