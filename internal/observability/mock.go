package observability

import (
	"sync"
	"time"
)

// MockMetricsRegistry records counter increments in memory so tests can
// assert on them. Keys are the metric name followed by its label values,
// joined with ":".
type MockMetricsRegistry struct {
	mu        sync.Mutex
	counts    map[string]int
	milkLevel int
}

// NewMockMetricsRegistry creates an empty MockMetricsRegistry
func NewMockMetricsRegistry() *MockMetricsRegistry {
	return &MockMetricsRegistry{counts: make(map[string]int)}
}

func (m *MockMetricsRegistry) inc(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[key]++
}

// Count returns how many times key was incremented.
func (m *MockMetricsRegistry) Count(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

// MilkLevel returns the last level passed to SetMilkLevel.
func (m *MockMetricsRegistry) MilkLevel() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.milkLevel
}

func (m *MockMetricsRegistry) IncrementRequests(endpoint, method, status string) {
	m.inc("requests:" + endpoint + ":" + method + ":" + status)
}

func (m *MockMetricsRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
}

func (m *MockMetricsRegistry) IncrementMilkWithdrawals(outcome string) {
	m.inc("milk_withdrawals:" + outcome)
}

func (m *MockMetricsRegistry) IncrementMilkRefills(source string) {
	m.inc("milk_refills:" + source)
}

func (m *MockMetricsRegistry) SetMilkLevel(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.milkLevel = level
}

func (m *MockMetricsRegistry) IncrementBoardMoves(outcome string) {
	m.inc("board_moves:" + outcome)
}

func (m *MockMetricsRegistry) IncrementBoardResets() {
	m.inc("board_resets")
}

func (m *MockMetricsRegistry) IncrementGifts(action, outcome string) {
	m.inc("gifts:" + action + ":" + outcome)
}
