package observability

import "time"

// MetricsRegistry provides an interface for recording application metrics
// so handlers and the refiller never touch the Prometheus globals directly.
type MetricsRegistry interface {
	// HTTP Request metrics
	IncrementRequests(endpoint, method, status string)
	RecordRequestLatency(endpoint, method string, duration time.Duration)

	// Milk bucket metrics
	IncrementMilkWithdrawals(outcome string)
	IncrementMilkRefills(source string)
	SetMilkLevel(level int)

	// Board metrics
	IncrementBoardMoves(outcome string)
	IncrementBoardResets()

	// Gift metrics
	IncrementGifts(action, outcome string)
}

// PrometheusRegistry implements MetricsRegistry using the global Prometheus metrics
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

// HTTP Request metrics
func (r *PrometheusRegistry) IncrementRequests(endpoint, method, status string) {
	RequestCount.WithLabelValues(endpoint, method, status).Inc()
}

func (r *PrometheusRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {
	RequestLatency.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

// Milk bucket metrics
func (r *PrometheusRegistry) IncrementMilkWithdrawals(outcome string) {
	MilkWithdrawals.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRegistry) IncrementMilkRefills(source string) {
	MilkRefills.WithLabelValues(source).Inc()
}

func (r *PrometheusRegistry) SetMilkLevel(level int) {
	MilkLevel.Set(float64(level))
}

// Board metrics
func (r *PrometheusRegistry) IncrementBoardMoves(outcome string) {
	BoardMoves.WithLabelValues(outcome).Inc()
}

func (r *PrometheusRegistry) IncrementBoardResets() {
	BoardResets.Inc()
}

// Gift metrics
func (r *PrometheusRegistry) IncrementGifts(action, outcome string) {
	Gifts.WithLabelValues(action, outcome).Inc()
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing
type NoOpRegistry struct{}

// NewNoOpRegistry creates a new NoOpRegistry
func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

func (r *NoOpRegistry) IncrementRequests(endpoint, method, status string)                    {}
func (r *NoOpRegistry) RecordRequestLatency(endpoint, method string, duration time.Duration) {}
func (r *NoOpRegistry) IncrementMilkWithdrawals(outcome string)                              {}
func (r *NoOpRegistry) IncrementMilkRefills(source string)                                   {}
func (r *NoOpRegistry) SetMilkLevel(level int)                                               {}
func (r *NoOpRegistry) IncrementBoardMoves(outcome string)                                   {}
func (r *NoOpRegistry) IncrementBoardResets()                                                {}
func (r *NoOpRegistry) IncrementGifts(action, outcome string)                                {}
