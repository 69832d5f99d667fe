package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total requests per endpoint, method and status code
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northpole_requests_total",
			Help: "Total API requests received",
		},
		[]string{"endpoint", "method", "status"},
	)

	// request latency in seconds per endpoint/method
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "northpole_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method"},
	)

	// milk withdrawals labelled by outcome (served, empty)
	MilkWithdrawals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northpole_milk_withdrawals_total",
			Help: "Total milk withdrawal attempts",
		},
		[]string{"outcome"},
	)

	// refills labelled by source (ticker, forced)
	MilkRefills = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northpole_milk_refills_total",
			Help: "Total milk refills",
		},
		[]string{"source"},
	)

	// units of milk currently in the bucket
	MilkLevel = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "northpole_milk_level",
			Help: "Current milk bucket level",
		},
	)

	// board placements labelled by outcome
	BoardMoves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northpole_board_moves_total",
			Help: "Total board placement attempts",
		},
		[]string{"outcome"},
	)

	// number of board resets
	BoardResets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "northpole_board_resets_total",
			Help: "Total board resets",
		},
	)

	// gift cookies wrapped/unwrapped labelled by outcome
	Gifts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "northpole_gifts_total",
			Help: "Total gift wrap and unwrap requests",
		},
		[]string{"action", "outcome"},
	)
)

func init() {
	// register all metrics
	prometheus.MustRegister(
		RequestCount,
		RequestLatency,
		MilkWithdrawals,
		MilkRefills,
		MilkLevel,
		BoardMoves,
		BoardResets,
		Gifts,
	)
}
