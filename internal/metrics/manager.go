package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests      *prometheus.CounterVec
	CounterSessionsSaved prometheus.Counter
	CounterGoalUpdates   prometheus.Counter
	CounterAuthFailures  *prometheus.CounterVec
	CounterBackendErrors *prometheus.CounterVec

	// gauges
	GaugeRunningTimers prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
	HistSessionMinutes  prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("myfit", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("myfit", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterSessionsSaved := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_saved",
		Help:      "The total number of stopwatch sessions saved as records",
	})
	counterGoalUpdates := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "goal_updates",
		Help:      "The total number of goal upserts",
	})
	counterAuthFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "auth_failures",
		Help:      "The total number of rejected sign-in and sign-up attempts",
	}, []string{"reason"})
	counterBackendErrors := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "backend_errors",
		Help:      "The total number of failed storage operations",
	}, []string{"operation"})

	gaugeRunningTimers := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "running_timers",
		Help:      "Current number of running session stopwatches",
	})

	histReqDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		Name:      "request_duration_seconds",
		Help:      "Total duration of requests in seconds",
	})
	histSessionMinutes := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{1, 5, 10, 20, 30, 45, 60, 90, 120, 180},
		Name:      "session_minutes",
		Help:      "Duration of saved sessions in whole minutes",
	})

	return &Manager{
		CounterRequests:      counterRequests,
		CounterSessionsSaved: counterSessionsSaved,
		CounterGoalUpdates:   counterGoalUpdates,
		CounterAuthFailures:  counterAuthFailures,
		CounterBackendErrors: counterBackendErrors,
		GaugeRunningTimers:   gaugeRunningTimers,
		HistRequestDuration:  histReqDuration,
		HistSessionMinutes:   histSessionMinutes,
	}
}
