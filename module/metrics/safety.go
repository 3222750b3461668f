package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bastionlabs/bastion-go/module"
)

// SafetyCollector reports the instrumentation of the safety rules subsystem.
type SafetyCollector struct {
	operationDuration *prometheus.HistogramVec
	operationsRefused *prometheus.CounterVec
	epoch             prometheus.Gauge
	lastVotedRound    prometheus.Gauge
	preferredRound    prometheus.Gauge
}

var _ module.SafetyMetrics = (*SafetyCollector)(nil)

// NewSafetyCollector creates a new safety collector and registers its metrics
// with the given registerer.
func NewSafetyCollector(registerer prometheus.Registerer) *SafetyCollector {
	operationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:      "operation_duration_seconds",
		Namespace: namespaceBastion,
		Subsystem: subsystemSafety,
		Help:      "duration of safety rules operations in seconds, by operation and measurement source",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{LabelSource, LabelOperation})
	operationsRefused := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operations_refused_total",
		Namespace: namespaceBastion,
		Subsystem: subsystemSafety,
		Help:      "the number of refused safety rules requests, by operation and error kind",
	}, []string{LabelOperation, LabelKind})
	epoch := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "current_epoch",
		Namespace: namespaceBastion,
		Subsystem: subsystemSafety,
		Help:      "the epoch of the persisted safety state",
	})
	lastVotedRound := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "last_voted_round",
		Namespace: namespaceBastion,
		Subsystem: subsystemSafety,
		Help:      "the persisted last voted round",
	})
	preferredRound := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "preferred_round",
		Namespace: namespaceBastion,
		Subsystem: subsystemSafety,
		Help:      "the persisted preferred round",
	})
	registerer.MustRegister(operationDuration, operationsRefused, epoch, lastVotedRound, preferredRound)
	sc := &SafetyCollector{
		operationDuration: operationDuration,
		operationsRefused: operationsRefused,
		epoch:             epoch,
		lastVotedRound:    lastVotedRound,
		preferredRound:    preferredRound,
	}

	return sc
}

// OperationDuration reports the duration of one safety rules operation.
func (sc *SafetyCollector) OperationDuration(source string, operation string, duration time.Duration) {
	sc.operationDuration.WithLabelValues(source, operation).Observe(duration.Seconds())
}

// OperationRefused counts a refused safety rules request.
func (sc *SafetyCollector) OperationRefused(operation string, kind string) {
	sc.operationsRefused.WithLabelValues(operation, kind).Inc()
}

// SetEpoch reports the current epoch of the safety state.
func (sc *SafetyCollector) SetEpoch(epoch uint64) {
	sc.epoch.Set(float64(epoch))
}

// SetLastVotedRound reports the persisted last voted round.
func (sc *SafetyCollector) SetLastVotedRound(round uint64) {
	sc.lastVotedRound.Set(float64(round))
}

// SetPreferredRound reports the persisted preferred round.
func (sc *SafetyCollector) SetPreferredRound(round uint64) {
	sc.preferredRound.Set(float64(round))
}
