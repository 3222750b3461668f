package metrics

import (
	"time"
)

// NoopCollector implements the metrics interfaces with no-ops, for tools and
// tests that do not report metrics.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) OperationDuration(source string, operation string, duration time.Duration) {}
func (nc *NoopCollector) OperationRefused(operation string, kind string)                            {}
func (nc *NoopCollector) SetEpoch(epoch uint64)                                                     {}
func (nc *NoopCollector) SetLastVotedRound(round uint64)                                            {}
func (nc *NoopCollector) SetPreferredRound(round uint64)                                            {}
