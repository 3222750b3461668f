package module

import (
	"time"
)

// SafetyMetrics exposes the instrumentation of the safety rules: how long
// operations take on either side of the trust boundary, how often requests
// are refused, and where the persisted safety state currently stands.
type SafetyMetrics interface {
	// OperationDuration reports the duration of one safety rules operation,
	// labeled by operation name and by the source of the measurement (the
	// engine itself or a client in front of it).
	OperationDuration(source string, operation string, duration time.Duration)

	// OperationRefused counts a refused request, labeled by operation name
	// and the error kind it was refused with.
	OperationRefused(operation string, kind string)

	// SetEpoch reports the current epoch of the safety state.
	SetEpoch(epoch uint64)

	// SetLastVotedRound reports the persisted last voted round.
	SetLastVotedRound(round uint64)

	// SetPreferredRound reports the persisted preferred round.
	SetPreferredRound(round uint64)
}
