package bastion

import (
	"fmt"
)

// Timeout is a validator's declaration that a round has expired without
// progress. A quorum of signed timeouts for the same round lets the
// remaining validators safely advance past it.
type Timeout struct {
	Epoch uint64
	Round uint64
}

// TwoChainTimeout is the timeout declaration of the two-chain protocol
// variant. In addition to the expiring round it carries the highest quorum
// certificate known to the validator, which justifies that the validator has
// observed all progress up to that certificate.
type TwoChainTimeout struct {
	Epoch     uint64
	Round     uint64
	HighestQC *QuorumCertificate
}

// Validate checks the internal consistency of the two-chain timeout.
func (t *TwoChainTimeout) Validate() error {
	if t.HighestQC == nil {
		return fmt.Errorf("highest qc must not be nil")
	}
	if t.Epoch != t.HighestQC.Epoch() {
		return fmt.Errorf("timeout epoch (%d) must match highest qc epoch (%d)", t.Epoch, t.HighestQC.Epoch())
	}
	if t.Round <= t.HighestQC.Round() {
		return fmt.Errorf("timeout round (%d) must be greater than highest qc round (%d)", t.Round, t.HighestQC.Round())
	}
	return nil
}
