package bastion

import (
	"fmt"
)

// TimeoutCertificate proves that a quorum of validators declared the same
// round expired. HighestQCRound is the highest quorum certificate round any
// of the signers reported alongside its timeout; it bounds how far the chain
// had provably progressed when the round timed out.
type TimeoutCertificate struct {
	Epoch               uint64
	Round               uint64
	HighestQCRound      uint64
	AggregatedSignature AggregatedSignature
}

// UntrustedTimeoutCertificate is an untrusted input-only representation of a
// TimeoutCertificate, used for construction.
//
// An instance of UntrustedTimeoutCertificate should be validated and
// converted into a trusted TimeoutCertificate using the
// NewTimeoutCertificate constructor.
type UntrustedTimeoutCertificate TimeoutCertificate

// NewTimeoutCertificate creates a new instance of TimeoutCertificate.
//
// All errors indicate a valid TimeoutCertificate cannot be constructed from
// the input.
func NewTimeoutCertificate(untrusted UntrustedTimeoutCertificate) (*TimeoutCertificate, error) {
	if untrusted.HighestQCRound >= untrusted.Round {
		return nil, fmt.Errorf("highest qc round (%d) must be lower than the timed out round (%d)",
			untrusted.HighestQCRound, untrusted.Round)
	}

	if len(untrusted.AggregatedSignature.SignerIDs) == 0 {
		return nil, fmt.Errorf("signer list must not be empty")
	}

	if len(untrusted.AggregatedSignature.SignerIDs) != len(untrusted.AggregatedSignature.Signatures) {
		return nil, fmt.Errorf("signer list length (%d) must match signature list length (%d)",
			len(untrusted.AggregatedSignature.SignerIDs), len(untrusted.AggregatedSignature.Signatures))
	}

	return &TimeoutCertificate{
		Epoch:               untrusted.Epoch,
		Round:               untrusted.Round,
		HighestQCRound:      untrusted.HighestQCRound,
		AggregatedSignature: untrusted.AggregatedSignature,
	}, nil
}

// ID returns the identifier of the certificate.
func (tc *TimeoutCertificate) ID() Identifier {
	return MakeID(tc)
}
