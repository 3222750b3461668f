package bastion

import (
	"fmt"
)

// QuorumCertificate proves that a quorum of validators voted for the same
// block. It carries the vote data all signers endorsed and their aggregated
// signature. The round of a certificate is the round of the block it
// certifies.
type QuorumCertificate struct {
	VoteData            VoteData
	AggregatedSignature AggregatedSignature
}

// UntrustedQuorumCertificate is an untrusted input-only representation of a
// QuorumCertificate, used for construction.
//
// An instance of UntrustedQuorumCertificate should be validated and converted
// into a trusted QuorumCertificate using the NewQuorumCertificate
// constructor.
type UntrustedQuorumCertificate QuorumCertificate

// NewQuorumCertificate creates a new instance of QuorumCertificate. The
// constructor enforces structural validity only; whether the signer set
// constitutes a quorum is checked against an epoch state during signature
// verification.
//
// All errors indicate a valid QuorumCertificate cannot be constructed from
// the input.
func NewQuorumCertificate(untrusted UntrustedQuorumCertificate) (*QuorumCertificate, error) {
	err := untrusted.VoteData.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid vote data: %w", err)
	}

	if len(untrusted.AggregatedSignature.SignerIDs) == 0 {
		return nil, fmt.Errorf("signer list must not be empty")
	}

	if len(untrusted.AggregatedSignature.SignerIDs) != len(untrusted.AggregatedSignature.Signatures) {
		return nil, fmt.Errorf("signer list length (%d) must match signature list length (%d)",
			len(untrusted.AggregatedSignature.SignerIDs), len(untrusted.AggregatedSignature.Signatures))
	}

	return &QuorumCertificate{
		VoteData:            untrusted.VoteData,
		AggregatedSignature: untrusted.AggregatedSignature,
	}, nil
}

// CertifiedBlock returns the info of the block the certificate certifies.
func (qc *QuorumCertificate) CertifiedBlock() BlockInfo {
	return qc.VoteData.Proposed
}

// ParentBlock returns the info of the certified block's parent.
func (qc *QuorumCertificate) ParentBlock() BlockInfo {
	return qc.VoteData.Parent
}

// Epoch returns the epoch the certificate belongs to.
func (qc *QuorumCertificate) Epoch() uint64 {
	return qc.VoteData.Proposed.Epoch
}

// Round returns the round of the certified block.
func (qc *QuorumCertificate) Round() uint64 {
	return qc.VoteData.Proposed.Round
}

// ID returns the identifier of the certificate.
func (qc *QuorumCertificate) ID() Identifier {
	return MakeID(qc)
}
