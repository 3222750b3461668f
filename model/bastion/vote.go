package bastion

import (
	"fmt"

	"github.com/onflow/flow-go/crypto"
)

// VoteData is the content a vote attests to: the proposed block and the
// parent block certified by the proposal's quorum certificate. Aggregating a
// quorum of signatures over the same VoteData yields a quorum certificate.
type VoteData struct {
	Proposed BlockInfo
	Parent   BlockInfo
}

// ID returns the unique identifier of the vote data.
func (vd *VoteData) ID() Identifier {
	return MakeID(vd)
}

// Validate checks the internal consistency of the vote data.
func (vd *VoteData) Validate() error {
	if vd.Proposed.Epoch != vd.Parent.Epoch {
		return fmt.Errorf("proposed epoch (%d) must match parent epoch (%d)", vd.Proposed.Epoch, vd.Parent.Epoch)
	}
	if vd.Proposed.Round <= vd.Parent.Round {
		return fmt.Errorf("proposed round (%d) must be greater than parent round (%d)", vd.Proposed.Round, vd.Parent.Round)
	}
	if vd.Proposed.Version < vd.Parent.Version {
		return fmt.Errorf("proposed version (%d) must not be below parent version (%d)", vd.Proposed.Version, vd.Parent.Version)
	}
	return nil
}

// Vote is a validator's signed endorsement of a block proposal.
type Vote struct {
	VoteData VoteData
	AuthorID Identifier
	SigData  crypto.Signature
}

// UntrustedVote is an untrusted input-only representation of a Vote, used for
// construction.
//
// This type exists to ensure that constructor functions are invoked
// explicitly with named fields, which improves clarity and reduces the risk
// of incorrect field ordering during construction.
//
// An instance of UntrustedVote should be validated and converted into a
// trusted Vote using the NewVote constructor.
type UntrustedVote Vote

// NewVote creates a new instance of Vote.
//
// All errors indicate a valid Vote cannot be constructed from the input.
func NewVote(untrusted UntrustedVote) (*Vote, error) {
	err := untrusted.VoteData.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid vote data: %w", err)
	}

	if untrusted.AuthorID == ZeroID {
		return nil, fmt.Errorf("AuthorID must not be empty")
	}

	if len(untrusted.SigData) == 0 {
		return nil, fmt.Errorf("SigData must not be empty")
	}

	return &Vote{
		VoteData: untrusted.VoteData,
		AuthorID: untrusted.AuthorID,
		SigData:  untrusted.SigData,
	}, nil
}

// ID returns the identifier for the vote.
func (v *Vote) ID() Identifier {
	return MakeID(v)
}

// Epoch returns the epoch the vote belongs to.
func (v *Vote) Epoch() uint64 {
	return v.VoteData.Proposed.Epoch
}

// Round returns the round of the proposed block the vote endorses.
func (v *Vote) Round() uint64 {
	return v.VoteData.Proposed.Round
}

// VoteProposal bundles a block proposal with the execution result the voter
// is asked to endorse: the ledger state version after executing the block
// and, for an epoch-ending block, the validator set of the next epoch.
type VoteProposal struct {
	Block          BlockData
	Version        uint64
	NextEpochState *EpochState
}
