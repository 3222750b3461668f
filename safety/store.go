package safety

import (
	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
)

// Store is the secure persistent backing of the safety rules. Each field of
// the safety state is read and written individually and each write is
// atomic on its own; the engine sequences writes so that a crash between two
// writes can only make the state more conservative, never less.
//
// Getters return storage.ErrNotFound when the requested entry has never been
// written.
type Store interface {
	// Bootstrap writes the initial safety state and the trusted epoch state
	// in one atomic step. It must be called exactly once for a fresh store;
	// a second call returns storage.ErrAlreadyExists and changes nothing.
	Bootstrap(data *SafetyData, trusted *bastion.EpochState) error

	// Epoch returns the persisted epoch counter.
	Epoch() (uint64, error)
	// SetEpoch persists the epoch counter.
	SetEpoch(epoch uint64) error

	// LastVotedRound returns the persisted last voted round.
	LastVotedRound() (uint64, error)
	// SetLastVotedRound persists the last voted round.
	SetLastVotedRound(round uint64) error

	// PreferredRound returns the persisted preferred round.
	PreferredRound() (uint64, error)
	// SetPreferredRound persists the preferred round.
	SetPreferredRound(round uint64) error

	// LastVote returns the persisted last vote. Returns storage.ErrNotFound
	// when no vote is recorded, in particular after an epoch transition.
	LastVote() (*bastion.Vote, error)
	// SetLastVote persists the last vote. A nil vote clears the entry.
	SetLastVote(vote *bastion.Vote) error

	// TrustedEpochState returns the persisted trusted epoch state, the
	// verification root for epoch change proofs.
	TrustedEpochState() (*bastion.EpochState, error)
	// SetTrustedEpochState persists the trusted epoch state.
	SetTrustedEpochState(epochState *bastion.EpochState) error

	// SignerForEpoch returns the consensus signing key provisioned for the
	// given epoch. Returns storage.ErrNotFound when no key is provisioned.
	SignerForEpoch(epoch uint64) (crypto.PrivateKey, error)
	// SetSignerForEpoch provisions the consensus signing key for the given
	// epoch.
	SetSignerForEpoch(epoch uint64, key crypto.PrivateKey) error
}
