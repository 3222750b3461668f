package safety

import (
	"github.com/bastionlabs/bastion-go/model/bastion"
)

// SafetyData is the persisted safety state of one validator. It survives
// restarts so that a recovering validator can never contradict signatures it
// produced before the crash.
type SafetyData struct {
	// Epoch is the epoch the validator currently participates in.
	Epoch uint64
	// LastVotedRound is the highest round the validator has voted or
	// declared a timeout in. Votes for rounds at or below it equivocate.
	LastVotedRound uint64
	// PreferredRound is the round of the highest quorum certificate the
	// validator has voted on top of. Proposals certified below it violate
	// the lock.
	PreferredRound uint64
	// LastVote is the vote produced at LastVotedRound. It is persisted so a
	// recovering validator can republish what it already signed instead of
	// asking to sign again.
	LastVote *bastion.Vote
}

// ConsensusState is the externally visible snapshot of the safety state,
// extended with whether this validator is a member of the current epoch's
// validator set.
type ConsensusState struct {
	Epoch          uint64
	LastVotedRound uint64
	PreferredRound uint64
	InValidatorSet bool
}
