package safety

import (
	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
)

// SafetyRules is the signing authority of one consensus validator. All
// signatures a validator contributes to the protocol are produced through
// this interface, which checks every request against the persisted safety
// state before signing and records the new state before releasing the
// signature. A correct implementation guarantees that the validator never
// equivocates and never votes against its lock, across crashes and restarts.
//
// Every method validates first and mutates second: a request that fails any
// check returns a typed error from this package and leaves the safety state
// untouched.
type SafetyRules interface {
	// ConsensusState reports the current safety state together with whether
	// this validator is a member of the current epoch's validator set.
	// Returns NotInitializedError if no epoch state has been adopted yet.
	ConsensusState() (*ConsensusState, error)

	// Initialize verifies an epoch change proof against the trusted epoch
	// state and adopts the proven epoch: the epoch counter advances, the
	// voting rounds reset and the signing key for the new epoch is loaded.
	// Returns:
	//   - InvalidEpochChangeProofError if the proof does not verify or does
	//     not advance beyond the trusted epoch;
	//   - SecureStorageError if the trusted state cannot be read or the new
	//     state cannot be persisted.
	Initialize(proof *bastion.EpochChangeProof) error

	// SignProposal signs a block proposal authored by this validator for a
	// round it leads. The voting rounds are not affected; proposing and
	// voting are tracked separately.
	// Returns:
	//   - NotInitializedError if no epoch state has been adopted yet;
	//   - IncorrectEpochError if the block belongs to another epoch;
	//   - InvalidCertificateError if the embedded QC is missing or
	//     inconsistent with the block;
	//   - SafetyViolationError if this validator is not the expected
	//     proposer for the block's round or not the block's author.
	SignProposal(block *bastion.BlockData) (crypto.Signature, error)

	// ConstructAndSignVote checks a proposal against the voting rules,
	// constructs the vote and signs it. On success last_voted_round has
	// advanced to the proposal's round and the vote is persisted before it
	// is returned. Repeating a request for an already-voted round is an
	// equivocation attempt and fails, even for the identical proposal; the
	// persisted last vote exists for recovery, not for replay.
	// Returns:
	//   - NotInitializedError if no epoch state has been adopted yet;
	//   - IncorrectEpochError if the proposal belongs to another epoch;
	//   - InvalidCertificateError if the embedded QC is missing or
	//     inconsistent with the proposal;
	//   - SafetyViolationError if voting would equivocate or violate the
	//     lock.
	ConstructAndSignVote(proposal *bastion.VoteProposal) (*bastion.Vote, error)

	// ConstructAndSignVoteTwoChain is the two-chain variant of vote
	// construction. A timeout certificate for the preceding round may
	// justify the proposal in place of a fresh QC; the lock advances by
	// whichever certificate round is higher. highestTC may be nil when the
	// proposal is justified by its QC alone.
	// Returns the same error kinds as ConstructAndSignVote.
	ConstructAndSignVoteTwoChain(proposal *bastion.VoteProposal, highestTC *bastion.TimeoutCertificate) (*bastion.Vote, error)

	// SignTimeout signs a declaration that the given round has expired.
	// Timeouts share the equivocation guard with votes: the round must not
	// be below last_voted_round, and last_voted_round advances to the
	// timeout's round afterwards.
	// Returns:
	//   - NotInitializedError if no epoch state has been adopted yet;
	//   - IncorrectEpochError if the timeout belongs to another epoch;
	//   - SafetyViolationError if the round is below last_voted_round.
	SignTimeout(timeout *bastion.Timeout) (crypto.Signature, error)

	// SignTimeoutWithQC signs a two-chain timeout declaration. The timeout
	// must be justified by its embedded highest QC or by a timeout
	// certificate for the preceding round, and the QC must not fall below
	// the lock. highestTC may be nil when the QC alone justifies the
	// timeout.
	// Returns:
	//   - NotInitializedError if no epoch state has been adopted yet;
	//   - IncorrectEpochError if the timeout or a certificate belongs to
	//     another epoch;
	//   - InvalidCertificateError if the timeout is malformed or justified
	//     by neither certificate;
	//   - SafetyViolationError if signing would contradict the recorded
	//     voting rounds.
	SignTimeoutWithQC(timeout *bastion.TwoChainTimeout, highestTC *bastion.TimeoutCertificate) (crypto.Signature, error)

	// SignCommitVote signs a commit vote for newLedgerInfo, extending an
	// already quorum-certified ledger info. The new ledger info must not
	// move backwards in round or version relative to the certified one.
	// Commit voting never changes the recorded voting rounds.
	// Returns:
	//   - NotInitializedError if no epoch state has been adopted yet;
	//   - IncorrectEpochError if either ledger info belongs to another
	//     epoch;
	//   - InvalidCertificateError if the certified ledger info does not
	//     verify against the current validator set, or newLedgerInfo
	//     regresses from it.
	SignCommitVote(certified *bastion.LedgerInfoWithSignatures, newLedgerInfo *bastion.LedgerInfo) (crypto.Signature, error)
}
