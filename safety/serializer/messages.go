package serializer

import (
	"github.com/bastionlabs/bastion-go/model/bastion"
)

// The request structs crossing the serialization boundary. Every request
// carries its arguments by value on the wire: decoding produces data owned
// entirely by the receiving side, with no references back into caller memory.

// ConsensusStateRequest asks for the current safety state snapshot.
type ConsensusStateRequest struct{}

// InitializeRequest adopts the epoch proven by Proof. A nil Proof requests
// recovery from the persisted state instead.
type InitializeRequest struct {
	Proof *bastion.EpochChangeProof
}

// SignProposalRequest asks for a proposer signature over Block.
type SignProposalRequest struct {
	Block *bastion.BlockData
}

// ConstructAndSignVoteRequest asks for a vote on Proposal.
type ConstructAndSignVoteRequest struct {
	Proposal *bastion.VoteProposal
}

// ConstructAndSignVoteTwoChainRequest asks for a vote on Proposal under the
// two-chain rules. HighestTC is nil when the proposal is justified by its
// quorum certificate alone.
type ConstructAndSignVoteTwoChainRequest struct {
	Proposal  *bastion.VoteProposal
	HighestTC *bastion.TimeoutCertificate
}

// SignTimeoutRequest asks for a signature over Timeout.
type SignTimeoutRequest struct {
	Timeout *bastion.Timeout
}

// SignTimeoutWithQCRequest asks for a signature over the two-chain Timeout.
// HighestTC is nil when the timeout's embedded quorum certificate justifies
// it alone.
type SignTimeoutWithQCRequest struct {
	Timeout   *bastion.TwoChainTimeout
	HighestTC *bastion.TimeoutCertificate
}

// SignCommitVoteRequest asks for a commit vote on NewLedgerInfo, extending
// the quorum-certified Certified.
type SignCommitVoteRequest struct {
	Certified     *bastion.LedgerInfoWithSignatures
	NewLedgerInfo *bastion.LedgerInfo
}
