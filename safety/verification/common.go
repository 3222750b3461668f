package verification

import (
	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module/signature"
)

// MakeProposalMessage generates the message a proposer signs over its block
// proposal.
func MakeProposalMessage(block *bastion.BlockData) []byte {
	msg := bastion.Fingerprint(block)
	return append(signature.ProposalTag[:], msg...)
}

// MakeVoteMessage generates the message a validator signs when voting for a
// block. Quorum certificates aggregate signatures over this exact message,
// so votes and certificate verification must agree on it.
func MakeVoteMessage(voteData *bastion.VoteData) []byte {
	msg := bastion.Fingerprint(voteData)
	return append(signature.VoteTag[:], msg...)
}

// MakeTimeoutMessage generates the message a validator signs when declaring a
// round expired. Both timeout variants sign the same (epoch, round) message,
// which lets their signatures aggregate into one timeout certificate.
func MakeTimeoutMessage(epoch uint64, round uint64) []byte {
	msg := bastion.Fingerprint(&bastion.Timeout{Epoch: epoch, Round: round})
	return append(signature.TimeoutTag[:], msg...)
}

// MakeLedgerInfoMessage generates the message a validator signs when commit
// voting for a ledger info. The signatures of epoch change proofs verify
// against this same message.
func MakeLedgerInfoMessage(ledgerInfo *bastion.LedgerInfo) []byte {
	msg := bastion.Fingerprint(ledgerInfo)
	return append(signature.LedgerInfoTag[:], msg...)
}
