package helper

import (
	"time"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func MakeBlockInfo(options ...func(*bastion.BlockInfo)) bastion.BlockInfo {
	info := bastion.BlockInfo{
		Epoch:     1,
		Round:     unittest.Uint64InRange(1, 100),
		BlockID:   unittest.IdentifierFixture(),
		Version:   1,
		Timestamp: uint64(time.Now().UnixMilli()),
	}
	for _, option := range options {
		option(&info)
	}
	return info
}

func WithInfoEpoch(epoch uint64) func(*bastion.BlockInfo) {
	return func(info *bastion.BlockInfo) {
		info.Epoch = epoch
	}
}

func WithInfoRound(round uint64) func(*bastion.BlockInfo) {
	return func(info *bastion.BlockInfo) {
		info.Round = round
	}
}

func WithInfoVersion(version uint64) func(*bastion.BlockInfo) {
	return func(info *bastion.BlockInfo) {
		info.Version = version
	}
}

func WithInfoBlockID(blockID bastion.Identifier) func(*bastion.BlockInfo) {
	return func(info *bastion.BlockInfo) {
		info.BlockID = blockID
	}
}

func WithInfoNextEpochState(state *bastion.EpochState) func(*bastion.BlockInfo) {
	return func(info *bastion.BlockInfo) {
		info.NextEpochState = state
	}
}

func MakeBlockData(options ...func(*bastion.BlockData)) *bastion.BlockData {
	block := bastion.BlockData{
		Epoch:       1,
		Round:       unittest.Uint64InRange(2, 100),
		Timestamp:   uint64(time.Now().UnixMilli()),
		AuthorID:    unittest.IdentifierFixture(),
		PayloadHash: unittest.IdentifierFixture(),
	}
	for _, option := range options {
		option(&block)
	}
	return &block
}

func WithBlockEpoch(epoch uint64) func(*bastion.BlockData) {
	return func(block *bastion.BlockData) {
		block.Epoch = epoch
	}
}

func WithBlockRound(round uint64) func(*bastion.BlockData) {
	return func(block *bastion.BlockData) {
		block.Round = round
	}
}

func WithBlockAuthor(authorID bastion.Identifier) func(*bastion.BlockData) {
	return func(block *bastion.BlockData) {
		block.AuthorID = authorID
	}
}

func WithBlockQC(qc *bastion.QuorumCertificate) func(*bastion.BlockData) {
	return func(block *bastion.BlockData) {
		block.QC = qc
	}
}

func MakeVoteProposal(options ...func(*bastion.VoteProposal)) *bastion.VoteProposal {
	proposal := bastion.VoteProposal{
		Block:   *MakeBlockData(),
		Version: 1,
	}
	for _, option := range options {
		option(&proposal)
	}
	return &proposal
}

func WithProposalBlock(block *bastion.BlockData) func(*bastion.VoteProposal) {
	return func(proposal *bastion.VoteProposal) {
		proposal.Block = *block
	}
}

func WithProposalVersion(version uint64) func(*bastion.VoteProposal) {
	return func(proposal *bastion.VoteProposal) {
		proposal.Version = version
	}
}

func WithProposalNextEpochState(state *bastion.EpochState) func(*bastion.VoteProposal) {
	return func(proposal *bastion.VoteProposal) {
		proposal.NextEpochState = state
	}
}

func MakeLedgerInfo(options ...func(*bastion.LedgerInfo)) *bastion.LedgerInfo {
	li := bastion.LedgerInfo{
		CommitInfo:        MakeBlockInfo(),
		ConsensusDataHash: unittest.IdentifierFixture(),
	}
	for _, option := range options {
		option(&li)
	}
	return &li
}

func WithLedgerInfoCommit(info bastion.BlockInfo) func(*bastion.LedgerInfo) {
	return func(li *bastion.LedgerInfo) {
		li.CommitInfo = info
	}
}

func MakeTimeout(options ...func(*bastion.Timeout)) *bastion.Timeout {
	timeout := bastion.Timeout{
		Epoch: 1,
		Round: unittest.Uint64InRange(1, 100),
	}
	for _, option := range options {
		option(&timeout)
	}
	return &timeout
}

func WithTimeoutEpoch(epoch uint64) func(*bastion.Timeout) {
	return func(timeout *bastion.Timeout) {
		timeout.Epoch = epoch
	}
}

func WithTimeoutRound(round uint64) func(*bastion.Timeout) {
	return func(timeout *bastion.Timeout) {
		timeout.Round = round
	}
}

func MakeTwoChainTimeout(options ...func(*bastion.TwoChainTimeout)) *bastion.TwoChainTimeout {
	timeout := bastion.TwoChainTimeout{
		Epoch: 1,
		Round: unittest.Uint64InRange(2, 100),
	}
	for _, option := range options {
		option(&timeout)
	}
	return &timeout
}

func WithTwoChainEpoch(epoch uint64) func(*bastion.TwoChainTimeout) {
	return func(timeout *bastion.TwoChainTimeout) {
		timeout.Epoch = epoch
	}
}

func WithTwoChainRound(round uint64) func(*bastion.TwoChainTimeout) {
	return func(timeout *bastion.TwoChainTimeout) {
		timeout.Round = round
	}
}

func WithTwoChainHighestQC(qc *bastion.QuorumCertificate) func(*bastion.TwoChainTimeout) {
	return func(timeout *bastion.TwoChainTimeout) {
		timeout.HighestQC = qc
	}
}
