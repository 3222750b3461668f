package bastion

// LedgerInfo binds a committed block to the ledger state its execution
// produced. CommitInfo identifies the block and the resulting state version;
// ConsensusDataHash commits to the consensus-internal data (such as the vote
// data) that led to the commit. Commit votes and epoch change proofs are
// signatures over ledger infos.
type LedgerInfo struct {
	CommitInfo        BlockInfo
	ConsensusDataHash Identifier
}

// Epoch returns the epoch of the committed block.
func (li *LedgerInfo) Epoch() uint64 {
	return li.CommitInfo.Epoch
}

// Round returns the round of the committed block.
func (li *LedgerInfo) Round() uint64 {
	return li.CommitInfo.Round
}

// Version returns the ledger state version of the commit.
func (li *LedgerInfo) Version() uint64 {
	return li.CommitInfo.Version
}

// EndsEpoch returns true if and only if the committed block is the last of
// its epoch. Such a ledger info carries the validator set of the next epoch
// and can serve as one step of an epoch change proof.
func (li *LedgerInfo) EndsEpoch() bool {
	return li.CommitInfo.HasNextEpochState()
}

// NextEpochState returns the validator set of the epoch following this
// commit, or nil if the committed block does not end its epoch.
func (li *LedgerInfo) NextEpochState() *EpochState {
	return li.CommitInfo.NextEpochState
}

// ID returns the identifier of the ledger info.
func (li *LedgerInfo) ID() Identifier {
	return MakeID(li)
}

// LedgerInfoWithSignatures is a ledger info together with the aggregated
// signature of the validators that endorsed the commit. With a quorum of
// signatures it is the transferable proof that the commit happened.
type LedgerInfoWithSignatures struct {
	LedgerInfo LedgerInfo
	Signatures AggregatedSignature
}
