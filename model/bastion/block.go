package bastion

// BlockData is the proposer-signed content of a block proposal: the position
// of the block in the chain (epoch and round), its author, a commitment to
// the payload, and the quorum certificate for the parent that justifies
// proposing at this round.
type BlockData struct {
	Epoch       uint64
	Round       uint64
	Timestamp   uint64 // unix milliseconds, proposer-local clock
	AuthorID    Identifier
	PayloadHash Identifier
	QC          *QuorumCertificate
}

// ID returns the unique identifier of the block, computed over its canonical
// encoding.
func (b *BlockData) ID() Identifier {
	return MakeID(b)
}

// BlockInfo is a compact summary of a block used inside votes, certificates
// and ledger infos. Version is the ledger state version the block's execution
// produced. For a block that ends an epoch, NextEpochState carries the
// validator set of the following epoch; it is nil everywhere else.
type BlockInfo struct {
	Epoch          uint64
	Round          uint64
	BlockID        Identifier
	Version        uint64
	Timestamp      uint64
	NextEpochState *EpochState
}

// HasNextEpochState returns true if and only if the block ends its epoch.
func (bi *BlockInfo) HasNextEpochState() bool {
	return bi.NextEpochState != nil
}
