package bastion

// EpochChangeProof is a chain of epoch-ending ledger infos that proves a
// sequence of epoch transitions. Each element must be signed by a quorum of
// the validator set of its own epoch and carry the validator set of the next
// epoch, so that a verifier trusting epoch N can follow the chain to the
// latest epoch.
type EpochChangeProof struct {
	LedgerInfos []*LedgerInfoWithSignatures
}

// Empty returns true if and only if the proof contains no ledger infos.
func (p *EpochChangeProof) Empty() bool {
	return len(p.LedgerInfos) == 0
}

// Target returns the last ledger info of the proof, whose next epoch state is
// the epoch the proof transitions to. Returns nil for an empty proof.
func (p *EpochChangeProof) Target() *LedgerInfoWithSignatures {
	if p.Empty() {
		return nil
	}
	return p.LedgerInfos[len(p.LedgerInfos)-1]
}
