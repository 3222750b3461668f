package bastion

// EpochState describes the consensus configuration for one epoch: the epoch
// counter and the validator set authorized to vote in it. An EpochState is
// adopted from a verified epoch change proof and stays fixed until the next
// epoch transition.
type EpochState struct {
	Epoch      uint64
	Validators ValidatorList
}

// Member returns true if and only if the given node is a validator in this
// epoch.
func (es *EpochState) Member(nodeID Identifier) bool {
	return es.Validators.Exists(nodeID)
}

// ValidatorByID returns the validator with the given node ID.
func (es *EpochState) ValidatorByID(nodeID Identifier) (*Validator, bool) {
	return es.Validators.ByNodeID(nodeID)
}

// QuorumThreshold returns the minimum aggregate weight a certificate must
// carry to be considered a quorum in this epoch.
func (es *EpochState) QuorumThreshold() uint64 {
	return es.Validators.QuorumThreshold()
}

// LeaderForRound returns the validator expected to propose in the given
// round. Selection is round-robin over the validator set in canonical order,
// so every honest participant derives the same proposer for a round.
func (es *EpochState) LeaderForRound(round uint64) *Validator {
	if len(es.Validators) == 0 {
		return nil
	}
	return es.Validators[round%uint64(len(es.Validators))]
}
