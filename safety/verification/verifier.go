package verification

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module/signature"
)

// VerifySignature checks a single validator signature over the given message.
func VerifySignature(validator *bastion.Validator, msg []byte, sig crypto.Signature) (bool, error) {
	valid, err := validator.PubKey.Verify(sig, msg, signature.NewSigningHasher())
	if err != nil {
		return false, fmt.Errorf("could not verify signature of node %x: %w", validator.NodeID, err)
	}
	return valid, nil
}

// VerifyAggregated checks an aggregated signature over the given message
// against the validator set of the given epoch state. It verifies that
//   - every signer is a validator of the epoch,
//   - every signature is valid,
//   - the combined weight of the _distinct_ signers reaches the quorum
//     threshold.
//
// All invalid signatures are reported together rather than only the first.
func VerifyAggregated(epochState *bastion.EpochState, msg []byte, agg *bastion.AggregatedSignature) error {
	if len(agg.SignerIDs) != len(agg.Signatures) {
		return fmt.Errorf("signer list length (%d) must match signature list length (%d)",
			len(agg.SignerIDs), len(agg.Signatures))
	}

	var errs *multierror.Error
	seen := make(map[bastion.Identifier]struct{}, len(agg.SignerIDs))
	var weight uint64
	for i, signerID := range agg.SignerIDs {
		validator, ok := epochState.ValidatorByID(signerID)
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("signer %x is not a validator of epoch %d", signerID, epochState.Epoch))
			continue
		}
		valid, err := VerifySignature(validator, msg, agg.Signatures[i])
		if err != nil {
			return err
		}
		if !valid {
			errs = multierror.Append(errs, fmt.Errorf("invalid signature from node %x", signerID))
			continue
		}
		if _, dup := seen[signerID]; dup {
			continue
		}
		seen[signerID] = struct{}{}
		weight += validator.Weight
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	if threshold := epochState.QuorumThreshold(); weight < threshold {
		return fmt.Errorf("aggregated weight (%d) is below the quorum threshold (%d) of epoch %d",
			weight, threshold, epochState.Epoch)
	}
	return nil
}

// VerifyQuorumCertificate checks that the certificate belongs to the given
// epoch and carries a valid quorum of vote signatures.
func VerifyQuorumCertificate(epochState *bastion.EpochState, qc *bastion.QuorumCertificate) error {
	if qc.Epoch() != epochState.Epoch {
		return fmt.Errorf("qc epoch (%d) does not match epoch state (%d)", qc.Epoch(), epochState.Epoch)
	}
	err := VerifyAggregated(epochState, MakeVoteMessage(&qc.VoteData), &qc.AggregatedSignature)
	if err != nil {
		return fmt.Errorf("invalid quorum certificate for round %d: %w", qc.Round(), err)
	}
	return nil
}

// VerifyTimeoutCertificate checks that the certificate belongs to the given
// epoch and carries a valid quorum of timeout signatures.
func VerifyTimeoutCertificate(epochState *bastion.EpochState, tc *bastion.TimeoutCertificate) error {
	if tc.Epoch != epochState.Epoch {
		return fmt.Errorf("tc epoch (%d) does not match epoch state (%d)", tc.Epoch, epochState.Epoch)
	}
	err := VerifyAggregated(epochState, MakeTimeoutMessage(tc.Epoch, tc.Round), &tc.AggregatedSignature)
	if err != nil {
		return fmt.Errorf("invalid timeout certificate for round %d: %w", tc.Round, err)
	}
	return nil
}

// VerifyLedgerInfo checks that the ledger info carries a valid quorum of
// commit signatures from the validator set of the given epoch state.
func VerifyLedgerInfo(epochState *bastion.EpochState, liws *bastion.LedgerInfoWithSignatures) error {
	if epoch := liws.LedgerInfo.Epoch(); epoch != epochState.Epoch {
		return fmt.Errorf("ledger info epoch (%d) does not match epoch state (%d)", epoch, epochState.Epoch)
	}
	err := VerifyAggregated(epochState, MakeLedgerInfoMessage(&liws.LedgerInfo), &liws.Signatures)
	if err != nil {
		return fmt.Errorf("invalid ledger info signatures for round %d: %w", liws.LedgerInfo.Round(), err)
	}
	return nil
}

// VerifyEpochChangeProof verifies a chain of epoch-ending ledger infos
// starting from the given trusted epoch state and returns the epoch state the
// proof transitions to.
//
// Ledger infos for epochs older than the trusted epoch are skipped, so a
// prover may send a longer history than the verifier needs. Every remaining
// step must be an epoch-ending ledger info for the verifier's current epoch,
// signed by a quorum of that epoch's validators. The resulting epoch must be
// strictly newer than the trusted one.
func VerifyEpochChangeProof(trusted *bastion.EpochState, proof *bastion.EpochChangeProof) (*bastion.EpochState, error) {
	if proof.Empty() {
		return nil, fmt.Errorf("epoch change proof is empty")
	}

	current := trusted
	for _, liws := range proof.LedgerInfos {
		if liws.LedgerInfo.Epoch() < current.Epoch {
			continue
		}
		if !liws.LedgerInfo.EndsEpoch() {
			return nil, fmt.Errorf("ledger info for epoch %d round %d does not end its epoch",
				liws.LedgerInfo.Epoch(), liws.LedgerInfo.Round())
		}
		err := VerifyLedgerInfo(current, liws)
		if err != nil {
			return nil, fmt.Errorf("invalid proof step for epoch %d: %w", current.Epoch, err)
		}
		next := liws.LedgerInfo.NextEpochState()
		if next.Epoch != current.Epoch+1 {
			return nil, fmt.Errorf("proof step for epoch %d transitions to epoch %d, expected %d",
				current.Epoch, next.Epoch, current.Epoch+1)
		}
		if len(next.Validators) == 0 {
			return nil, fmt.Errorf("next epoch state for epoch %d has no validators", next.Epoch)
		}
		if !next.Validators.Sorted() {
			return nil, fmt.Errorf("next epoch state for epoch %d is not in canonical order", next.Epoch)
		}
		current = next
	}

	if current.Epoch <= trusted.Epoch {
		return nil, fmt.Errorf("proof does not advance beyond the trusted epoch (%d)", trusted.Epoch)
	}
	return current, nil
}
