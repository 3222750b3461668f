// Package safetyrules implements the voting and signing rules that keep a
// validator from equivocating. All state transitions are validated before
// any mutation, so a failed operation leaves the persistent safety state
// exactly as it found it.
package safetyrules

import (
	"errors"

	"github.com/onflow/flow-go/crypto"
	"github.com/rs/zerolog"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module"
	"github.com/bastionlabs/bastion-go/module/metrics"
	"github.com/bastionlabs/bastion-go/module/signature"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/safety/verification"
	"github.com/bastionlabs/bastion-go/storage"
	"github.com/bastionlabs/bastion-go/utils/logging"
)

// SafetyRules is the sole authority over the persistent safety state. It is
// NOT concurrency safe: the caller must guarantee that operations are invoked
// strictly serially (see serializer.Service).
type SafetyRules struct {
	log     zerolog.Logger
	metrics module.SafetyMetrics
	store   safety.Store
	nodeID  bastion.Identifier

	// in-memory mirror of the persistent safety state; only valid after a
	// successful Initialize
	initialized bool
	epochState  *bastion.EpochState
	signer      crypto.PrivateKey
	safetyData  *safety.SafetyData
}

var _ safety.SafetyRules = (*SafetyRules)(nil)

// New creates a safety rules engine around the given store. The engine starts
// uninitialized; every operation except Initialize fails until a successful
// Initialize call has loaded (or advanced) the epoch state.
func New(
	log zerolog.Logger,
	collector module.SafetyMetrics,
	store safety.Store,
	nodeID bastion.Identifier,
) *SafetyRules {
	return &SafetyRules{
		log:     log.With().Str("component", "safety_rules").Logger(),
		metrics: collector,
		store:   store,
		nodeID:  nodeID,
	}
}

// ConsensusState returns a snapshot of the current safety state.
func (sr *SafetyRules) ConsensusState() (*safety.ConsensusState, error) {
	state, err := sr.consensusState()
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationConsensusState, safety.ErrorKindLabel(err))
		return nil, err
	}
	return state, nil
}

func (sr *SafetyRules) consensusState() (*safety.ConsensusState, error) {
	if !sr.initialized {
		return nil, safety.NewNotInitializedErrorf("no epoch state has been adopted yet")
	}
	return &safety.ConsensusState{
		Epoch:          sr.safetyData.Epoch,
		LastVotedRound: sr.safetyData.LastVotedRound,
		PreferredRound: sr.safetyData.PreferredRound,
		InValidatorSet: sr.signer != nil,
	}, nil
}

// Initialize adopts an epoch state. With a nil or empty proof it recovers the
// state most recently persisted to the store, leaving all round counters
// untouched. With a non-empty proof it verifies that the proof's chain of
// quorum-signed ledger infos links the trusted epoch state to a strictly
// later epoch, then adopts that epoch and resets the round counters.
func (sr *SafetyRules) Initialize(proof *bastion.EpochChangeProof) error {
	err := sr.initialize(proof)
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationInitialize, safety.ErrorKindLabel(err))
		return err
	}
	return nil
}

func (sr *SafetyRules) initialize(proof *bastion.EpochChangeProof) error {
	if proof == nil || proof.Empty() {
		return sr.recover()
	}
	return sr.advance(proof)
}

// recover adopts the epoch state and safety data already in the store.
func (sr *SafetyRules) recover() error {

	trusted, err := sr.store.TrustedEpochState()
	if errors.Is(err, storage.ErrNotFound) {
		return safety.NewNotInitializedErrorf("store holds no trusted epoch state")
	}
	if err != nil {
		return safety.NewSecureStorageErrorf("could not read trusted epoch state: %w", err)
	}

	data, err := sr.loadSafetyData()
	if err != nil {
		return err
	}
	if data.Epoch != trusted.Epoch {
		return safety.NewInternalErrorf("stored epoch (%d) does not match trusted epoch state (%d)", data.Epoch, trusted.Epoch)
	}

	err = sr.adopt(trusted, data)
	if err != nil {
		return err
	}

	sr.log.Info().
		Uint64("epoch", data.Epoch).
		Uint64("last_voted_round", data.LastVotedRound).
		Uint64("preferred_round", data.PreferredRound).
		Bool("in_validator_set", sr.signer != nil).
		Msg("recovered safety state from store")

	return nil
}

// advance verifies the epoch change proof against the trusted epoch state and
// moves the engine into the proof's target epoch.
func (sr *SafetyRules) advance(proof *bastion.EpochChangeProof) error {

	trusted := sr.epochState
	currentEpoch := uint64(0)
	if sr.initialized {
		currentEpoch = sr.safetyData.Epoch
	} else {
		var err error
		trusted, err = sr.store.TrustedEpochState()
		if errors.Is(err, storage.ErrNotFound) {
			return safety.NewNotInitializedErrorf("store holds no trusted epoch state")
		}
		if err != nil {
			return safety.NewSecureStorageErrorf("could not read trusted epoch state: %w", err)
		}
		currentEpoch = trusted.Epoch
	}

	next, err := verification.VerifyEpochChangeProof(trusted, proof)
	if err != nil {
		return safety.NewInvalidEpochChangeProofErrorf("proof does not link trusted epoch state to a later epoch: %w", err)
	}
	if next.Epoch <= currentEpoch {
		return safety.NewInvalidEpochChangeProofErrorf("proof target epoch (%d) does not advance current epoch (%d)", next.Epoch, currentEpoch)
	}

	data := &safety.SafetyData{
		Epoch:          next.Epoch,
		LastVotedRound: 0,
		PreferredRound: 0,
		LastVote:       nil,
	}

	// The epoch is written before the round counters are reset, so that a
	// partial update can only leave a state that refuses more, never one that
	// allows double-signing under the old epoch.
	err = sr.store.SetEpoch(next.Epoch)
	if err != nil {
		return safety.NewSecureStorageErrorf("could not persist epoch %d: %w", next.Epoch, err)
	}
	err = sr.store.SetTrustedEpochState(next)
	if err != nil {
		return safety.NewSecureStorageErrorf("could not persist trusted epoch state: %w", err)
	}
	err = sr.store.SetLastVotedRound(0)
	if err != nil {
		return safety.NewSecureStorageErrorf("could not reset last voted round: %w", err)
	}
	err = sr.store.SetPreferredRound(0)
	if err != nil {
		return safety.NewSecureStorageErrorf("could not reset preferred round: %w", err)
	}
	err = sr.store.SetLastVote(nil)
	if err != nil {
		return safety.NewSecureStorageErrorf("could not clear last vote: %w", err)
	}

	err = sr.adopt(next, data)
	if err != nil {
		return err
	}

	sr.log.Info().
		Uint64("epoch", next.Epoch).
		Int("validators", len(next.Validators)).
		Bool("in_validator_set", sr.signer != nil).
		Msg("advanced to new epoch")

	return nil
}

// loadSafetyData reads the full safety data from the store.
func (sr *SafetyRules) loadSafetyData() (*safety.SafetyData, error) {
	epoch, err := sr.store.Epoch()
	if errors.Is(err, storage.ErrNotFound) {
		return nil, safety.NewNotInitializedErrorf("store holds no safety data")
	}
	if err != nil {
		return nil, safety.NewSecureStorageErrorf("could not read epoch: %w", err)
	}
	lastVotedRound, err := sr.store.LastVotedRound()
	if err != nil {
		return nil, safety.NewSecureStorageErrorf("could not read last voted round: %w", err)
	}
	preferredRound, err := sr.store.PreferredRound()
	if err != nil {
		return nil, safety.NewSecureStorageErrorf("could not read preferred round: %w", err)
	}
	lastVote, err := sr.store.LastVote()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, safety.NewSecureStorageErrorf("could not read last vote: %w", err)
	}
	return &safety.SafetyData{
		Epoch:          epoch,
		LastVotedRound: lastVotedRound,
		PreferredRound: preferredRound,
		LastVote:       lastVote,
	}, nil
}

// adopt installs the given epoch state and safety data as the engine's
// current state and looks up the signing key for the epoch, if this node is
// a member of the validator set.
func (sr *SafetyRules) adopt(state *bastion.EpochState, data *safety.SafetyData) error {

	var signer crypto.PrivateKey
	if state.Member(sr.nodeID) {
		key, err := sr.store.SignerForEpoch(state.Epoch)
		if errors.Is(err, storage.ErrNotFound) {
			return safety.NewSecureStorageErrorf("no signing key provisioned for epoch %d", state.Epoch)
		}
		if err != nil {
			return safety.NewSecureStorageErrorf("could not read signing key for epoch %d: %w", state.Epoch, err)
		}
		signer = key
	}

	sr.epochState = state
	sr.signer = signer
	sr.safetyData = data
	sr.initialized = true

	sr.metrics.SetEpoch(data.Epoch)
	sr.metrics.SetLastVotedRound(data.LastVotedRound)
	sr.metrics.SetPreferredRound(data.PreferredRound)

	return nil
}

// SignProposal signs the block data, provided this node is the expected
// proposer for the block's round. Proposing does not touch the voting rounds,
// so a validator may propose and later vote in the same round.
func (sr *SafetyRules) SignProposal(block *bastion.BlockData) (crypto.Signature, error) {
	sig, err := sr.signProposal(block)
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationSignProposal, safety.ErrorKindLabel(err))
		return nil, err
	}
	return sig, nil
}

func (sr *SafetyRules) signProposal(block *bastion.BlockData) (crypto.Signature, error) {

	signer, err := sr.requireSigner()
	if err != nil {
		return nil, err
	}
	err = sr.checkEpoch(block.Epoch)
	if err != nil {
		return nil, err
	}
	if block.AuthorID != sr.nodeID {
		return nil, safety.NewSafetyViolationErrorf("block author (%x) is not this node (%x)", block.AuthorID, sr.nodeID)
	}
	leader := sr.epochState.LeaderForRound(block.Round)
	if leader.NodeID != sr.nodeID {
		return nil, safety.NewSafetyViolationErrorf("node is not the proposer for round %d", block.Round)
	}

	sig, err := signer.Sign(verification.MakeProposalMessage(block), signature.NewSigningHasher())
	if err != nil {
		return nil, safety.NewInternalErrorf("could not sign proposal: %w", err)
	}

	sr.log.Debug().
		Uint64("round", block.Round).
		Hex("block_id", logging.ID(block.ID())).
		Msg("proposal signed")

	return sig, nil
}

// ConstructAndSignVote builds and signs a vote for the proposal, subject to
// the voting rules: the proposal's round must be strictly greater than the
// last voted round, and the embedded certificate's round must not be below
// the preferred round. On success the round counters are advanced and the
// vote is persisted before it is returned.
func (sr *SafetyRules) ConstructAndSignVote(proposal *bastion.VoteProposal) (*bastion.Vote, error) {
	vote, err := sr.constructAndSignVote(proposal)
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationConstructAndSignVote, safety.ErrorKindLabel(err))
		return nil, err
	}
	return vote, nil
}

func (sr *SafetyRules) constructAndSignVote(proposal *bastion.VoteProposal) (*bastion.Vote, error) {

	qc, err := sr.checkVoteProposal(proposal)
	if err != nil {
		return nil, err
	}

	if qc.Round() < sr.safetyData.PreferredRound {
		return nil, safety.NewSafetyViolationErrorf(
			"proposal's certificate round (%d) is below the preferred round (%d)", qc.Round(), sr.safetyData.PreferredRound)
	}

	return sr.signVote(proposal, qc, qc.Round())
}

// ConstructAndSignVoteTwoChain is the two-chain variant of vote construction.
// The lock check may be satisfied by the round of the supplied timeout
// certificate instead of the proposal's own certificate, since a round can be
// skipped via a timeout certificate without ever producing a quorum
// certificate.
func (sr *SafetyRules) ConstructAndSignVoteTwoChain(proposal *bastion.VoteProposal, highestTC *bastion.TimeoutCertificate) (*bastion.Vote, error) {
	vote, err := sr.constructAndSignVoteTwoChain(proposal, highestTC)
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationConstructAndSignVoteTwoChain, safety.ErrorKindLabel(err))
		return nil, err
	}
	return vote, nil
}

func (sr *SafetyRules) constructAndSignVoteTwoChain(proposal *bastion.VoteProposal, highestTC *bastion.TimeoutCertificate) (*bastion.Vote, error) {

	qc, err := sr.checkVoteProposal(proposal)
	if err != nil {
		return nil, err
	}

	round := proposal.Block.Round
	justified := qc.Round()
	if highestTC != nil {
		err = sr.checkEpoch(highestTC.Epoch)
		if err != nil {
			return nil, err
		}
		if qc.Round() < highestTC.HighestQCRound {
			return nil, safety.NewInvalidCertificateErrorf(
				"proposal's certificate round (%d) is older than the timeout certificate's highest known round (%d)",
				qc.Round(), highestTC.HighestQCRound)
		}
		if highestTC.Round > justified {
			justified = highestTC.Round
		}
	}

	if round != justified+1 {
		return nil, safety.NewInvalidCertificateErrorf(
			"proposal round (%d) is not contiguous with its justifying round (%d)", round, justified)
	}
	if justified < sr.safetyData.PreferredRound {
		return nil, safety.NewSafetyViolationErrorf(
			"justifying round (%d) is below the preferred round (%d)", justified, sr.safetyData.PreferredRound)
	}

	return sr.signVote(proposal, qc, justified)
}

// checkVoteProposal performs the checks shared by both voting rules: the
// engine must hold a signing key, the proposal and its certificate must
// belong to the current epoch and be mutually consistent, and voting for the
// proposal's round must not equivocate.
func (sr *SafetyRules) checkVoteProposal(proposal *bastion.VoteProposal) (*bastion.QuorumCertificate, error) {

	_, err := sr.requireSigner()
	if err != nil {
		return nil, err
	}

	block := proposal.Block
	err = sr.checkEpoch(block.Epoch)
	if err != nil {
		return nil, err
	}

	qc := block.QC
	if qc == nil {
		return nil, safety.NewInvalidCertificateErrorf("proposal carries no quorum certificate")
	}
	if qc.Epoch() != block.Epoch {
		return nil, safety.NewInvalidCertificateErrorf(
			"quorum certificate epoch (%d) does not match block epoch (%d)", qc.Epoch(), block.Epoch)
	}
	if qc.Round() >= block.Round {
		return nil, safety.NewInvalidCertificateErrorf(
			"quorum certificate round (%d) must be below proposal round (%d)", qc.Round(), block.Round)
	}

	if block.Round <= sr.safetyData.LastVotedRound {
		return nil, safety.NewSafetyViolationErrorf(
			"proposal round (%d) is not greater than the last voted round (%d)", block.Round, sr.safetyData.LastVotedRound)
	}

	return qc, nil
}

// signVote performs the mutation half of vote construction. All rule checks
// must have passed already. The round counters are advanced in memory first
// and then persisted field by field, last voted round first, so that a crash
// mid-update can only leave behind a stricter state.
func (sr *SafetyRules) signVote(proposal *bastion.VoteProposal, qc *bastion.QuorumCertificate, justified uint64) (*bastion.Vote, error) {

	block := proposal.Block
	voteData := bastion.VoteData{
		Proposed: bastion.BlockInfo{
			Epoch:          block.Epoch,
			Round:          block.Round,
			BlockID:        block.ID(),
			Version:        proposal.Version,
			Timestamp:      block.Timestamp,
			NextEpochState: proposal.NextEpochState,
		},
		Parent: qc.CertifiedBlock(),
	}

	sig, err := sr.signer.Sign(verification.MakeVoteMessage(&voteData), signature.NewSigningHasher())
	if err != nil {
		return nil, safety.NewInternalErrorf("could not sign vote: %w", err)
	}
	vote := &bastion.Vote{
		VoteData: voteData,
		AuthorID: sr.nodeID,
		SigData:  sig,
	}

	sr.safetyData.LastVotedRound = block.Round
	if justified > sr.safetyData.PreferredRound {
		sr.safetyData.PreferredRound = justified
	}
	sr.safetyData.LastVote = vote

	err = sr.store.SetLastVotedRound(sr.safetyData.LastVotedRound)
	if err != nil {
		return nil, safety.NewSecureStorageErrorf("could not persist last voted round: %w", err)
	}
	err = sr.store.SetPreferredRound(sr.safetyData.PreferredRound)
	if err != nil {
		return nil, safety.NewSecureStorageErrorf("could not persist preferred round: %w", err)
	}
	err = sr.store.SetLastVote(vote)
	if err != nil {
		return nil, safety.NewSecureStorageErrorf("could not persist last vote: %w", err)
	}

	sr.metrics.SetLastVotedRound(sr.safetyData.LastVotedRound)
	sr.metrics.SetPreferredRound(sr.safetyData.PreferredRound)

	sr.log.Debug().
		Uint64("round", block.Round).
		Uint64("preferred_round", sr.safetyData.PreferredRound).
		Hex("block_id", logging.ID(voteData.Proposed.BlockID)).
		Msg("vote signed")

	return vote, nil
}

// SignTimeout signs a timeout for the given round. Timing out the round most
// recently voted in is allowed, but never a round below it. Signing a timeout
// raises the last voted round to the timeout's round, so the timed-out round
// can no longer be voted in.
func (sr *SafetyRules) SignTimeout(timeout *bastion.Timeout) (crypto.Signature, error) {
	sig, err := sr.signTimeout(timeout)
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationSignTimeout, safety.ErrorKindLabel(err))
		return nil, err
	}
	return sig, nil
}

func (sr *SafetyRules) signTimeout(timeout *bastion.Timeout) (crypto.Signature, error) {

	signer, err := sr.requireSigner()
	if err != nil {
		return nil, err
	}
	err = sr.checkEpoch(timeout.Epoch)
	if err != nil {
		return nil, err
	}
	if timeout.Round < sr.safetyData.LastVotedRound {
		return nil, safety.NewSafetyViolationErrorf(
			"timeout round (%d) is below the last voted round (%d)", timeout.Round, sr.safetyData.LastVotedRound)
	}

	return sr.signTimeoutMessage(signer, timeout.Epoch, timeout.Round)
}

// SignTimeoutWithQC signs a timeout justified by the highest known quorum
// certificate and, optionally, the previous round's timeout certificate. The
// timeout's round must directly follow one of its justifications.
func (sr *SafetyRules) SignTimeoutWithQC(timeout *bastion.TwoChainTimeout, highestTC *bastion.TimeoutCertificate) (crypto.Signature, error) {
	sig, err := sr.signTimeoutWithQC(timeout, highestTC)
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationSignTimeoutWithQC, safety.ErrorKindLabel(err))
		return nil, err
	}
	return sig, nil
}

func (sr *SafetyRules) signTimeoutWithQC(timeout *bastion.TwoChainTimeout, highestTC *bastion.TimeoutCertificate) (crypto.Signature, error) {

	signer, err := sr.requireSigner()
	if err != nil {
		return nil, err
	}
	err = sr.checkEpoch(timeout.Epoch)
	if err != nil {
		return nil, err
	}
	err = timeout.Validate()
	if err != nil {
		return nil, safety.NewInvalidCertificateErrorf("invalid timeout: %w", err)
	}
	if highestTC != nil {
		err = sr.checkEpoch(highestTC.Epoch)
		if err != nil {
			return nil, err
		}
	}

	qcRound := timeout.HighestQC.Round()
	contiguous := timeout.Round == qcRound+1 ||
		(highestTC != nil && timeout.Round == highestTC.Round+1)
	if !contiguous {
		return nil, safety.NewInvalidCertificateErrorf(
			"timeout round (%d) does not follow its justification (qc round %d)", timeout.Round, qcRound)
	}
	if qcRound < sr.safetyData.PreferredRound {
		return nil, safety.NewSafetyViolationErrorf(
			"timeout's certificate round (%d) is below the preferred round (%d)", qcRound, sr.safetyData.PreferredRound)
	}
	if timeout.Round < sr.safetyData.LastVotedRound {
		return nil, safety.NewSafetyViolationErrorf(
			"timeout round (%d) is below the last voted round (%d)", timeout.Round, sr.safetyData.LastVotedRound)
	}

	return sr.signTimeoutMessage(signer, timeout.Epoch, timeout.Round)
}

// signTimeoutMessage signs the timeout message and raises the last voted
// round to the timeout's round if it exceeds it.
func (sr *SafetyRules) signTimeoutMessage(signer crypto.PrivateKey, epoch uint64, round uint64) (crypto.Signature, error) {

	sig, err := signer.Sign(verification.MakeTimeoutMessage(epoch, round), signature.NewSigningHasher())
	if err != nil {
		return nil, safety.NewInternalErrorf("could not sign timeout: %w", err)
	}

	if round > sr.safetyData.LastVotedRound {
		sr.safetyData.LastVotedRound = round
		err = sr.store.SetLastVotedRound(round)
		if err != nil {
			return nil, safety.NewSecureStorageErrorf("could not persist last voted round: %w", err)
		}
		sr.metrics.SetLastVotedRound(round)
	}

	sr.log.Debug().
		Uint64("round", round).
		Msg("timeout signed")

	return sig, nil
}

// SignCommitVote signs a commit vote certifying newLedgerInfo as the next
// state to finalize, justified by an already quorum-certified ledger info.
// Commit signing is a separate safety track from block voting and does not
// consult or advance the round counters.
func (sr *SafetyRules) SignCommitVote(certified *bastion.LedgerInfoWithSignatures, newLedgerInfo *bastion.LedgerInfo) (crypto.Signature, error) {
	sig, err := sr.signCommitVote(certified, newLedgerInfo)
	if err != nil {
		sr.metrics.OperationRefused(metrics.OperationSignCommitVote, safety.ErrorKindLabel(err))
		return nil, err
	}
	return sig, nil
}

func (sr *SafetyRules) signCommitVote(certified *bastion.LedgerInfoWithSignatures, newLedgerInfo *bastion.LedgerInfo) (crypto.Signature, error) {

	signer, err := sr.requireSigner()
	if err != nil {
		return nil, err
	}
	err = sr.checkEpoch(certified.LedgerInfo.Epoch())
	if err != nil {
		return nil, err
	}
	err = sr.checkEpoch(newLedgerInfo.Epoch())
	if err != nil {
		return nil, err
	}

	err = verification.VerifyLedgerInfo(sr.epochState, certified)
	if err != nil {
		return nil, safety.NewInvalidCertificateErrorf("certified ledger info does not verify: %w", err)
	}

	if newLedgerInfo.Round() < certified.LedgerInfo.Round() {
		return nil, safety.NewSafetyViolationErrorf(
			"new ledger info round (%d) regresses the certified round (%d)", newLedgerInfo.Round(), certified.LedgerInfo.Round())
	}
	if newLedgerInfo.Version() < certified.LedgerInfo.Version() {
		return nil, safety.NewSafetyViolationErrorf(
			"new ledger info version (%d) regresses the certified version (%d)", newLedgerInfo.Version(), certified.LedgerInfo.Version())
	}
	if newLedgerInfo.Round() == certified.LedgerInfo.Round() &&
		newLedgerInfo.CommitInfo.BlockID != certified.LedgerInfo.CommitInfo.BlockID {
		return nil, safety.NewSafetyViolationErrorf(
			"new ledger info certifies a different block (%x) for the already certified round %d",
			newLedgerInfo.CommitInfo.BlockID, newLedgerInfo.Round())
	}

	sig, err := signer.Sign(verification.MakeLedgerInfoMessage(newLedgerInfo), signature.NewSigningHasher())
	if err != nil {
		return nil, safety.NewInternalErrorf("could not sign commit vote: %w", err)
	}

	sr.log.Debug().
		Uint64("round", newLedgerInfo.Round()).
		Uint64("version", newLedgerInfo.Version()).
		Msg("commit vote signed")

	return sig, nil
}

// requireSigner checks that the engine is initialized and holds a signing key
// for the current epoch.
func (sr *SafetyRules) requireSigner() (crypto.PrivateKey, error) {
	if !sr.initialized {
		return nil, safety.NewNotInitializedErrorf("no epoch state has been adopted yet")
	}
	if sr.signer == nil {
		return nil, safety.NewNotInitializedErrorf("node is not in the current validator set")
	}
	return sr.signer, nil
}

// checkEpoch checks that the artifact's epoch matches the current epoch.
func (sr *SafetyRules) checkEpoch(epoch uint64) error {
	if epoch != sr.safetyData.Epoch {
		return safety.NewIncorrectEpochError(epoch, sr.safetyData.Epoch)
	}
	return nil
}

