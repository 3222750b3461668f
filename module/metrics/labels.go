package metrics

const (
	namespaceBastion = "bastion"

	subsystemSafety = "safety"
)

const (
	LabelSource    = "source"
	LabelOperation = "operation"
	LabelKind      = "kind"
)

// Sources of operation duration measurements. Internal measurements are taken
// inside the serializer service around the engine itself; external
// measurements are taken by a client and include serialization and transport.
const (
	SourceInternal = "internal"
	SourceExternal = "external"
)

// Operation names used as metric label values across the safety subsystem.
// OperationUnknown labels requests that failed before the operation could be
// identified, such as undecodable request bytes.
const (
	OperationConsensusState               = "consensus_state"
	OperationInitialize                   = "initialize"
	OperationSignProposal                 = "sign_proposal"
	OperationConstructAndSignVote         = "construct_and_sign_vote"
	OperationSignTimeout                  = "sign_timeout"
	OperationSignTimeoutWithQC            = "sign_timeout_with_qc"
	OperationConstructAndSignVoteTwoChain = "construct_and_sign_vote_two_chain"
	OperationSignCommitVote               = "sign_commit_vote"
	OperationUnknown                      = "unknown"
)
