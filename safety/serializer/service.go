// Package serializer moves safety rules requests and responses across a
// trust boundary as bytes. The Service end owns the engine and answers one
// encoded request at a time under an exclusive lock; the Client end exposes
// the plain SafetyRules interface and reaches a Service through a Transport.
// Engine refusals travel inside the response bytes as typed errors, so the
// kind a caller observes is the kind the engine returned.
package serializer

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bastionlabs/bastion-go/module"
	"github.com/bastionlabs/bastion-go/module/metrics"
	"github.com/bastionlabs/bastion-go/safety"
)

// Service answers encoded safety rules requests. Requests are processed
// strictly one at a time: the lock is held from before the request is
// decoded until after the response is encoded, so the engine underneath
// never sees concurrent access.
type Service struct {
	log     zerolog.Logger
	metrics module.SafetyMetrics
	mu      sync.Mutex
	engine  safety.SafetyRules
}

// NewService wraps a safety rules engine for byte-level access. The service
// must be the only caller of the engine from then on.
func NewService(log zerolog.Logger, collector module.SafetyMetrics, engine safety.SafetyRules) *Service {
	return &Service{
		log:     log.With().Str("component", "safety_serializer").Logger(),
		metrics: collector,
		engine:  engine,
	}
}

// Process handles one encoded request and returns the encoded response. The
// returned error is reserved for responses that cannot be encoded at all;
// refused operations, undecodable requests included, report their typed
// error inside the response bytes.
func (s *Service) Process(request []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	operation, result, operr := s.dispatch(request)
	s.metrics.OperationDuration(metrics.SourceInternal, operation, time.Since(started))

	if operr != nil {
		s.log.Debug().Err(operr).Str("operation", operation).Msg("request refused")
		return EncodeFailure(operr)
	}
	return EncodeSuccess(result)
}

// dispatch decodes one request and runs it against the engine, returning the
// operation name for instrumentation alongside the typed result or error.
func (s *Service) dispatch(data []byte) (string, interface{}, error) {
	request, err := DecodeRequest(data)
	if err != nil {
		s.metrics.OperationRefused(metrics.OperationUnknown, safety.ErrorKindLabel(err))
		return metrics.OperationUnknown, nil, err
	}

	switch r := request.(type) {
	case *ConsensusStateRequest:
		state, err := s.engine.ConsensusState()
		return metrics.OperationConsensusState, state, err
	case *InitializeRequest:
		return metrics.OperationInitialize, nil, s.engine.Initialize(r.Proof)
	case *SignProposalRequest:
		sig, err := s.engine.SignProposal(r.Block)
		return metrics.OperationSignProposal, sig, err
	case *ConstructAndSignVoteRequest:
		vote, err := s.engine.ConstructAndSignVote(r.Proposal)
		return metrics.OperationConstructAndSignVote, vote, err
	case *ConstructAndSignVoteTwoChainRequest:
		vote, err := s.engine.ConstructAndSignVoteTwoChain(r.Proposal, r.HighestTC)
		return metrics.OperationConstructAndSignVoteTwoChain, vote, err
	case *SignTimeoutRequest:
		sig, err := s.engine.SignTimeout(r.Timeout)
		return metrics.OperationSignTimeout, sig, err
	case *SignTimeoutWithQCRequest:
		sig, err := s.engine.SignTimeoutWithQC(r.Timeout, r.HighestTC)
		return metrics.OperationSignTimeoutWithQC, sig, err
	case *SignCommitVoteRequest:
		sig, err := s.engine.SignCommitVote(r.Certified, r.NewLedgerInfo)
		return metrics.OperationSignCommitVote, sig, err
	default:
		return metrics.OperationUnknown, nil, safety.NewSerializationErrorf("unhandled request type (%T)", request)
	}
}
