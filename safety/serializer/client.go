package serializer

import (
	"time"

	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module"
	"github.com/bastionlabs/bastion-go/module/metrics"
	"github.com/bastionlabs/bastion-go/safety"
)

// Client exposes a serialized safety rules service as the plain SafetyRules
// interface. Each call is encoded, carried through the transport and decoded
// back into the typed result or error, so callers cannot tell a Client from
// the engine itself apart from latency. Transport failures are returned as
// they are; they carry no safety meaning.
type Client struct {
	metrics   module.SafetyMetrics
	transport Transport
}

var _ safety.SafetyRules = (*Client)(nil)

// NewClient creates a safety rules client speaking through the given
// transport.
func NewClient(collector module.SafetyMetrics, transport Transport) *Client {
	return &Client{
		metrics:   collector,
		transport: transport,
	}
}

func (c *Client) ConsensusState() (*safety.ConsensusState, error) {
	var state safety.ConsensusState
	err := c.roundTrip(metrics.OperationConsensusState, &ConsensusStateRequest{}, &state)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) Initialize(proof *bastion.EpochChangeProof) error {
	return c.roundTrip(metrics.OperationInitialize, &InitializeRequest{Proof: proof}, nil)
}

func (c *Client) SignProposal(block *bastion.BlockData) (crypto.Signature, error) {
	var sig crypto.Signature
	err := c.roundTrip(metrics.OperationSignProposal, &SignProposalRequest{Block: block}, &sig)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func (c *Client) ConstructAndSignVote(proposal *bastion.VoteProposal) (*bastion.Vote, error) {
	var vote bastion.Vote
	err := c.roundTrip(metrics.OperationConstructAndSignVote, &ConstructAndSignVoteRequest{Proposal: proposal}, &vote)
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (c *Client) ConstructAndSignVoteTwoChain(proposal *bastion.VoteProposal, highestTC *bastion.TimeoutCertificate) (*bastion.Vote, error) {
	request := &ConstructAndSignVoteTwoChainRequest{
		Proposal:  proposal,
		HighestTC: highestTC,
	}
	var vote bastion.Vote
	err := c.roundTrip(metrics.OperationConstructAndSignVoteTwoChain, request, &vote)
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (c *Client) SignTimeout(timeout *bastion.Timeout) (crypto.Signature, error) {
	var sig crypto.Signature
	err := c.roundTrip(metrics.OperationSignTimeout, &SignTimeoutRequest{Timeout: timeout}, &sig)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func (c *Client) SignTimeoutWithQC(timeout *bastion.TwoChainTimeout, highestTC *bastion.TimeoutCertificate) (crypto.Signature, error) {
	request := &SignTimeoutWithQCRequest{
		Timeout:   timeout,
		HighestTC: highestTC,
	}
	var sig crypto.Signature
	err := c.roundTrip(metrics.OperationSignTimeoutWithQC, request, &sig)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func (c *Client) SignCommitVote(certified *bastion.LedgerInfoWithSignatures, newLedgerInfo *bastion.LedgerInfo) (crypto.Signature, error) {
	request := &SignCommitVoteRequest{
		Certified:     certified,
		NewLedgerInfo: newLedgerInfo,
	}
	var sig crypto.Signature
	err := c.roundTrip(metrics.OperationSignCommitVote, request, &sig)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// roundTrip encodes one request, sends it through the transport and decodes
// the response into result. The measured duration covers the full trip,
// serialization included.
func (c *Client) roundTrip(operation string, request interface{}, result interface{}) error {
	started := time.Now()
	defer func() {
		c.metrics.OperationDuration(metrics.SourceExternal, operation, time.Since(started))
	}()

	data, err := EncodeRequest(request)
	if err != nil {
		return err
	}
	response, err := c.transport.Request(data)
	if err != nil {
		return err
	}
	return DecodeResponse(response, result)
}
