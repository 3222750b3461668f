package serializer

import (
	"github.com/pkg/errors"
)

// Request codes identify the requested operation on the wire. The code is the
// first byte of an encoded request; the rest is the canonical CBOR encoding
// of the matching request struct. The code space is closed: codes outside
// (CodeMin, CodeMax) are rejected on decode.
const (
	CodeMin uint8 = iota + 1

	CodeConsensusState
	CodeInitialize
	CodeSignProposal
	CodeConstructAndSignVote
	CodeConstructAndSignVoteTwoChain
	CodeSignTimeout
	CodeSignTimeoutWithQC
	CodeSignCommitVote

	CodeMax
)

// Response status bytes. The status is the first byte of an encoded
// response; the rest is the canonical CBOR encoding of either the
// operation's result or an error envelope.
const (
	statusSuccess uint8 = iota + 1
	statusFailure
)

// Error kind bytes carried inside a failure envelope. Each byte corresponds
// to one typed error of the safety package, so the kind survives the trip
// across the wire.
const (
	kindNotInitialized uint8 = iota + 1
	kindIncorrectEpoch
	kindInvalidEpochChangeProof
	kindSafetyViolation
	kindInvalidCertificate
	kindSerialization
	kindSecureStorage
	kindInternal
)

// requestCode returns the wire code of a request struct.
func requestCode(request interface{}) (uint8, error) {
	switch request.(type) {
	case *ConsensusStateRequest:
		return CodeConsensusState, nil
	case *InitializeRequest:
		return CodeInitialize, nil
	case *SignProposalRequest:
		return CodeSignProposal, nil
	case *ConstructAndSignVoteRequest:
		return CodeConstructAndSignVote, nil
	case *ConstructAndSignVoteTwoChainRequest:
		return CodeConstructAndSignVoteTwoChain, nil
	case *SignTimeoutRequest:
		return CodeSignTimeout, nil
	case *SignTimeoutWithQCRequest:
		return CodeSignTimeoutWithQC, nil
	case *SignCommitVoteRequest:
		return CodeSignCommitVote, nil
	default:
		return 0, errors.Errorf("unknown request type (%T)", request)
	}
}

// requestForCode returns an empty request struct for a wire code, ready to
// decode into.
func requestForCode(code uint8) (interface{}, error) {
	switch code {
	case CodeConsensusState:
		return &ConsensusStateRequest{}, nil
	case CodeInitialize:
		return &InitializeRequest{}, nil
	case CodeSignProposal:
		return &SignProposalRequest{}, nil
	case CodeConstructAndSignVote:
		return &ConstructAndSignVoteRequest{}, nil
	case CodeConstructAndSignVoteTwoChain:
		return &ConstructAndSignVoteTwoChainRequest{}, nil
	case CodeSignTimeout:
		return &SignTimeoutRequest{}, nil
	case CodeSignTimeoutWithQC:
		return &SignTimeoutWithQCRequest{}, nil
	case CodeSignCommitVote:
		return &SignCommitVoteRequest{}, nil
	default:
		return nil, errors.Errorf("unknown request code (%d)", code)
	}
}
