package signature

import (
	"fmt"

	"github.com/onflow/flow-go/crypto/hash"
)

// List of domain separation tags for protocol signatures.
//
// Protocol-level signatures use the ECDSA P-256 scheme over SHA3-256.
// To scope a signature to a specific sub-protocol, the signed message is
// prefixed with a fixed-width domain tag before hashing, so that a signature
// produced for one message type can never be replayed as another.

// Protocol prefix
const protocolPrefix = "BASTION-"

// Protocol version
const protocolVersion = "-V00"

// DomainTagLength is the fixed width all domain tags are padded to. A fixed
// width keeps the prefix unambiguous: no padded tag can be the prefix of
// another padded tag followed by message bytes.
const DomainTagLength = 32

func tag(domain string) [DomainTagLength]byte {
	return paddedDomainTag(protocolPrefix + domain + protocolVersion)
}

func paddedDomainTag(s string) [DomainTagLength]byte {
	var tag [DomainTagLength]byte
	if len(s) > DomainTagLength {
		panic(fmt.Sprintf("domain tag %s must be %d characters or less", s, DomainTagLength))
	}
	copy(tag[:], s)
	return tag
}

var (
	// ProposalTag is used for proposer signatures on block proposals
	ProposalTag = tag("Proposal")
	// VoteTag is used for votes on block proposals and their aggregation
	// into quorum certificates
	VoteTag = tag("Vote")
	// TimeoutTag is used for round timeout declarations and their
	// aggregation into timeout certificates
	TimeoutTag = tag("Timeout")
	// LedgerInfoTag is used for commit votes over ledger infos, including
	// the epoch-ending ledger infos that make up epoch change proofs
	LedgerInfoTag = tag("Ledger_Info")
)

// NewSigningHasher returns the hasher to be used for protocol signing and
// verifying, abstracting the hasher details from the protocol logic.
// Hashers are stateful, so a new instance is returned for every use.
func NewSigningHasher() hash.Hasher {
	return hash.NewSHA3_256()
}
