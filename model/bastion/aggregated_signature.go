package bastion

import (
	"fmt"

	"github.com/onflow/flow-go/crypto"
)

// AggregatedSignature contains the signatures of a set of validators over the
// same message, together with the identifiers of the signers. Signatures and
// signer IDs are parallel lists: Signatures[i] was produced by SignerIDs[i].
type AggregatedSignature struct {
	SignerIDs  IdentifierList
	Signatures []crypto.Signature
}

// NewAggregatedSignature constructs an aggregated signature from parallel
// signer and signature lists, enforcing structural validity.
func NewAggregatedSignature(signerIDs IdentifierList, signatures []crypto.Signature) (*AggregatedSignature, error) {
	if len(signerIDs) == 0 {
		return nil, fmt.Errorf("signer list must not be empty")
	}
	if len(signerIDs) != len(signatures) {
		return nil, fmt.Errorf("signer list length (%d) must match signature list length (%d)", len(signerIDs), len(signatures))
	}
	for i, sig := range signatures {
		if len(sig) == 0 {
			return nil, fmt.Errorf("signature %d for signer %x is empty", i, signerIDs[i])
		}
	}
	return &AggregatedSignature{
		SignerIDs:  signerIDs,
		Signatures: signatures,
	}, nil
}

// CardinalitySignerSet returns the number of _distinct_ signer IDs in the
// aggregated signature. We explicitly de-duplicate here to prevent repetition
// attacks.
func (a *AggregatedSignature) CardinalitySignerSet() int {
	return len(a.SignerIDs.Lookup())
}

// HasSigner returns true if and only if the given signer contributed to this
// aggregated signature.
func (a *AggregatedSignature) HasSigner(signerID Identifier) bool {
	return a.SignerIDs.Contains(signerID)
}
