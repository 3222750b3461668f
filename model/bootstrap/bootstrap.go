// Package bootstrap defines the canonical model and encoding for the root
// file that provisions a signer's persistent safety store: the trusted epoch
// state plus the node's per-epoch consensus keys.
package bootstrap

import (
	"fmt"

	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/safety"
)

// SignerKey is one consensus private key, bound to the epoch it signs for.
type SignerKey struct {
	Epoch uint64
	Key   []byte
}

// SignerKeyFor encodes a private key into the signer key entry for an epoch.
func SignerKeyFor(epoch uint64, key crypto.PrivateKey) SignerKey {
	return SignerKey{
		Epoch: epoch,
		Key:   key.Encode(),
	}
}

// PrivateKey decodes the raw key bytes into a usable private key.
func (sk SignerKey) PrivateKey() (crypto.PrivateKey, error) {
	key, err := crypto.DecodePrivateKey(bastion.SigningAlgorithm, sk.Key)
	if err != nil {
		return nil, fmt.Errorf("could not decode signer key for epoch %d: %w", sk.Epoch, err)
	}
	return key, nil
}

// Root is the trusted starting point of one signer: the epoch state it trusts
// without proof and the consensus keys it will sign with, keyed by epoch.
type Root struct {
	Trusted    *bastion.EpochState
	SignerKeys []SignerKey
}

// Validate checks that the root is complete enough to bootstrap a store.
func (r *Root) Validate() error {
	if r.Trusted == nil {
		return fmt.Errorf("root has no trusted epoch state")
	}
	if len(r.Trusted.Validators) == 0 {
		return fmt.Errorf("trusted epoch state has no validators")
	}
	if !r.Trusted.Validators.Sorted() {
		return fmt.Errorf("trusted epoch state validators are not in canonical order")
	}
	for _, sk := range r.SignerKeys {
		_, err := sk.PrivateKey()
		if err != nil {
			return fmt.Errorf("invalid signer key: %w", err)
		}
	}
	return nil
}

// SafetyData returns the initial safety state for the trusted epoch: no round
// voted, nothing preferred, no last vote.
func (r *Root) SafetyData() *safety.SafetyData {
	return &safety.SafetyData{
		Epoch:          r.Trusted.Epoch,
		LastVotedRound: 0,
		PreferredRound: 0,
	}
}

func (r *Root) Encode() ([]byte, error) {
	return bastion.EncodeCanonical(r)
}

func DecodeRoot(raw []byte, root *Root) error {
	return bastion.DecodeCanonical(raw, root)
}
