// Package helper provides fixtures for testing the safety rules and the
// components around them: committees with real signing keys, signed
// certificates, and an in-memory store.
package helper

import (
	"fmt"

	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module/signature"
	"github.com/bastionlabs/bastion-go/safety/verification"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

// Committee is a validator set fixture holding the private keys of all its
// members, so tests can produce genuinely verifiable certificates.
type Committee struct {
	State *bastion.EpochState
	Keys  map[bastion.Identifier]crypto.PrivateKey
}

// NewCommittee creates a committee of the given size for the given epoch,
// with fresh keys and unit voting weight for every member.
func NewCommittee(epoch uint64, size int) *Committee {
	keys := make(map[bastion.Identifier]crypto.PrivateKey, size)
	validators := make(bastion.ValidatorList, 0, size)
	for i := 0; i < size; i++ {
		key := unittest.KeyFixture(bastion.SigningAlgorithm)
		nodeID := unittest.IdentifierFixture()
		validators = append(validators, &bastion.Validator{
			NodeID: nodeID,
			PubKey: key.PublicKey(),
			Weight: 1,
		})
		keys[nodeID] = key
	}
	return &Committee{
		State: &bastion.EpochState{
			Epoch:      epoch,
			Validators: validators.Sort(),
		},
		Keys: keys,
	}
}

// Epoch returns the committee's epoch.
func (c *Committee) Epoch() uint64 {
	return c.State.Epoch
}

// NextCommittee returns a committee for the next epoch with the same members
// and keys.
func (c *Committee) NextCommittee() *Committee {
	return &Committee{
		State: &bastion.EpochState{
			Epoch:      c.Epoch() + 1,
			Validators: c.State.Validators,
		},
		Keys: c.Keys,
	}
}

// Member returns the node ID of the i-th member in canonical order.
func (c *Committee) Member(i int) bastion.Identifier {
	return c.State.Validators[i].NodeID
}

// KeyFor returns the private key of the given member.
func (c *Committee) KeyFor(nodeID bastion.Identifier) crypto.PrivateKey {
	key, ok := c.Keys[nodeID]
	if !ok {
		panic(fmt.Sprintf("no key for node %x", nodeID))
	}
	return key
}

// LeaderForRound returns the node ID of the proposer for the given round.
func (c *Committee) LeaderForRound(round uint64) bastion.Identifier {
	return c.State.LeaderForRound(round).NodeID
}

// RoundLedBy returns a round at or after the given round in which the given
// member is the proposer.
func (c *Committee) RoundLedBy(nodeID bastion.Identifier, after uint64) uint64 {
	n := uint64(len(c.State.Validators))
	for round := after; round < after+n; round++ {
		if c.LeaderForRound(round) == nodeID {
			return round
		}
	}
	panic(fmt.Sprintf("node %x is not a committee member", nodeID))
}

// Aggregate signs the message with a quorum of the committee's members in
// canonical order.
func (c *Committee) Aggregate(msg []byte) bastion.AggregatedSignature {
	quorum := int(c.State.Validators.QuorumThreshold())
	signerIDs := make(bastion.IdentifierList, 0, quorum)
	sigs := make([]crypto.Signature, 0, quorum)
	for _, validator := range c.State.Validators[:quorum] {
		sig, err := c.KeyFor(validator.NodeID).Sign(msg, signature.NewSigningHasher())
		if err != nil {
			panic(err)
		}
		signerIDs = append(signerIDs, validator.NodeID)
		sigs = append(sigs, sig)
	}
	agg, err := bastion.NewAggregatedSignature(signerIDs, sigs)
	if err != nil {
		panic(err)
	}
	return *agg
}

// QuorumCertificate builds a quorum certificate for the given vote data,
// signed by a quorum of the committee.
func (c *Committee) QuorumCertificate(voteData bastion.VoteData) *bastion.QuorumCertificate {
	return &bastion.QuorumCertificate{
		VoteData:            voteData,
		AggregatedSignature: c.Aggregate(verification.MakeVoteMessage(&voteData)),
	}
}

// QuorumCertificateForRound builds a quorum certificate certifying an
// arbitrary block at the given round of the committee's epoch.
func (c *Committee) QuorumCertificateForRound(round uint64) *bastion.QuorumCertificate {
	parentRound := uint64(0)
	if round > 0 {
		parentRound = round - 1
	}
	voteData := bastion.VoteData{
		Proposed: MakeBlockInfo(
			WithInfoEpoch(c.Epoch()),
			WithInfoRound(round),
		),
		Parent: MakeBlockInfo(
			WithInfoEpoch(c.Epoch()),
			WithInfoRound(parentRound),
		),
	}
	return c.QuorumCertificate(voteData)
}

// TimeoutCertificate builds a timeout certificate for the given round, signed
// by a quorum of the committee.
func (c *Committee) TimeoutCertificate(round uint64, highestQCRound uint64) *bastion.TimeoutCertificate {
	return &bastion.TimeoutCertificate{
		Epoch:               c.Epoch(),
		Round:               round,
		HighestQCRound:      highestQCRound,
		AggregatedSignature: c.Aggregate(verification.MakeTimeoutMessage(c.Epoch(), round)),
	}
}

// LedgerInfoWithSignatures signs the ledger info with a quorum of the
// committee.
func (c *Committee) LedgerInfoWithSignatures(li *bastion.LedgerInfo) *bastion.LedgerInfoWithSignatures {
	return &bastion.LedgerInfoWithSignatures{
		LedgerInfo: *li,
		Signatures: c.Aggregate(verification.MakeLedgerInfoMessage(li)),
	}
}

// EpochChangeProof builds a proof chain across the given committees: each
// committee signs the ledger info that ends its own epoch and announces the
// next committee's epoch state. At least two committees are required, and
// their epochs must be consecutive.
func EpochChangeProof(committees ...*Committee) *bastion.EpochChangeProof {
	if len(committees) < 2 {
		panic("an epoch change proof needs a source and a target committee")
	}
	lis := make([]*bastion.LedgerInfoWithSignatures, 0, len(committees)-1)
	for i := 0; i+1 < len(committees); i++ {
		current, next := committees[i], committees[i+1]
		if next.Epoch() != current.Epoch()+1 {
			panic(fmt.Sprintf("committee epochs must be consecutive, got %d then %d", current.Epoch(), next.Epoch()))
		}
		li := MakeLedgerInfo(
			WithLedgerInfoCommit(MakeBlockInfo(
				WithInfoEpoch(current.Epoch()),
				WithInfoRound(100+uint64(i)),
				WithInfoVersion(1000+uint64(i)),
				WithInfoNextEpochState(next.State),
			)),
		)
		lis = append(lis, current.LedgerInfoWithSignatures(li))
	}
	return &bastion.EpochChangeProof{LedgerInfos: lis}
}
