package bastion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func TestNewQuorumCertificate(t *testing.T) {
	untrusted := bastion.UntrustedQuorumCertificate{
		VoteData: validVoteData(),
		AggregatedSignature: bastion.AggregatedSignature{
			SignerIDs:  unittest.IdentifierListFixture(3),
			Signatures: unittest.SignaturesFixture(3),
		},
	}

	t.Run("valid", func(t *testing.T) {
		qc, err := bastion.NewQuorumCertificate(untrusted)
		require.NoError(t, err)
		assert.Equal(t, untrusted.VoteData.Proposed, qc.CertifiedBlock())
		assert.Equal(t, untrusted.VoteData.Parent, qc.ParentBlock())
		assert.Equal(t, uint64(5), qc.Epoch())
		assert.Equal(t, uint64(11), qc.Round())
	})

	t.Run("rejects invalid vote data", func(t *testing.T) {
		invalid := untrusted
		invalid.VoteData.Proposed.Round = invalid.VoteData.Parent.Round
		_, err := bastion.NewQuorumCertificate(invalid)
		require.ErrorContains(t, err, "invalid vote data")
	})

	t.Run("rejects an empty signer list", func(t *testing.T) {
		invalid := untrusted
		invalid.AggregatedSignature = bastion.AggregatedSignature{}
		_, err := bastion.NewQuorumCertificate(invalid)
		require.ErrorContains(t, err, "signer list must not be empty")
	})

	t.Run("rejects mismatched signer and signature lists", func(t *testing.T) {
		invalid := untrusted
		invalid.AggregatedSignature = bastion.AggregatedSignature{
			SignerIDs:  unittest.IdentifierListFixture(3),
			Signatures: unittest.SignaturesFixture(2),
		}
		_, err := bastion.NewQuorumCertificate(invalid)
		require.ErrorContains(t, err, "must match signature list length")
	})
}
