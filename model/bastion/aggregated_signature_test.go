package bastion_test

import (
	"testing"

	"github.com/onflow/flow-go/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func TestNewAggregatedSignature(t *testing.T) {
	signerIDs := unittest.IdentifierListFixture(3)
	signatures := unittest.SignaturesFixture(3)

	t.Run("valid", func(t *testing.T) {
		agg, err := bastion.NewAggregatedSignature(signerIDs, signatures)
		require.NoError(t, err)
		assert.Equal(t, signerIDs, agg.SignerIDs)
		assert.Equal(t, signatures, agg.Signatures)
	})

	t.Run("rejects an empty signer list", func(t *testing.T) {
		_, err := bastion.NewAggregatedSignature(nil, nil)
		require.ErrorContains(t, err, "signer list must not be empty")
	})

	t.Run("rejects mismatched list lengths", func(t *testing.T) {
		_, err := bastion.NewAggregatedSignature(signerIDs, signatures[:2])
		require.ErrorContains(t, err, "must match signature list length")
	})

	t.Run("rejects an empty signature", func(t *testing.T) {
		withEmpty := []crypto.Signature{signatures[0], {}, signatures[2]}
		_, err := bastion.NewAggregatedSignature(signerIDs, withEmpty)
		require.ErrorContains(t, err, "signature 1")
	})
}

func TestAggregatedSignatureSigners(t *testing.T) {
	signerIDs := unittest.IdentifierListFixture(2)
	agg := bastion.AggregatedSignature{
		SignerIDs:  bastion.IdentifierList{signerIDs[0], signerIDs[1], signerIDs[0]},
		Signatures: unittest.SignaturesFixture(3),
	}

	assert.Equal(t, 2, agg.CardinalitySignerSet())
	assert.True(t, agg.HasSigner(signerIDs[0]))
	assert.False(t, agg.HasSigner(unittest.IdentifierFixture()))
}
