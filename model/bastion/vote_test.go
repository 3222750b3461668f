package bastion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func validVoteData() bastion.VoteData {
	return bastion.VoteData{
		Proposed: bastion.BlockInfo{
			Epoch:   5,
			Round:   11,
			BlockID: unittest.IdentifierFixture(),
			Version: 21,
		},
		Parent: bastion.BlockInfo{
			Epoch:   5,
			Round:   10,
			BlockID: unittest.IdentifierFixture(),
			Version: 20,
		},
	}
}

func TestVoteDataValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		vd := validVoteData()
		require.NoError(t, vd.Validate())
	})

	t.Run("equal versions are allowed", func(t *testing.T) {
		vd := validVoteData()
		vd.Proposed.Version = vd.Parent.Version
		require.NoError(t, vd.Validate())
	})

	t.Run("rejects mismatched epochs", func(t *testing.T) {
		vd := validVoteData()
		vd.Parent.Epoch = 4
		require.ErrorContains(t, vd.Validate(), "must match parent epoch")
	})

	t.Run("rejects a round equal to the parent round", func(t *testing.T) {
		vd := validVoteData()
		vd.Proposed.Round = vd.Parent.Round
		require.ErrorContains(t, vd.Validate(), "must be greater than parent round")
	})

	t.Run("rejects a round below the parent round", func(t *testing.T) {
		vd := validVoteData()
		vd.Proposed.Round = vd.Parent.Round - 1
		require.ErrorContains(t, vd.Validate(), "must be greater than parent round")
	})

	t.Run("rejects a version below the parent version", func(t *testing.T) {
		vd := validVoteData()
		vd.Proposed.Version = vd.Parent.Version - 1
		require.ErrorContains(t, vd.Validate(), "must not be below parent version")
	})
}

func TestNewVote(t *testing.T) {
	untrusted := bastion.UntrustedVote{
		VoteData: validVoteData(),
		AuthorID: unittest.IdentifierFixture(),
		SigData:  unittest.SignatureFixture(),
	}

	t.Run("valid", func(t *testing.T) {
		vote, err := bastion.NewVote(untrusted)
		require.NoError(t, err)
		assert.Equal(t, untrusted.VoteData, vote.VoteData)
		assert.Equal(t, untrusted.AuthorID, vote.AuthorID)
		assert.Equal(t, untrusted.SigData, vote.SigData)
		assert.Equal(t, uint64(5), vote.Epoch())
		assert.Equal(t, uint64(11), vote.Round())
	})

	t.Run("rejects invalid vote data", func(t *testing.T) {
		invalid := untrusted
		invalid.VoteData.Parent.Epoch = 4
		_, err := bastion.NewVote(invalid)
		require.ErrorContains(t, err, "invalid vote data")
	})

	t.Run("rejects a zero author", func(t *testing.T) {
		invalid := untrusted
		invalid.AuthorID = bastion.ZeroID
		_, err := bastion.NewVote(invalid)
		require.ErrorContains(t, err, "AuthorID must not be empty")
	})

	t.Run("rejects empty signature data", func(t *testing.T) {
		invalid := untrusted
		invalid.SigData = nil
		_, err := bastion.NewVote(invalid)
		require.ErrorContains(t, err, "SigData must not be empty")
	})
}

func TestVoteID(t *testing.T) {
	untrusted := bastion.UntrustedVote{
		VoteData: validVoteData(),
		AuthorID: unittest.IdentifierFixture(),
		SigData:  unittest.SignatureFixture(),
	}
	one, err := bastion.NewVote(untrusted)
	require.NoError(t, err)
	two, err := bastion.NewVote(untrusted)
	require.NoError(t, err)
	assert.Equal(t, one.ID(), two.ID())

	untrusted.VoteData.Proposed.Round++
	untrusted.VoteData.Parent.Round++
	other, err := bastion.NewVote(untrusted)
	require.NoError(t, err)
	assert.NotEqual(t, one.ID(), other.ID())
}
