package bootstrap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/model/bootstrap"
	"github.com/bastionlabs/bastion-go/safety/helper"
)

func rootFixture(t *testing.T) (*bootstrap.Root, *helper.Committee) {
	committee := helper.NewCommittee(5, 4)
	signer := committee.Member(0)
	root := &bootstrap.Root{
		Trusted: committee.State,
		SignerKeys: []bootstrap.SignerKey{
			bootstrap.SignerKeyFor(5, committee.KeyFor(signer)),
			bootstrap.SignerKeyFor(6, committee.KeyFor(signer)),
		},
	}
	require.NoError(t, root.Validate())
	return root, committee
}

func TestRootEncoding(t *testing.T) {
	root, committee := rootFixture(t)

	raw, err := root.Encode()
	require.NoError(t, err)

	var decoded bootstrap.Root
	err = bootstrap.DecodeRoot(raw, &decoded)
	require.NoError(t, err)

	require.Equal(t, uint64(5), decoded.Trusted.Epoch)
	require.Len(t, decoded.Trusted.Validators, 4)
	for i, validator := range decoded.Trusted.Validators {
		require.Equal(t, committee.State.Validators[i].NodeID, validator.NodeID)
		require.True(t, committee.State.Validators[i].PubKey.Equals(validator.PubKey))
	}

	require.Len(t, decoded.SignerKeys, 2)
	key, err := decoded.SignerKeys[0].PrivateKey()
	require.NoError(t, err)
	require.True(t, key.Equals(committee.KeyFor(committee.Member(0))))
}

func TestRootValidate(t *testing.T) {
	t.Run("rejects a missing trusted epoch state", func(t *testing.T) {
		root := &bootstrap.Root{}
		require.ErrorContains(t, root.Validate(), "no trusted epoch state")
	})

	t.Run("rejects an empty validator set", func(t *testing.T) {
		root := &bootstrap.Root{Trusted: &bastion.EpochState{Epoch: 5}}
		require.ErrorContains(t, root.Validate(), "no validators")
	})

	t.Run("rejects validators out of canonical order", func(t *testing.T) {
		root, _ := rootFixture(t)
		validators := root.Trusted.Validators
		for i, j := 0, len(validators)-1; i < j; i, j = i+1, j-1 {
			validators[i], validators[j] = validators[j], validators[i]
		}
		require.ErrorContains(t, root.Validate(), "not in canonical order")
	})

	t.Run("rejects an undecodable signer key", func(t *testing.T) {
		root, _ := rootFixture(t)
		root.SignerKeys[1].Key = []byte{0x01, 0x02}
		require.ErrorContains(t, root.Validate(), "invalid signer key")
	})
}

func TestRootSafetyData(t *testing.T) {
	root, _ := rootFixture(t)
	data := root.SafetyData()
	require.Equal(t, uint64(5), data.Epoch)
	require.Zero(t, data.LastVotedRound)
	require.Zero(t, data.PreferredRound)
	require.Nil(t, data.LastVote)
}
