package pebble

import (
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/safety/helper"
	"github.com/bastionlabs/bastion-go/storage"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func TestBootstrapOnce(t *testing.T) {
	unittest.RunWithPebbleDB(t, func(db *pebble.DB) {
		store := NewStore(db)

		_, err := store.Epoch()
		require.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.TrustedEpochState()
		require.ErrorIs(t, err, storage.ErrNotFound)

		committee := helper.NewCommittee(5, 4)
		err = store.Bootstrap(&safety.SafetyData{
			Epoch:          5,
			LastVotedRound: 10,
			PreferredRound: 8,
		}, committee.State)
		require.NoError(t, err)

		epoch, err := store.Epoch()
		require.NoError(t, err)
		require.Equal(t, uint64(5), epoch)
		lastVoted, err := store.LastVotedRound()
		require.NoError(t, err)
		require.Equal(t, uint64(10), lastVoted)
		preferred, err := store.PreferredRound()
		require.NoError(t, err)
		require.Equal(t, uint64(8), preferred)
		_, err = store.LastVote()
		require.ErrorIs(t, err, storage.ErrNotFound)
		state, err := store.TrustedEpochState()
		require.NoError(t, err)
		require.Equal(t, uint64(5), state.Epoch)
		require.Len(t, state.Validators, 4)

		err = store.Bootstrap(&safety.SafetyData{Epoch: 9}, helper.NewCommittee(9, 4).State)
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		epoch, err = store.Epoch()
		require.NoError(t, err)
		require.Equal(t, uint64(5), epoch)
	})
}

func TestFieldUpdates(t *testing.T) {
	unittest.RunWithPebbleDB(t, func(db *pebble.DB) {
		store := NewStore(db)
		committee := helper.NewCommittee(5, 4)
		err := store.Bootstrap(&safety.SafetyData{Epoch: 5, LastVotedRound: 10, PreferredRound: 8}, committee.State)
		require.NoError(t, err)

		require.NoError(t, store.SetLastVotedRound(11))
		lastVoted, err := store.LastVotedRound()
		require.NoError(t, err)
		require.Equal(t, uint64(11), lastVoted)

		vote := &bastion.Vote{
			VoteData: bastion.VoteData{
				Proposed: helper.MakeBlockInfo(helper.WithInfoEpoch(5), helper.WithInfoRound(11)),
				Parent:   helper.MakeBlockInfo(helper.WithInfoEpoch(5), helper.WithInfoRound(10)),
			},
			AuthorID: unittest.IdentifierFixture(),
			SigData:  unittest.SignatureFixture(),
		}
		require.NoError(t, store.SetLastVote(vote))
		persisted, err := store.LastVote()
		require.NoError(t, err)
		require.Equal(t, vote, persisted)

		require.NoError(t, store.SetLastVote(nil))
		_, err = store.LastVote()
		require.ErrorIs(t, err, storage.ErrNotFound)

		key := unittest.KeyFixture(bastion.SigningAlgorithm)
		require.NoError(t, store.SetSignerForEpoch(6, key))
		loaded, err := store.SignerForEpoch(6)
		require.NoError(t, err)
		require.True(t, loaded.Equals(key))
		_, err = store.SignerForEpoch(7)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestStateSurvivesReopen(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		committee := helper.NewCommittee(5, 4)

		db := unittest.PebbleDB(t, dir)
		store := NewStore(db)
		err := store.Bootstrap(&safety.SafetyData{Epoch: 5, LastVotedRound: 10, PreferredRound: 8}, committee.State)
		require.NoError(t, err)
		require.NoError(t, store.SetEpoch(6))
		require.NoError(t, store.SetLastVotedRound(0))
		require.NoError(t, store.SetPreferredRound(0))
		require.NoError(t, db.Close())

		db = unittest.PebbleDB(t, dir)
		defer db.Close()
		store = NewStore(db)

		epoch, err := store.Epoch()
		require.NoError(t, err)
		require.Equal(t, uint64(6), epoch)
		lastVoted, err := store.LastVotedRound()
		require.NoError(t, err)
		require.Zero(t, lastVoted)

		err = store.Bootstrap(&safety.SafetyData{Epoch: 9}, committee.State)
		require.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}
