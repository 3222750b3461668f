package badger

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/safety/helper"
	"github.com/bastionlabs/bastion-go/storage"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func voteFixture(round uint64) *bastion.Vote {
	return &bastion.Vote{
		VoteData: bastion.VoteData{
			Proposed: helper.MakeBlockInfo(helper.WithInfoEpoch(5), helper.WithInfoRound(round)),
			Parent:   helper.MakeBlockInfo(helper.WithInfoEpoch(5), helper.WithInfoRound(round-1)),
		},
		AuthorID: unittest.IdentifierFixture(),
		SigData:  unittest.SignatureFixture(),
	}
}

func TestBootstrapOnce(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := NewStore(db)

		// Nothing is readable before bootstrap.
		_, err := store.Epoch()
		require.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.LastVotedRound()
		require.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.PreferredRound()
		require.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.LastVote()
		require.ErrorIs(t, err, storage.ErrNotFound)
		_, err = store.TrustedEpochState()
		require.ErrorIs(t, err, storage.ErrNotFound)

		trusted := helper.NewCommittee(5, 4).State
		vote := voteFixture(10)
		err = store.Bootstrap(&safety.SafetyData{
			Epoch:          5,
			LastVotedRound: 10,
			PreferredRound: 8,
			LastVote:       vote,
		}, trusted)
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
		persisted, err := store.LastVote()
		require.NoError(t, err)
		require.Equal(t, vote, persisted)

		// A second bootstrap must fail and leave the first state untouched.
		err = store.Bootstrap(&safety.SafetyData{Epoch: 9}, helper.NewCommittee(9, 4).State)
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		epoch, err = store.Epoch()
		require.NoError(t, err)
		require.Equal(t, uint64(5), epoch)
		state, err := store.TrustedEpochState()
		require.NoError(t, err)
		require.Equal(t, uint64(5), state.Epoch)
	})
}

func TestFieldUpdates(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := NewStore(db)
		committee := helper.NewCommittee(5, 4)
		err := store.Bootstrap(&safety.SafetyData{Epoch: 5, LastVotedRound: 10, PreferredRound: 8}, committee.State)
		require.NoError(t, err)

		require.NoError(t, store.SetEpoch(6))
		epoch, err := store.Epoch()
		require.NoError(t, err)
		require.Equal(t, uint64(6), epoch)

		require.NoError(t, store.SetLastVotedRound(11))
		lastVoted, err := store.LastVotedRound()
		require.NoError(t, err)
		require.Equal(t, uint64(11), lastVoted)

		require.NoError(t, store.SetPreferredRound(9))
		preferred, err := store.PreferredRound()
		require.NoError(t, err)
		require.Equal(t, uint64(9), preferred)

		vote := voteFixture(11)
		require.NoError(t, store.SetLastVote(vote))
		persisted, err := store.LastVote()
		require.NoError(t, err)
		require.Equal(t, vote, persisted)

		// Clearing the vote is idempotent.
		require.NoError(t, store.SetLastVote(nil))
		_, err = store.LastVote()
		require.ErrorIs(t, err, storage.ErrNotFound)
		require.NoError(t, store.SetLastVote(nil))

		// Replacing the trusted epoch state keeps the validator keys usable.
		next := committee.NextCommittee()
		require.NoError(t, store.SetTrustedEpochState(next.State))
		state, err := store.TrustedEpochState()
		require.NoError(t, err)
		require.Equal(t, uint64(6), state.Epoch)
		require.Equal(t, committee.State.Validators.NodeIDs(), state.Validators.NodeIDs())
		require.True(t, state.Validators[0].PubKey.Equals(next.State.Validators[0].PubKey))
	})
}

func TestSignerKeys(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := NewStore(db)

		key5 := unittest.KeyFixture(bastion.SigningAlgorithm)
		key6 := unittest.KeyFixture(bastion.SigningAlgorithm)
		require.NoError(t, store.SetSignerForEpoch(5, key5))
		require.NoError(t, store.SetSignerForEpoch(6, key6))

		loaded, err := store.SignerForEpoch(5)
		require.NoError(t, err)
		require.True(t, loaded.Equals(key5))
		loaded, err = store.SignerForEpoch(6)
		require.NoError(t, err)
		require.True(t, loaded.Equals(key6))

		_, err = store.SignerForEpoch(7)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestStateSurvivesReopen(t *testing.T) {
	unittest.RunWithTempDir(t, func(dir string) {
		committee := helper.NewCommittee(5, 4)
		vote := voteFixture(11)
		key := unittest.KeyFixture(bastion.SigningAlgorithm)

		db := unittest.BadgerDB(t, dir)
		store := NewStore(db)
		err := store.Bootstrap(&safety.SafetyData{Epoch: 5, LastVotedRound: 10, PreferredRound: 8}, committee.State)
		require.NoError(t, err)
		require.NoError(t, store.SetLastVotedRound(11))
		require.NoError(t, store.SetLastVote(vote))
		require.NoError(t, store.SetSignerForEpoch(5, key))
		require.NoError(t, db.Close())

		db = unittest.BadgerDB(t, dir)
		defer db.Close()
		store = NewStore(db)

		epoch, err := store.Epoch()
		require.NoError(t, err)
		require.Equal(t, uint64(5), epoch)
		lastVoted, err := store.LastVotedRound()
		require.NoError(t, err)
		require.Equal(t, uint64(11), lastVoted)
		persisted, err := store.LastVote()
		require.NoError(t, err)
		require.Equal(t, vote, persisted)
		loaded, err := store.SignerForEpoch(5)
		require.NoError(t, err)
		require.True(t, loaded.Equals(key))

		// Still bootstrapped after the restart.
		err = store.Bootstrap(&safety.SafetyData{Epoch: 9}, committee.State)
		require.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}
