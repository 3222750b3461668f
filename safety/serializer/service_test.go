package serializer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module/metrics"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/safety/helper"
	"github.com/bastionlabs/bastion-go/safety/safetyrules"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

// createService builds a serializing service around an engine for the first
// member of a fresh four-node committee at epoch 5, bootstrapped with last
// voted round 10 and preferred round 8 and recovered from the store.
func createService(t *testing.T) (*helper.Committee, *helper.MemStore, *Service) {
	committee := helper.NewCommittee(5, 4)
	me := committee.Member(0)

	store := helper.NewMemStore()
	err := store.Bootstrap(&safety.SafetyData{
		Epoch:          5,
		LastVotedRound: 10,
		PreferredRound: 8,
	}, committee.State)
	require.NoError(t, err)
	err = store.SetSignerForEpoch(5, committee.KeyFor(me))
	require.NoError(t, err)

	engine := safetyrules.New(unittest.Logger(), metrics.NewNoopCollector(), store, me)
	require.NoError(t, engine.Initialize(nil))

	return committee, store, NewService(unittest.Logger(), metrics.NewNoopCollector(), engine)
}

// voteRequest encodes a vote request for the given round justified by a
// quorum certificate for the given QC round, in the committee's epoch.
func voteRequest(t *testing.T, committee *helper.Committee, round uint64, qcRound uint64) []byte {
	proposal := helper.MakeVoteProposal(helper.WithProposalBlock(helper.MakeBlockData(
		helper.WithBlockEpoch(committee.Epoch()),
		helper.WithBlockRound(round),
		helper.WithBlockQC(committee.QuorumCertificateForRound(qcRound)),
	)))
	data, err := EncodeRequest(&ConstructAndSignVoteRequest{Proposal: proposal})
	require.NoError(t, err)
	return data
}

func TestServiceProcess(t *testing.T) {
	t.Run("answers a successful operation inside the response", func(t *testing.T) {
		_, _, service := createService(t)

		request, err := EncodeRequest(&ConsensusStateRequest{})
		require.NoError(t, err)
		response, err := service.Process(request)
		require.NoError(t, err)

		var state safety.ConsensusState
		require.NoError(t, DecodeResponse(response, &state))
		require.Equal(t, uint64(5), state.Epoch)
		require.Equal(t, uint64(10), state.LastVotedRound)
		require.Equal(t, uint64(8), state.PreferredRound)
		require.True(t, state.InValidatorSet)
	})

	t.Run("answers a refused operation inside the response", func(t *testing.T) {
		committee, _, service := createService(t)

		// Round 10 equals the last voted round, so the engine must refuse.
		response, err := service.Process(voteRequest(t, committee, 10, 9))
		require.NoError(t, err)

		decoded := DecodeResponse(response, nil)
		require.True(t, safety.IsSafetyViolationError(decoded))
	})

	t.Run("answers an undecodable request inside the response", func(t *testing.T) {
		_, _, service := createService(t)

		for _, request := range [][]byte{nil, {0}, {0xff}, {CodeSignTimeout, 0xff, 0xff}} {
			response, err := service.Process(request)
			require.NoError(t, err)

			decoded := DecodeResponse(response, nil)
			require.True(t, safety.IsSerializationError(decoded))
		}
	})

	t.Run("persists a vote before the response leaves", func(t *testing.T) {
		committee, store, service := createService(t)

		response, err := service.Process(voteRequest(t, committee, 11, 9))
		require.NoError(t, err)

		var vote bastion.Vote
		require.NoError(t, DecodeResponse(response, &vote))
		persisted, err := store.LastVote()
		require.NoError(t, err)
		require.Equal(t, *persisted, vote)

		round, err := store.LastVotedRound()
		require.NoError(t, err)
		require.Equal(t, uint64(11), round)
	})

	t.Run("grants one signature per round under concurrent requests", func(t *testing.T) {
		committee, _, service := createService(t)

		// All workers submit a vote request for the same round. Exclusive
		// access means exactly one can sign; the rest must observe the
		// advanced last voted round and be refused.
		request := voteRequest(t, committee, 11, 9)
		workers := 16
		results := make(chan error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				response, err := service.Process(request)
				if err != nil {
					results <- err
					return
				}
				var vote bastion.Vote
				results <- DecodeResponse(response, &vote)
			}()
		}
		unittest.RequireReturnsBefore(t, wg.Wait, 10*time.Second)
		close(results)

		signed := 0
		for err := range results {
			if err == nil {
				signed++
				continue
			}
			require.True(t, safety.IsSafetyViolationError(err))
		}
		require.Equal(t, 1, signed)
	})
}
