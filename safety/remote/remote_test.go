package remote

import (
	"bytes"
	"encoding/binary"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/module/metrics"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/safety/helper"
	"github.com/bastionlabs/bastion-go/safety/safetyrules"
	"github.com/bastionlabs/bastion-go/safety/serializer"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func TestFrameRoundTrip(t *testing.T) {
	t.Run("round trips payloads", func(t *testing.T) {
		for _, payload := range [][]byte{{}, {0x01}, unittest.SignatureFixture(), bytes.Repeat([]byte{0xab}, 4096)} {
			var buf bytes.Buffer
			require.NoError(t, WriteFrame(&buf, payload))
			read, err := ReadFrame(&buf)
			require.NoError(t, err)
			require.Equal(t, payload, read)
		}
	})

	t.Run("rejects an oversized payload on write", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteFrame(&buf, make([]byte, MaxFrameSize+1))
		require.Error(t, err)
		require.Zero(t, buf.Len())
	})

	t.Run("rejects an oversized length prefix on read", func(t *testing.T) {
		var header [4]byte
		binary.BigEndian.PutUint32(header[:], MaxFrameSize+1)
		_, err := ReadFrame(bytes.NewReader(header[:]))
		require.Error(t, err)
	})

	t.Run("reports a clean end of stream", func(t *testing.T) {
		_, err := ReadFrame(bytes.NewReader(nil))
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("rejects a truncated payload", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, []byte{1, 2, 3, 4, 5}))
		truncated := buf.Bytes()[:buf.Len()-2]
		_, err := ReadFrame(bytes.NewReader(truncated))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

// createServer builds the full remote stack for the first member of a fresh
// four-node committee at epoch 5, listening on a loopback port. The server
// is torn down with the test.
func createServer(t *testing.T) (*helper.Committee, *Server) {
	committee := helper.NewCommittee(5, 4)
	me := committee.Member(0)

	store := helper.NewMemStore()
	err := store.Bootstrap(&safety.SafetyData{
		Epoch:          5,
		LastVotedRound: 10,
		PreferredRound: 8,
	}, committee.State)
	require.NoError(t, err)
	require.NoError(t, store.SetSignerForEpoch(5, committee.KeyFor(me)))

	engine := safetyrules.New(unittest.Logger(), metrics.NewNoopCollector(), store, me)
	require.NoError(t, engine.Initialize(nil))
	service := serializer.NewService(unittest.Logger(), metrics.NewNoopCollector(), engine)

	server := NewServer(unittest.Logger(), "127.0.0.1:0", service)
	unittest.RequireCloseBefore(t, server.Ready(), time.Second, "server failed to start")
	require.NotNil(t, server.Address())
	t.Cleanup(func() {
		unittest.RequireCloseBefore(t, server.Done(), time.Second, "server failed to stop")
	})

	return committee, server
}

// remoteProposal builds a proposal for the given round justified by a quorum
// certificate for the given QC round, both in the committee's epoch.
func remoteProposal(committee *helper.Committee, round uint64, qcRound uint64) *bastion.VoteProposal {
	return helper.MakeVoteProposal(helper.WithProposalBlock(helper.MakeBlockData(
		helper.WithBlockEpoch(committee.Epoch()),
		helper.WithBlockRound(round),
		helper.WithBlockQC(committee.QuorumCertificateForRound(qcRound)),
	)))
}

func TestRemoteSafetyService(t *testing.T) {
	committee, server := createServer(t)

	transport := NewClient(unittest.Logger(), server.Address().String(), time.Second)
	defer func() {
		require.NoError(t, transport.Close())
	}()
	client := serializer.NewClient(metrics.NewNoopCollector(), transport)

	t.Run("reports the consensus state", func(t *testing.T) {
		state, err := client.ConsensusState()
		require.NoError(t, err)
		require.Equal(t, uint64(5), state.Epoch)
		require.Equal(t, uint64(10), state.LastVotedRound)
		require.Equal(t, uint64(8), state.PreferredRound)
		require.True(t, state.InValidatorSet)
	})

	t.Run("signs a vote and refuses its replay", func(t *testing.T) {
		vote, err := client.ConstructAndSignVote(remoteProposal(committee, 11, 9))
		require.NoError(t, err)
		require.Equal(t, uint64(11), vote.Round())
		require.Equal(t, committee.Member(0), vote.AuthorID)

		_, err = client.ConstructAndSignVote(remoteProposal(committee, 11, 9))
		require.True(t, safety.IsSafetyViolationError(err))
	})

	t.Run("reconnects after a dropped connection", func(t *testing.T) {
		require.NoError(t, transport.Close())

		state, err := client.ConsensusState()
		require.NoError(t, err)
		require.Equal(t, uint64(5), state.Epoch)
	})

	t.Run("grants one signature per round across connections", func(t *testing.T) {
		workers := 8
		results := make(chan error, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				workerTransport := NewClient(unittest.Logger(), server.Address().String(), time.Second)
				defer func() {
					_ = workerTransport.Close()
				}()
				workerClient := serializer.NewClient(metrics.NewNoopCollector(), workerTransport)
				_, err := workerClient.ConstructAndSignVote(remoteProposal(committee, 12, 11))
				results <- err
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

func TestServerShutdown(t *testing.T) {
	committee := helper.NewCommittee(5, 4)
	me := committee.Member(0)

	store := helper.NewMemStore()
	err := store.Bootstrap(&safety.SafetyData{Epoch: 5, LastVotedRound: 10, PreferredRound: 8}, committee.State)
	require.NoError(t, err)
	require.NoError(t, store.SetSignerForEpoch(5, committee.KeyFor(me)))

	engine := safetyrules.New(unittest.Logger(), metrics.NewNoopCollector(), store, me)
	require.NoError(t, engine.Initialize(nil))
	service := serializer.NewService(unittest.Logger(), metrics.NewNoopCollector(), engine)

	server := NewServer(unittest.Logger(), "127.0.0.1:0", service)
	unittest.RequireCloseBefore(t, server.Ready(), time.Second, "server failed to start")
	address := server.Address().String()

	transport := NewClient(unittest.Logger(), address, 500*time.Millisecond)
	defer func() {
		_ = transport.Close()
	}()
	client := serializer.NewClient(metrics.NewNoopCollector(), transport)

	_, err = client.ConsensusState()
	require.NoError(t, err)

	unittest.RequireCloseBefore(t, server.Done(), time.Second, "server failed to stop")

	_, err = client.ConsensusState()
	require.Error(t, err)
}
