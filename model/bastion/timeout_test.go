package bastion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

// qcAtRound builds a structurally minimal quorum certificate for the given
// position, sufficient for consistency checks that do not verify signatures.
func qcAtRound(epoch uint64, round uint64) *bastion.QuorumCertificate {
	return &bastion.QuorumCertificate{
		VoteData: bastion.VoteData{
			Proposed: bastion.BlockInfo{Epoch: epoch, Round: round, BlockID: unittest.IdentifierFixture()},
			Parent:   bastion.BlockInfo{Epoch: epoch, Round: round - 1, BlockID: unittest.IdentifierFixture()},
		},
	}
}

func TestTwoChainTimeoutValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		timeout := bastion.TwoChainTimeout{Epoch: 5, Round: 12, HighestQC: qcAtRound(5, 11)}
		require.NoError(t, timeout.Validate())
	})

	t.Run("rejects a missing qc", func(t *testing.T) {
		timeout := bastion.TwoChainTimeout{Epoch: 5, Round: 12}
		require.ErrorContains(t, timeout.Validate(), "highest qc must not be nil")
	})

	t.Run("rejects a qc from another epoch", func(t *testing.T) {
		timeout := bastion.TwoChainTimeout{Epoch: 5, Round: 12, HighestQC: qcAtRound(4, 11)}
		require.ErrorContains(t, timeout.Validate(), "must match highest qc epoch")
	})

	t.Run("rejects a round at the qc round", func(t *testing.T) {
		timeout := bastion.TwoChainTimeout{Epoch: 5, Round: 11, HighestQC: qcAtRound(5, 11)}
		require.ErrorContains(t, timeout.Validate(), "must be greater than highest qc round")
	})
}
