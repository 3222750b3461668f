package bastion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

// validatorWithID builds a validator whose node ID starts with the given byte,
// so tests can control canonical order.
func validatorWithID(first byte, weight uint64) *bastion.Validator {
	return &bastion.Validator{
		NodeID: bastion.Identifier{first},
		Weight: weight,
	}
}

func TestValidatorListSort(t *testing.T) {
	unsorted := bastion.ValidatorList{
		validatorWithID(0x03, 1),
		validatorWithID(0x01, 1),
		validatorWithID(0x02, 1),
	}
	require.False(t, unsorted.Sorted())

	sorted := unsorted.Sort()
	require.True(t, sorted.Sorted())
	assert.Equal(t, bastion.Identifier{0x01}, sorted[0].NodeID)
	assert.Equal(t, bastion.Identifier{0x02}, sorted[1].NodeID)
	assert.Equal(t, bastion.Identifier{0x03}, sorted[2].NodeID)

	// the receiver is left untouched
	assert.Equal(t, bastion.Identifier{0x03}, unsorted[0].NodeID)
}

func TestValidatorListSortedRejectsDuplicates(t *testing.T) {
	withDup := bastion.ValidatorList{
		validatorWithID(0x01, 1),
		validatorWithID(0x01, 1),
		validatorWithID(0x02, 1),
	}
	require.False(t, withDup.Sorted())
	require.False(t, withDup.Sort().Sorted())
}

func TestValidatorListLookups(t *testing.T) {
	vl := bastion.ValidatorList{
		validatorWithID(0x01, 1),
		validatorWithID(0x02, 2),
		validatorWithID(0x03, 3),
	}

	t.Run("by node id", func(t *testing.T) {
		v, ok := vl.ByNodeID(bastion.Identifier{0x02})
		require.True(t, ok)
		assert.Same(t, vl[1], v)

		_, ok = vl.ByNodeID(unittest.IdentifierFixture())
		require.False(t, ok)
	})

	t.Run("exists", func(t *testing.T) {
		assert.True(t, vl.Exists(bastion.Identifier{0x03}))
		assert.False(t, vl.Exists(unittest.IdentifierFixture()))
	})

	t.Run("node ids preserve order", func(t *testing.T) {
		assert.Equal(t, bastion.IdentifierList{{0x01}, {0x02}, {0x03}}, vl.NodeIDs())
	})
}

func TestQuorumThreshold(t *testing.T) {
	cases := []struct {
		name      string
		weights   []uint64
		threshold uint64
	}{
		{name: "four equal validators", weights: []uint64{1, 1, 1, 1}, threshold: 3},
		{name: "uneven weights", weights: []uint64{3, 2, 2}, threshold: 5},
		{name: "single validator", weights: []uint64{1}, threshold: 1},
		{name: "heavy validators", weights: []uint64{10, 10, 10}, threshold: 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vl := make(bastion.ValidatorList, 0, len(tc.weights))
			for i, weight := range tc.weights {
				vl = append(vl, validatorWithID(byte(i+1), weight))
			}
			assert.Equal(t, tc.threshold, vl.QuorumThreshold())
		})
	}
}

func TestValidatorEncoding(t *testing.T) {
	key := unittest.KeyFixture(bastion.SigningAlgorithm)
	validator := bastion.Validator{
		NodeID: unittest.IdentifierFixture(),
		PubKey: key.PublicKey(),
		Weight: 7,
	}

	t.Run("cbor round trip", func(t *testing.T) {
		data, err := bastion.EncodeCanonical(validator)
		require.NoError(t, err)

		var decoded bastion.Validator
		require.NoError(t, bastion.DecodeCanonical(data, &decoded))
		assert.Equal(t, validator.NodeID, decoded.NodeID)
		assert.Equal(t, validator.Weight, decoded.Weight)
		require.True(t, validator.PubKey.Equals(decoded.PubKey))
	})

	t.Run("msgpack round trip", func(t *testing.T) {
		data, err := msgpack.Marshal(validator)
		require.NoError(t, err)

		var decoded bastion.Validator
		require.NoError(t, msgpack.Unmarshal(data, &decoded))
		assert.Equal(t, validator.NodeID, decoded.NodeID)
		assert.Equal(t, validator.Weight, decoded.Weight)
		require.True(t, validator.PubKey.Equals(decoded.PubKey))
	})

	t.Run("a missing public key stays missing", func(t *testing.T) {
		bare := bastion.Validator{NodeID: unittest.IdentifierFixture(), Weight: 3}
		data, err := bastion.EncodeCanonical(bare)
		require.NoError(t, err)

		var decoded bastion.Validator
		require.NoError(t, bastion.DecodeCanonical(data, &decoded))
		assert.Equal(t, bare.NodeID, decoded.NodeID)
		assert.Equal(t, bare.Weight, decoded.Weight)
		assert.Nil(t, decoded.PubKey)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		var decoded bastion.Validator
		err := bastion.DecodeCanonical([]byte{0xff, 0xff}, &decoded)
		require.ErrorContains(t, err, "could not decode validator")
	})

	t.Run("rejects an undecodable public key", func(t *testing.T) {
		data, err := bastion.EncodeCanonical(struct {
			NodeID bastion.Identifier
			PubKey []byte
			Weight uint64
		}{NodeID: unittest.IdentifierFixture(), PubKey: []byte{0x01, 0x02, 0x03}, Weight: 1})
		require.NoError(t, err)

		var decoded bastion.Validator
		err = bastion.DecodeCanonical(data, &decoded)
		require.ErrorContains(t, err, "could not decode public key")
	})
}
