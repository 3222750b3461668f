package bastion_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/utils/unittest"
)

func TestIdentifierHexConversion(t *testing.T) {
	id := unittest.IdentifierFixture()
	decoded, err := bastion.HexStringToID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestHexStringToIDErrors(t *testing.T) {
	t.Run("rejects invalid hex", func(t *testing.T) {
		_, err := bastion.HexStringToID("not a hex string")
		require.Error(t, err)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := bastion.HexStringToID("beef")
		require.ErrorContains(t, err, "expected 32 bytes")
	})
}

func TestByteSliceToID(t *testing.T) {
	id := unittest.IdentifierFixture()

	converted, err := bastion.ByteSliceToID(id[:])
	require.NoError(t, err)
	assert.Equal(t, id, converted)

	_, err = bastion.ByteSliceToID(id[:16])
	require.ErrorContains(t, err, "expected 32 bytes, got 16")
}

func TestMakeID(t *testing.T) {
	type entity struct {
		Epoch uint64
		Round uint64
	}

	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, bastion.MakeID(entity{Epoch: 5, Round: 10}), bastion.MakeID(entity{Epoch: 5, Round: 10}))
	})

	t.Run("is sensitive to content", func(t *testing.T) {
		assert.NotEqual(t, bastion.MakeID(entity{Epoch: 5, Round: 10}), bastion.MakeID(entity{Epoch: 5, Round: 11}))
	})
}

func TestIdentifierFormat(t *testing.T) {
	id := unittest.IdentifierFixture()

	assert.Equal(t, id.String(), fmt.Sprintf("%x", id))
	assert.Equal(t, id.String(), fmt.Sprintf("%s", id))
	assert.Equal(t, id.String(), fmt.Sprintf("%v", id))
	assert.Equal(t, fmt.Sprintf("%%!d(bastion.Identifier=%s)", id), fmt.Sprintf("%d", id))
}

func TestIdentifierList(t *testing.T) {
	ids := unittest.IdentifierListFixture(4)

	t.Run("lookup drops duplicates", func(t *testing.T) {
		withDup := append(bastion.IdentifierList{ids[0]}, ids...)
		assert.Len(t, withDup.Lookup(), 4)
	})

	t.Run("contains", func(t *testing.T) {
		assert.True(t, ids.Contains(ids[2]))
		assert.False(t, ids.Contains(unittest.IdentifierFixture()))
	})
}

func TestCanonicalEncoding(t *testing.T) {
	type entity struct {
		Epoch   uint64
		BlockID bastion.Identifier
	}
	e := entity{Epoch: 42, BlockID: unittest.IdentifierFixture()}

	one, err := bastion.EncodeCanonical(e)
	require.NoError(t, err)
	two, err := bastion.EncodeCanonical(e)
	require.NoError(t, err)
	assert.Equal(t, one, two)

	var decoded entity
	require.NoError(t, bastion.DecodeCanonical(one, &decoded))
	assert.Equal(t, e, decoded)
}

func TestDecodeCanonicalRejectsMalformedInput(t *testing.T) {
	t.Run("indefinite length items", func(t *testing.T) {
		var out []uint64
		err := bastion.DecodeCanonical([]byte{0x9f, 0x01, 0xff}, &out)
		require.Error(t, err)
	})

	t.Run("duplicate map keys", func(t *testing.T) {
		var out map[string]uint64
		err := bastion.DecodeCanonical([]byte{0xa2, 0x61, 0x61, 0x01, 0x61, 0x61, 0x02}, &out)
		require.Error(t, err)
	})
}
