package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/bastionlabs/bastion-go/model/bastion"
)

const (

	// codes for the persisted safety state, one entry per field
	codeSafetyEpoch          = 1
	codeSafetyLastVotedRound = 2
	codeSafetyPreferredRound = 3
	codeSafetyLastVote       = 4

	// code for the trusted epoch state epoch change proofs verify against
	codeTrustedEpochState = 10

	// code for consensus signing keys, suffixed by epoch
	codeSignerKey = 20
)

// makePrefix builds a database key from a prefix code and a sequence of
// fixed-width key parts.
func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, keyPartToBinary(key)...)
	}
	return prefix
}

func keyPartToBinary(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case bastion.Identifier:
		return i[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
