package operation

import (
	"github.com/cockroachdb/pebble"

	"github.com/bastionlabs/bastion-go/model/bastion"
)

func UpsertSafetyEpoch(epoch uint64) func(pebble.Writer) error {
	return upsert(makePrefix(codeSafetyEpoch), epoch)
}

func RetrieveSafetyEpoch(epoch *uint64) func(pebble.Reader) error {
	return retrieve(makePrefix(codeSafetyEpoch), epoch)
}

func ExistsSafetyEpoch(keyExists *bool) func(pebble.Reader) error {
	return exists(makePrefix(codeSafetyEpoch), keyExists)
}

func UpsertLastVotedRound(round uint64) func(pebble.Writer) error {
	return upsert(makePrefix(codeSafetyLastVotedRound), round)
}

func RetrieveLastVotedRound(round *uint64) func(pebble.Reader) error {
	return retrieve(makePrefix(codeSafetyLastVotedRound), round)
}

func UpsertPreferredRound(round uint64) func(pebble.Writer) error {
	return upsert(makePrefix(codeSafetyPreferredRound), round)
}

func RetrievePreferredRound(round *uint64) func(pebble.Reader) error {
	return retrieve(makePrefix(codeSafetyPreferredRound), round)
}

func UpsertLastVote(vote *bastion.Vote) func(pebble.Writer) error {
	return upsert(makePrefix(codeSafetyLastVote), vote)
}

func RemoveLastVote() func(pebble.Writer) error {
	return remove(makePrefix(codeSafetyLastVote))
}

func RetrieveLastVote(vote *bastion.Vote) func(pebble.Reader) error {
	return retrieve(makePrefix(codeSafetyLastVote), vote)
}

func UpsertTrustedEpochState(epochState *bastion.EpochState) func(pebble.Writer) error {
	return upsert(makePrefix(codeTrustedEpochState), epochState)
}

func RetrieveTrustedEpochState(epochState *bastion.EpochState) func(pebble.Reader) error {
	return retrieve(makePrefix(codeTrustedEpochState), epochState)
}

// UpsertSignerKey stores the raw encoded consensus signing key for an epoch.
// Key material is opaque at this layer; encoding and decoding to a usable
// signer happens in the store on top.
func UpsertSignerKey(epoch uint64, rawKey []byte) func(pebble.Writer) error {
	return upsert(makePrefix(codeSignerKey, epoch), rawKey)
}

func RetrieveSignerKey(epoch uint64, rawKey *[]byte) func(pebble.Reader) error {
	return retrieve(makePrefix(codeSignerKey, epoch), rawKey)
}
