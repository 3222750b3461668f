package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/bastionlabs/bastion-go/model/bastion"
)

func InsertSafetyEpoch(epoch uint64) func(*badger.Txn) error {
	return insert(makePrefix(codeSafetyEpoch), epoch)
}

func UpsertSafetyEpoch(epoch uint64) func(*badger.Txn) error {
	return upsert(makePrefix(codeSafetyEpoch), epoch)
}

func RetrieveSafetyEpoch(epoch *uint64) func(*badger.Txn) error {
	return retrieve(makePrefix(codeSafetyEpoch), epoch)
}

func InsertLastVotedRound(round uint64) func(*badger.Txn) error {
	return insert(makePrefix(codeSafetyLastVotedRound), round)
}

func UpsertLastVotedRound(round uint64) func(*badger.Txn) error {
	return upsert(makePrefix(codeSafetyLastVotedRound), round)
}

func RetrieveLastVotedRound(round *uint64) func(*badger.Txn) error {
	return retrieve(makePrefix(codeSafetyLastVotedRound), round)
}

func InsertPreferredRound(round uint64) func(*badger.Txn) error {
	return insert(makePrefix(codeSafetyPreferredRound), round)
}

func UpsertPreferredRound(round uint64) func(*badger.Txn) error {
	return upsert(makePrefix(codeSafetyPreferredRound), round)
}

func RetrievePreferredRound(round *uint64) func(*badger.Txn) error {
	return retrieve(makePrefix(codeSafetyPreferredRound), round)
}

func UpsertLastVote(vote *bastion.Vote) func(*badger.Txn) error {
	return upsert(makePrefix(codeSafetyLastVote), vote)
}

func RemoveLastVote() func(*badger.Txn) error {
	return remove(makePrefix(codeSafetyLastVote))
}

func RetrieveLastVote(vote *bastion.Vote) func(*badger.Txn) error {
	return retrieve(makePrefix(codeSafetyLastVote), vote)
}

func InsertTrustedEpochState(epochState *bastion.EpochState) func(*badger.Txn) error {
	return insert(makePrefix(codeTrustedEpochState), epochState)
}

func UpsertTrustedEpochState(epochState *bastion.EpochState) func(*badger.Txn) error {
	return upsert(makePrefix(codeTrustedEpochState), epochState)
}

func RetrieveTrustedEpochState(epochState *bastion.EpochState) func(*badger.Txn) error {
	return retrieve(makePrefix(codeTrustedEpochState), epochState)
}

// UpsertSignerKey stores the raw encoded consensus signing key for an epoch.
// Key material is opaque at this layer; encoding and decoding to a usable
// signer happens in the store on top.
func UpsertSignerKey(epoch uint64, rawKey []byte) func(*badger.Txn) error {
	return upsert(makePrefix(codeSignerKey, epoch), rawKey)
}

func RetrieveSignerKey(epoch uint64, rawKey *[]byte) func(*badger.Txn) error {
	return retrieve(makePrefix(codeSignerKey, epoch), rawKey)
}
