package helper

import (
	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/storage"
)

// MemStore is an in-memory safety store for tests. It is not safe for
// concurrent use, mirroring the serial-access discipline of the real stores.
type MemStore struct {
	bootstrapped   bool
	epoch          uint64
	lastVotedRound uint64
	preferredRound uint64
	lastVote       *bastion.Vote
	trusted        *bastion.EpochState
	signers        map[uint64]crypto.PrivateKey
}

var _ safety.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		signers: make(map[uint64]crypto.PrivateKey),
	}
}

func (m *MemStore) Bootstrap(data *safety.SafetyData, trusted *bastion.EpochState) error {
	if m.bootstrapped {
		return storage.ErrAlreadyExists
	}
	m.bootstrapped = true
	m.epoch = data.Epoch
	m.lastVotedRound = data.LastVotedRound
	m.preferredRound = data.PreferredRound
	m.lastVote = data.LastVote
	m.trusted = trusted
	return nil
}

func (m *MemStore) Epoch() (uint64, error) {
	if !m.bootstrapped {
		return 0, storage.ErrNotFound
	}
	return m.epoch, nil
}

func (m *MemStore) SetEpoch(epoch uint64) error {
	m.epoch = epoch
	return nil
}

func (m *MemStore) LastVotedRound() (uint64, error) {
	if !m.bootstrapped {
		return 0, storage.ErrNotFound
	}
	return m.lastVotedRound, nil
}

func (m *MemStore) SetLastVotedRound(round uint64) error {
	m.lastVotedRound = round
	return nil
}

func (m *MemStore) PreferredRound() (uint64, error) {
	if !m.bootstrapped {
		return 0, storage.ErrNotFound
	}
	return m.preferredRound, nil
}

func (m *MemStore) SetPreferredRound(round uint64) error {
	m.preferredRound = round
	return nil
}

func (m *MemStore) LastVote() (*bastion.Vote, error) {
	if m.lastVote == nil {
		return nil, storage.ErrNotFound
	}
	return m.lastVote, nil
}

func (m *MemStore) SetLastVote(vote *bastion.Vote) error {
	m.lastVote = vote
	return nil
}

func (m *MemStore) TrustedEpochState() (*bastion.EpochState, error) {
	if m.trusted == nil {
		return nil, storage.ErrNotFound
	}
	return m.trusted, nil
}

func (m *MemStore) SetTrustedEpochState(epochState *bastion.EpochState) error {
	m.trusted = epochState
	return nil
}

func (m *MemStore) SignerForEpoch(epoch uint64) (crypto.PrivateKey, error) {
	key, ok := m.signers[epoch]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return key, nil
}

func (m *MemStore) SetSignerForEpoch(epoch uint64, key crypto.PrivateKey) error {
	m.signers[epoch] = key
	return nil
}
