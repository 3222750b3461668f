package pebble

import (
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/storage"
	"github.com/bastionlabs/bastion-go/storage/pebble/operation"
)

// Store implements the secure persistent safety store around a pebble DB.
// Every setter is a single synced write, so each field is individually
// atomic.
type Store struct {
	db *pebble.DB
}

var _ safety.Store = (*Store)(nil)

func NewStore(db *pebble.DB) *Store {
	s := &Store{
		db: db,
	}
	return s
}

// Bootstrap writes the initial safety state and the trusted epoch state in
// one atomic batch. It fails with storage.ErrAlreadyExists if the store has
// been bootstrapped before, leaving the existing state untouched.
func (s *Store) Bootstrap(data *safety.SafetyData, trusted *bastion.EpochState) error {
	var bootstrapped bool
	err := operation.ExistsSafetyEpoch(&bootstrapped)(s.db)
	if err != nil {
		return fmt.Errorf("could not check for existing state: %w", err)
	}
	if bootstrapped {
		return storage.ErrAlreadyExists
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	err = operation.UpsertSafetyEpoch(data.Epoch)(batch)
	if err != nil {
		return fmt.Errorf("could not insert epoch: %w", err)
	}
	err = operation.UpsertLastVotedRound(data.LastVotedRound)(batch)
	if err != nil {
		return fmt.Errorf("could not insert last voted round: %w", err)
	}
	err = operation.UpsertPreferredRound(data.PreferredRound)(batch)
	if err != nil {
		return fmt.Errorf("could not insert preferred round: %w", err)
	}
	if data.LastVote != nil {
		err = operation.UpsertLastVote(data.LastVote)(batch)
		if err != nil {
			return fmt.Errorf("could not insert last vote: %w", err)
		}
	}
	err = operation.UpsertTrustedEpochState(trusted)(batch)
	if err != nil {
		return fmt.Errorf("could not insert trusted epoch state: %w", err)
	}

	err = batch.Commit(pebble.Sync)
	if err != nil {
		return fmt.Errorf("could not commit bootstrap batch: %w", err)
	}
	return nil
}

func (s *Store) Epoch() (uint64, error) {
	var epoch uint64
	err := operation.RetrieveSafetyEpoch(&epoch)(s.db)
	return epoch, err
}

func (s *Store) SetEpoch(epoch uint64) error {
	return operation.UpsertSafetyEpoch(epoch)(s.db)
}

func (s *Store) LastVotedRound() (uint64, error) {
	var round uint64
	err := operation.RetrieveLastVotedRound(&round)(s.db)
	return round, err
}

func (s *Store) SetLastVotedRound(round uint64) error {
	return operation.UpsertLastVotedRound(round)(s.db)
}

func (s *Store) PreferredRound() (uint64, error) {
	var round uint64
	err := operation.RetrievePreferredRound(&round)(s.db)
	return round, err
}

func (s *Store) SetPreferredRound(round uint64) error {
	return operation.UpsertPreferredRound(round)(s.db)
}

func (s *Store) LastVote() (*bastion.Vote, error) {
	var vote bastion.Vote
	err := operation.RetrieveLastVote(&vote)(s.db)
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (s *Store) SetLastVote(vote *bastion.Vote) error {
	if vote == nil {
		return operation.RemoveLastVote()(s.db)
	}
	return operation.UpsertLastVote(vote)(s.db)
}

func (s *Store) TrustedEpochState() (*bastion.EpochState, error) {
	var epochState bastion.EpochState
	err := operation.RetrieveTrustedEpochState(&epochState)(s.db)
	if err != nil {
		return nil, err
	}
	return &epochState, nil
}

func (s *Store) SetTrustedEpochState(epochState *bastion.EpochState) error {
	return operation.UpsertTrustedEpochState(epochState)(s.db)
}

func (s *Store) SignerForEpoch(epoch uint64) (crypto.PrivateKey, error) {
	var rawKey []byte
	err := operation.RetrieveSignerKey(epoch, &rawKey)(s.db)
	if err != nil {
		return nil, err
	}
	key, err := crypto.DecodePrivateKey(bastion.SigningAlgorithm, rawKey)
	if err != nil {
		return nil, fmt.Errorf("could not decode signer key for epoch %d: %w", epoch, err)
	}
	return key, nil
}

func (s *Store) SetSignerForEpoch(epoch uint64, key crypto.PrivateKey) error {
	return operation.UpsertSignerKey(epoch, key.Encode())(s.db)
}
