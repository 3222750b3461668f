package badger

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/onflow/flow-go/crypto"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/safety"
	"github.com/bastionlabs/bastion-go/storage/badger/operation"
)

// Store implements the secure persistent safety store around a badger DB.
// Every getter and setter runs in its own transaction, so each field is
// individually atomic.
type Store struct {
	db *badger.DB
}

var _ safety.Store = (*Store)(nil)

func NewStore(db *badger.DB) *Store {
	s := &Store{
		db: db,
	}
	return s
}

// Bootstrap writes the initial safety state and the trusted epoch state in
// one transaction. It fails with storage.ErrAlreadyExists if the store has
// been bootstrapped before, leaving the existing state untouched.
func (s *Store) Bootstrap(data *safety.SafetyData, trusted *bastion.EpochState) error {
	err := s.db.Update(func(tx *badger.Txn) error {
		err := operation.InsertSafetyEpoch(data.Epoch)(tx)
		if err != nil {
			return fmt.Errorf("could not insert epoch: %w", err)
		}
		err = operation.InsertLastVotedRound(data.LastVotedRound)(tx)
		if err != nil {
			return fmt.Errorf("could not insert last voted round: %w", err)
		}
		err = operation.InsertPreferredRound(data.PreferredRound)(tx)
		if err != nil {
			return fmt.Errorf("could not insert preferred round: %w", err)
		}
		if data.LastVote != nil {
			err = operation.UpsertLastVote(data.LastVote)(tx)
			if err != nil {
				return fmt.Errorf("could not insert last vote: %w", err)
			}
		}
		err = operation.InsertTrustedEpochState(trusted)(tx)
		if err != nil {
			return fmt.Errorf("could not insert trusted epoch state: %w", err)
		}
		return nil
	})
	return err
}

func (s *Store) Epoch() (uint64, error) {
	var epoch uint64
	err := s.db.View(operation.RetrieveSafetyEpoch(&epoch))
	return epoch, err
}

func (s *Store) SetEpoch(epoch uint64) error {
	return s.db.Update(operation.UpsertSafetyEpoch(epoch))
}

func (s *Store) LastVotedRound() (uint64, error) {
	var round uint64
	err := s.db.View(operation.RetrieveLastVotedRound(&round))
	return round, err
}

func (s *Store) SetLastVotedRound(round uint64) error {
	return s.db.Update(operation.UpsertLastVotedRound(round))
}

func (s *Store) PreferredRound() (uint64, error) {
	var round uint64
	err := s.db.View(operation.RetrievePreferredRound(&round))
	return round, err
}

func (s *Store) SetPreferredRound(round uint64) error {
	return s.db.Update(operation.UpsertPreferredRound(round))
}

func (s *Store) LastVote() (*bastion.Vote, error) {
	var vote bastion.Vote
	err := s.db.View(operation.RetrieveLastVote(&vote))
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (s *Store) SetLastVote(vote *bastion.Vote) error {
	if vote == nil {
		return s.db.Update(operation.RemoveLastVote())
	}
	return s.db.Update(operation.UpsertLastVote(vote))
}

func (s *Store) TrustedEpochState() (*bastion.EpochState, error) {
	var epochState bastion.EpochState
	err := s.db.View(operation.RetrieveTrustedEpochState(&epochState))
	if err != nil {
		return nil, err
	}
	return &epochState, nil
}

func (s *Store) SetTrustedEpochState(epochState *bastion.EpochState) error {
	return s.db.Update(operation.UpsertTrustedEpochState(epochState))
}

func (s *Store) SignerForEpoch(epoch uint64) (crypto.PrivateKey, error) {
	var rawKey []byte
	err := s.db.View(operation.RetrieveSignerKey(epoch, &rawKey))
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
	return s.db.Update(operation.UpsertSignerKey(epoch, key.Encode()))
}
