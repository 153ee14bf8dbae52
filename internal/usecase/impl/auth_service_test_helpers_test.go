package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore is an in-memory account store with a unique identifier
// constraint. It serves as repository, factory and transaction manager.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
	now      func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[uuid.UUID]*entity.Account),
		now:      time.Now,
	}
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) AccountRepo() repository.AccountRepository {
	return s
}

func (s *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	cp := *account

	return &cp, nil
}

func (s *memoryStore) FindByIdentifier(_ context.Context, identifier string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Identifier == identifier {
			cp := *account

			return &cp, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *memoryStore) Create(_ context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Identifier == account.Identifier {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("unique violation")
		}
	}

	now := s.now()
	account.CreatedAt = now
	account.UpdatedAt = now
	cp := *account
	s.accounts[account.ID] = &cp

	return nil
}

func (s *memoryStore) delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.accounts, id)
}
