// Package memory holds the authoritative client collection for the lifetime
// of the process. A single mutex serializes every check+mutate+persist
// sequence, so concurrent requests cannot interleave mid-operation or tear
// the snapshot file.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/okezie/bankclients/internal/errs"
	"github.com/okezie/bankclients/internal/ledger"
)

// Snapshotter receives the full collection after every successful mutation.
type Snapshotter interface {
	WriteSnapshot(clients []ledger.Client) error
}

// Store keeps clients in insertion order and flushes them through snap after
// each mutation. Lookups are linear scans by ID.
type Store struct {
	mu      sync.Mutex
	clients []ledger.Client
	snap    Snapshotter
}

// New constructs an empty store. snap may be nil when no mirror is wanted.
func New(snap Snapshotter) *Store {
	return &Store{snap: snap}
}

// Seed inserts a client without touching the mirror. Helper for local
// dev/tests.
func (s *Store) Seed(c ledger.Client) {
	s.mu.Lock()
	s.clients = append(s.clients, c)
	s.mu.Unlock()
}

// indexOf returns the position of id, or -1. Caller must hold s.mu.
func (s *Store) indexOf(id uuid.UUID) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked flushes the mirror. Caller must hold s.mu.
func (s *Store) persistLocked() error {
	if s.snap == nil {
		return nil
	}
	out := make([]ledger.Client, len(s.clients))
	copy(out, s.clients)
	if err := s.snap.WriteSnapshot(out); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// CreateClient appends c unless a live client already has the exact same
// (Name, Salary) pair. Same name with a different salary is allowed.
func (s *Store) CreateClient(_ context.Context, c ledger.Client) (ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].Name == c.Name && s.clients[i].Salary == c.Salary {
			return ledger.Client{}, errs.ErrDuplicateClient
		}
	}
	s.clients = append(s.clients, c)
	if err := s.persistLocked(); err != nil {
		return ledger.Client{}, err
	}
	return c, nil
}

// DeleteClient removes the client entirely; no tombstone remains.
func (s *Store) DeleteClient(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return errs.ErrNotFound
	}
	s.clients = append(s.clients[:i], s.clients[i+1:]...)
	return s.persistLocked()
}

// Deposit adds amount to the balance. Negative amounts are applied as-is;
// the sign is deliberately not validated.
func (s *Store) Deposit(_ context.Context, id uuid.UUID, amount float64) (ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ledger.Client{}, errs.ErrNotFound
	}
	s.clients[i].Balance += amount
	if err := s.persistLocked(); err != nil {
		return ledger.Client{}, err
	}
	return s.clients[i], nil
}

// Withdraw subtracts amount unless it exceeds the balance.
func (s *Store) Withdraw(_ context.Context, id uuid.UUID, amount float64) (ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ledger.Client{}, errs.ErrNotFound
	}
	if s.clients[i].Balance < amount {
		return ledger.Client{}, errs.ErrInsufficientFunds
	}
	s.clients[i].Balance -= amount
	if err := s.persistLocked(); err != nil {
		return ledger.Client{}, err
	}
	return s.clients[i], nil
}

// Transfer debits sender and credits receiver in one critical section. A
// missing account on either side reports the same not-found error. Sending
// to oneself is allowed and nets out to a no-op.
func (s *Store) Transfer(_ context.Context, senderID, receiverID uuid.UUID, amount float64) (ledger.Client, ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	si := s.indexOf(senderID)
	ri := s.indexOf(receiverID)
	if si < 0 || ri < 0 {
		return ledger.Client{}, ledger.Client{}, errs.ErrNotFound
	}
	if s.clients[si].Balance < amount {
		return ledger.Client{}, ledger.Client{}, errs.ErrInsufficientFunds
	}
	s.clients[si].Balance -= amount
	s.clients[ri].Balance += amount
	if err := s.persistLocked(); err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	return s.clients[si], s.clients[ri], nil
}

// GetClient returns a copy of the client by ID.
func (s *Store) GetClient(_ context.Context, id uuid.UUID) (ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ledger.Client{}, errs.ErrNotFound
	}
	return s.clients[i], nil
}

// ListClients returns a copy of the collection in insertion order.
func (s *Store) ListClients(_ context.Context) ([]ledger.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ledger.Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}
