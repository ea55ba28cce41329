// Package client implements the ledger's business rules on top of a Store:
// creation semantics, balance arithmetic guards, and the fixed query surface.
package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okezie/bankclients/internal/errs"
	"github.com/okezie/bankclients/internal/ledger"
)

// listingThreshold is the fixed cutoff of the salary and balance listings.
// Deliberately a literal constant, not configuration.
const listingThreshold = 50

// Store is the persistence contract the service needs. Mutating calls are
// expected to mirror the collection before returning.
type Store interface {
	CreateClient(ctx context.Context, c ledger.Client) (ledger.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	Deposit(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error)
	Withdraw(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error)
	Transfer(ctx context.Context, senderID, receiverID uuid.UUID, amount float64) (ledger.Client, ledger.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (ledger.Client, error)
	ListClients(ctx context.Context) ([]ledger.Client, error)
}

// Service exposes the ledger operations used by the HTTP layer.
type Service interface {
	Create(ctx context.Context, name string, salary float64) (ledger.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Deposit(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error)
	Withdraw(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error)
	Transfer(ctx context.Context, senderID, receiverID uuid.UUID, amount float64) (ledger.Client, ledger.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (ledger.Client, error)
	ListBySalaryAbove(ctx context.Context) ([]ledger.Client, error)
	ListByBalanceAbove(ctx context.Context) ([]ledger.Client, error)
	ListCreatedAfter(ctx context.Context, after time.Time) ([]ledger.Client, error)
	HighestSalary(ctx context.Context) (ledger.Client, error)
}

type service struct {
	store Store
}

// New constructs the client service.
func New(store Store) Service { return &service{store: store} }

// Create builds a new client with balance equal to salary. Salary is not
// range-checked: zero and negative values are accepted.
func (s *service) Create(ctx context.Context, name string, salary float64) (ledger.Client, error) {
	if name == "" {
		return ledger.Client{}, errs.ErrInvalid
	}
	return s.store.CreateClient(ctx, ledger.NewClient(name, salary))
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteClient(ctx, id)
}

// Deposit adds amount to the balance. The sign is not validated; a negative
// deposit decreases the balance.
func (s *service) Deposit(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error) {
	return s.store.Deposit(ctx, id, amount)
}

func (s *service) Withdraw(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error) {
	return s.store.Withdraw(ctx, id, amount)
}

func (s *service) Transfer(ctx context.Context, senderID, receiverID uuid.UUID, amount float64) (ledger.Client, ledger.Client, error) {
	return s.store.Transfer(ctx, senderID, receiverID, amount)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (ledger.Client, error) {
	return s.store.GetClient(ctx, id)
}

// ListBySalaryAbove returns clients whose salary strictly exceeds the fixed
// threshold. An empty result is not an error.
func (s *service) ListBySalaryAbove(ctx context.Context) ([]ledger.Client, error) {
	all, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Client, 0)
	for _, c := range all {
		if c.Salary > listingThreshold {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListByBalanceAbove is the balance counterpart of ListBySalaryAbove.
func (s *service) ListByBalanceAbove(ctx context.Context) ([]ledger.Client, error) {
	all, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Client, 0)
	for _, c := range all {
		if c.Balance > listingThreshold {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListCreatedAfter returns clients created strictly after the given instant.
func (s *service) ListCreatedAfter(ctx context.Context, after time.Time) ([]ledger.Client, error) {
	all, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Client, 0)
	for _, c := range all {
		if c.CreatedAt.After(after) {
			out = append(out, c)
		}
	}
	return out, nil
}

// HighestSalary returns the client with the maximum salary; ties keep the
// earliest-created client. An empty collection is an error, never a
// zero-value client.
func (s *service) HighestSalary(ctx context.Context) (ledger.Client, error) {
	all, err := s.store.ListClients(ctx)
	if err != nil {
		return ledger.Client{}, err
	}
	if len(all) == 0 {
		return ledger.Client{}, errs.ErrNotFound
	}
	best := all[0]
	for _, c := range all[1:] {
		if c.Salary > best.Salary {
			best = c
		}
	}
	return best, nil
}
