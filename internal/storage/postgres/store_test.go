package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/okezie/bankclients/internal/errs"
	"github.com/okezie/bankclients/internal/ledger"
)

// openTestStore connects to the database named by TEST_DATABASE_URL and
// skips the test when it is unset. Each test works against its own clients
// so runs are safe to repeat.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func createTestClient(t *testing.T, s *Store, salary float64) ledger.Client {
	t.Helper()
	c, err := s.CreateClient(context.Background(), ledger.NewClient("pgtest-"+uuid.NewString(), salary))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { _ = s.DeleteClient(context.Background(), c.ID) })
	return c
}

func TestStore_CreateGetDelete(t *testing.T) {
	s := openTestStore(t)
	c := createTestClient(t, s, 100)

	got, err := s.GetClient(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != c.Name || got.Balance != 100 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := s.DeleteClient(context.Background(), c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetClient(context.Background(), c.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStore_WithdrawGuard(t *testing.T) {
	s := openTestStore(t)
	c := createTestClient(t, s, 50)

	if _, err := s.Withdraw(context.Background(), c.ID, 80); !errors.Is(err, errs.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	got, err := s.GetClient(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Balance != 50 {
		t.Fatalf("balance mutated by failed withdrawal: %v", got.Balance)
	}
}

func TestStore_TransferAtomic(t *testing.T) {
	s := openTestStore(t)
	a := createTestClient(t, s, 100)
	b := createTestClient(t, s, 60)

	sender, receiver, err := s.Transfer(context.Background(), a.ID, b.ID, 30)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if sender.Balance != 70 || receiver.Balance != 90 {
		t.Fatalf("balances = %v/%v, want 70/90", sender.Balance, receiver.Balance)
	}

	if _, _, err := s.Transfer(context.Background(), a.ID, uuid.New(), 5); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("missing receiver: expected ErrNotFound, got %v", err)
	}
}
