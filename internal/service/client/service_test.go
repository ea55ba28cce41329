package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/okezie/bankclients/internal/errs"
	"github.com/okezie/bankclients/internal/ledger"
	"github.com/okezie/bankclients/internal/storage/memory"
)

func newService(t *testing.T) (Service, *memory.Store) {
	t.Helper()
	store := memory.New(nil)
	return New(store), store
}

func TestCreate_BalanceEqualsSalary(t *testing.T) {
	svc, _ := newService(t)
	c, err := svc.Create(context.Background(), "Alice", 100)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Balance != c.Salary || c.Balance != 100 {
		t.Fatalf("balance = %v, want salary %v", c.Balance, c.Salary)
	}
	if c.ID == uuid.Nil {
		t.Fatalf("expected a generated id")
	}
	if c.CreatedAt.Nanosecond() != 0 {
		t.Fatalf("creation time not truncated to seconds: %v", c.CreatedAt)
	}
}

func TestCreate_EmptyNameRejected(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Create(context.Background(), "", 100); !errors.Is(err, errs.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCreate_ZeroAndNegativeSalaryAccepted(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Create(context.Background(), "Zero", 0); err != nil {
		t.Fatalf("zero salary: %v", err)
	}
	c, err := svc.Create(context.Background(), "Debt", -40)
	if err != nil {
		t.Fatalf("negative salary: %v", err)
	}
	if c.Balance != -40 {
		t.Fatalf("balance = %v, want -40", c.Balance)
	}
}

func TestListBySalaryAbove_StrictThreshold(t *testing.T) {
	svc, _ := newService(t)
	for _, tc := range []struct {
		name   string
		salary float64
	}{
		{"Low", 40}, {"Edge", 50}, {"High", 60},
	} {
		if _, err := svc.Create(context.Background(), tc.name, tc.salary); err != nil {
			t.Fatalf("create %s: %v", tc.name, err)
		}
	}
	got, err := svc.ListBySalaryAbove(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "High" {
		t.Fatalf("expected only High above threshold, got %v", got)
	}
}

func TestListByBalanceAbove_TracksDeposits(t *testing.T) {
	svc, _ := newService(t)
	low, err := svc.Create(context.Background(), "Low", 40)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "High", 60); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, _ := svc.ListByBalanceAbove(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected 1 before deposit, got %d", len(got))
	}
	if _, err := svc.Deposit(context.Background(), low.ID, 20); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	got, _ = svc.ListByBalanceAbove(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 after deposit, got %d", len(got))
	}
}

func TestListByBalanceAbove_EmptyIsNotError(t *testing.T) {
	svc, _ := newService(t)
	got, err := svc.ListByBalanceAbove(context.Background())
	if err != nil {
		t.Fatalf("list on empty collection: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestListCreatedAfter_StrictlyAfter(t *testing.T) {
	_, store := newService(t)
	svc := New(store)
	cutoff, err := ledger.ParseCreationDate("2024-06-01 12:00:00")
	if err != nil {
		t.Fatalf("parse cutoff: %v", err)
	}
	seed := func(name string, at time.Time) {
		c := ledger.NewClient(name, 10)
		c.CreatedAt = at
		store.Seed(c)
	}
	seed("Before", cutoff.Add(-time.Hour))
	seed("Exact", cutoff)
	seed("After", cutoff.Add(time.Second))

	got, err := svc.ListCreatedAfter(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "After" {
		t.Fatalf("expected only After, got %v", got)
	}
}

func TestHighestSalary(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.HighestSalary(context.Background()); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("empty collection: expected ErrNotFound, got %v", err)
	}
	only, _ := svc.Create(context.Background(), "Solo", 80)
	got, err := svc.HighestSalary(context.Background())
	if err != nil {
		t.Fatalf("single: %v", err)
	}
	if got.ID != only.ID {
		t.Fatalf("expected the only client")
	}
	first, _ := svc.Create(context.Background(), "TieA", 120)
	if _, err := svc.Create(context.Background(), "TieB", 120); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, _ = svc.HighestSalary(context.Background())
	if got.ID != first.ID {
		t.Fatalf("tie should keep the earliest-created client, got %s", got.Name)
	}
}
