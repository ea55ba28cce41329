// Package postgres provides a pgx-backed storage implementation that
// satisfies the client service's Store interface. It is the alternative to
// the in-memory collection for deployments that want real durability; the
// CSV mirror does not apply to this backend.
//
// Business guards (duplicate pair, insufficient funds) are enforced inside
// SQL transactions so concurrent requests see a consistent view.
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okezie/bankclients/internal/errs"
	"github.com/okezie/bankclients/internal/ledger"
)

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string and makes
// sure the clients table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	s := &Store{pool: pool}
	if err := s.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		create table if not exists clients (
			id uuid primary key,
			name text not null,
			salary double precision not null,
			balance double precision not null,
			created_at timestamp not null
		)
	`)
	return err
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// CreateClient inserts c unless an exact (name, salary) pair already exists.
func (s *Store) CreateClient(ctx context.Context, c ledger.Client) (ledger.Client, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ledger.Client{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	var exists bool
	if err := tx.QueryRow(ctx, `
		select exists(select 1 from clients where name = $1 and salary = $2)
	`, c.Name, c.Salary).Scan(&exists); err != nil {
		return ledger.Client{}, err
	}
	if exists {
		return ledger.Client{}, errs.ErrDuplicateClient
	}
	if _, err := tx.Exec(ctx, `
		insert into clients (id, name, salary, balance, created_at)
		values ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.Salary, c.Balance, c.CreatedAt); err != nil {
		return ledger.Client{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return ledger.Client{}, err
	}
	return c, nil
}

// DeleteClient removes the row entirely.
func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	ct, err := s.pool.Exec(ctx, `delete from clients where id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Deposit adds amount to the balance, negative amounts included.
func (s *Store) Deposit(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error) {
	var c ledger.Client
	err := s.pool.QueryRow(ctx, `
		update clients set balance = balance + $2
		where id = $1
		returning id, name, salary, balance, created_at
	`, id, amount).Scan(&c.ID, &c.Name, &c.Salary, &c.Balance, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Client{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Client{}, err
	}
	return c, nil
}

// Withdraw subtracts amount unless it exceeds the balance. The row is locked
// for the duration of the check.
func (s *Store) Withdraw(ctx context.Context, id uuid.UUID, amount float64) (ledger.Client, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ledger.Client{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	var balance float64
	err = tx.QueryRow(ctx, `select balance from clients where id = $1 for update`, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Client{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Client{}, err
	}
	if balance < amount {
		return ledger.Client{}, errs.ErrInsufficientFunds
	}
	var c ledger.Client
	if err := tx.QueryRow(ctx, `
		update clients set balance = balance - $2
		where id = $1
		returning id, name, salary, balance, created_at
	`, id, amount).Scan(&c.ID, &c.Name, &c.Salary, &c.Balance, &c.CreatedAt); err != nil {
		return ledger.Client{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return ledger.Client{}, err
	}
	return c, nil
}

// Transfer debits sender and credits receiver in one transaction. A missing
// row on either side reports the same not-found error. senderID may equal
// receiverID; the two updates net out.
func (s *Store) Transfer(ctx context.Context, senderID, receiverID uuid.UUID, amount float64) (ledger.Client, ledger.Client, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	var senderBalance float64
	err = tx.QueryRow(ctx, `select balance from clients where id = $1 for update`, senderID).Scan(&senderBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Client{}, ledger.Client{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	var receiverBalance float64
	err = tx.QueryRow(ctx, `select balance from clients where id = $1 for update`, receiverID).Scan(&receiverBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Client{}, ledger.Client{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	if senderBalance < amount {
		return ledger.Client{}, ledger.Client{}, errs.ErrInsufficientFunds
	}
	if _, err := tx.Exec(ctx, `update clients set balance = balance - $2 where id = $1`, senderID, amount); err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	if _, err := tx.Exec(ctx, `update clients set balance = balance + $2 where id = $1`, receiverID, amount); err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	var sender, receiver ledger.Client
	if err := tx.QueryRow(ctx, `
		select id, name, salary, balance, created_at from clients where id = $1
	`, senderID).Scan(&sender.ID, &sender.Name, &sender.Salary, &sender.Balance, &sender.CreatedAt); err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	if err := tx.QueryRow(ctx, `
		select id, name, salary, balance, created_at from clients where id = $1
	`, receiverID).Scan(&receiver.ID, &receiver.Name, &receiver.Salary, &receiver.Balance, &receiver.CreatedAt); err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return ledger.Client{}, ledger.Client{}, err
	}
	return sender, receiver, nil
}

// GetClient fetches a single client by ID.
func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (ledger.Client, error) {
	var c ledger.Client
	err := s.pool.QueryRow(ctx, `
		select id, name, salary, balance, created_at from clients where id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Salary, &c.Balance, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Client{}, errs.ErrNotFound
	}
	if err != nil {
		return ledger.Client{}, err
	}
	return c, nil
}

// ListClients returns all clients in creation order.
func (s *Store) ListClients(ctx context.Context) ([]ledger.Client, error) {
	rows, err := s.pool.Query(ctx, `
		select id, name, salary, balance, created_at
		from clients
		order by created_at asc, id asc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Client, 0)
	for rows.Next() {
		var c ledger.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Salary, &c.Balance, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
