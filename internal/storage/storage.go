package storage

import (
	"context"
	"sync"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage/source"
	"github.com/carson-networks/hustle-tracker/internal/storage/transaction"
	"github.com/carson-networks/hustle-tracker/internal/storage/user"
)

// Storage owns the in-memory tables. Readers share a read lock; a Writer
// holds the write lock from Write until Commit or Rollback.
type Storage struct {
	mu sync.RWMutex

	transactions *transaction.Table
	sources      *source.Table
	users        *user.Table
}

// NewStorage creates a store seeded with the personal source and users.
func NewStorage(users ...core.User) *Storage {
	return &Storage{
		transactions: transaction.NewTable(),
		sources:      source.NewTable(),
		users:        user.NewTable(users...),
	}
}

// View runs fn under the read lock. Rows handed out by the reader are copies.
func (s *Storage) View(ctx context.Context, fn func(r *Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(newReader(s))
}

// Write takes the write lock and returns a Writer staging changes against
// every table. The caller must finish with Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return newWriter(s), nil
}
