package storage

import (
	"errors"

	"github.com/carson-networks/hustle-tracker/internal/storage/source"
	"github.com/carson-networks/hustle-tracker/internal/storage/transaction"
)

var ErrWriterClosed = errors.New("writer already committed or rolled back")

type Writer struct {
	unlock func()
	closed bool

	Transaction *transaction.Writer
	Source      *source.Writer
}

func newWriter(s *Storage) *Writer {
	return &Writer{
		unlock:      s.mu.Unlock,
		Transaction: transaction.NewWriter(s.transactions),
		Source:      source.NewWriter(s.sources),
	}
}

// Commit applies every staged change and releases the write lock.
func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.Transaction.Commit()
	w.Source.Commit()
	w.release()
	return nil
}

// Rollback discards staged changes and releases the write lock.
func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.Transaction.Rollback()
	w.Source.Rollback()
	w.release()
	return nil
}

func (w *Writer) release() {
	w.closed = true
	w.unlock()
}
