package storage

import (
	"github.com/carson-networks/hustle-tracker/internal/storage/source"
	"github.com/carson-networks/hustle-tracker/internal/storage/transaction"
	"github.com/carson-networks/hustle-tracker/internal/storage/user"
)

type Reader struct {
	Transactions *transaction.Reader
	Sources      *source.Reader
	Users        *user.Reader
}

func newReader(s *Storage) *Reader {
	return &Reader{
		Transactions: transaction.NewReader(s.transactions),
		Sources:      source.NewReader(s.sources),
		Users:        user.NewReader(s.users),
	}
}
