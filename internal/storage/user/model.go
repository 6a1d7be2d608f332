package user

import (
	"errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage/memtable"
)

var ErrNotFound = errors.New("user not found")

// Table is the in-memory user directory.
type Table = memtable.Table[string, core.User]

// NewTable creates a user directory holding users.
func NewTable(users ...core.User) *Table {
	t := memtable.New(func(u core.User) string { return u.ID })
	tx := t.Begin()
	for _, u := range users {
		tx.Put(u)
	}
	tx.Commit()
	return t
}
