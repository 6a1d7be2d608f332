package service

import (
	"context"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage"
)

// UserDirectory looks users up in storage for identity resolution.
type UserDirectory struct {
	storage *storage.Storage
}

func NewUserDirectory(store *storage.Storage) *UserDirectory {
	return &UserDirectory{storage: store}
}

func (d *UserDirectory) FindUser(ctx context.Context, id string) (*core.User, error) {
	var found *core.User
	err := d.storage.View(ctx, func(r *storage.Reader) error {
		u, err := r.Users.FindByID(ctx, id)
		found = u
		return err
	})
	return found, err
}
