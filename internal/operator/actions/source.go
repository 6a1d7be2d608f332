package actions

import (
	"context"

	"github.com/pkg/errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/storage"
	"github.com/carson-networks/hustle-tracker/internal/storage/source"
)

type CreateSource struct {
	Create source.SourceCreate

	Result *core.Source
}

func (s *CreateSource) Name() string { return "create_source" }

func (s *CreateSource) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Source.Insert(ctx, &s.Create)
	if err != nil {
		return errors.Wrap(err, "insert source")
	}
	s.Result = created
	return nil
}

// DeleteSource removes a source owned by OwnerID. Transactions keep pointing
// at the removed id. Deleting the personal source does nothing.
type DeleteSource struct {
	ID      string
	OwnerID string
}

func (s *DeleteSource) Name() string { return "delete_source" }

func (s *DeleteSource) Perform(ctx context.Context, writer *storage.Writer) error {
	if s.ID == core.PersonalSourceID {
		return nil
	}

	existing, err := writer.Source.FindByID(ctx, s.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != s.OwnerID {
		return source.ErrNotFound
	}

	return writer.Source.Delete(ctx, s.ID)
}
