package service

import (
	"context"
	"errors"

	"github.com/carson-networks/hustle-tracker/internal/core"
	"github.com/carson-networks/hustle-tracker/internal/identity"
	"github.com/carson-networks/hustle-tracker/internal/operator/actions"
	"github.com/carson-networks/hustle-tracker/internal/storage"
	"github.com/carson-networks/hustle-tracker/internal/storage/source"
)

// SourceService manages the personal source and callers' side hustles.
type SourceService struct {
	storage *storage.Storage
	op      processor
	auth    *authenticator
}

func NewSourceService(store *storage.Storage, op processor, resolver identity.Resolver) *SourceService {
	return &SourceService{
		storage: store,
		op:      op,
		auth:    &authenticator{resolver: resolver},
	}
}

// List returns the personal source followed by the caller's sources in creation order.
func (s *SourceService) List(ctx context.Context, token string) ([]core.Source, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.visibleSources(ctx, caller.UserID)
}

func (s *SourceService) visibleSources(ctx context.Context, userID string) ([]core.Source, error) {
	var rows []core.Source
	err := s.storage.View(ctx, func(r *storage.Reader) error {
		rows = r.Sources.List(ctx, &source.SourceFilter{VisibleTo: userID})
		return nil
	})
	return rows, err
}

func (s *SourceService) Create(ctx context.Context, token string, input SourceInput) (*core.Source, error) {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return nil, err
	}

	sourceType, err := input.validate()
	if err != nil {
		return nil, err
	}

	action := &actions.CreateSource{
		Create: source.SourceCreate{
			Name:        input.Name,
			Type:        sourceType,
			Platform:    input.Platform,
			Description: input.Description,
			OwnerID:     caller.UserID,
		},
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}
	return action.Result, nil
}

// Delete removes one of the caller's sources. Transactions attributed to it
// are kept. Deleting the personal source is a no-op.
func (s *SourceService) Delete(ctx context.Context, token string, id string) error {
	caller, err := s.auth.caller(ctx, token)
	if err != nil {
		return err
	}

	err = s.op.Process(ctx, &actions.DeleteSource{ID: id, OwnerID: caller.UserID})
	if errors.Is(err, source.ErrNotFound) {
		return &NotFoundError{Message: "Source not found"}
	}
	return err
}
