package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/hustle-tracker/internal/storage"
)

// ErrUnknownSource is returned when a transaction names a source that does
// not exist or belongs to another user.
var ErrUnknownSource = errors.New("unknown source")

type IAction interface {
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
