// Package identity turns the opaque caller token sent with each request into
// a user id and role. Tokens are trusted verbatim.
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/carson-networks/hustle-tracker/internal/core"
)

var ErrNoIdentity = errors.New("no identity provided")

// Caller is the resolved identity of a request.
type Caller struct {
	UserID string
	Role   core.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == core.RoleAdmin
}

type Resolver interface {
	Resolve(ctx context.Context, token string) (Caller, error)
}

type userFinder interface {
	FindUser(ctx context.Context, id string) (*core.User, error)
}

// HeaderResolver treats the token as a user id and looks its role up in the
// user directory. Ids the directory does not know are ordinary users.
type HeaderResolver struct {
	users userFinder
}

func NewHeaderResolver(users userFinder) *HeaderResolver {
	return &HeaderResolver{users: users}
}

func (r *HeaderResolver) Resolve(ctx context.Context, token string) (Caller, error) {
	userID := strings.TrimSpace(token)
	if userID == "" {
		return Caller{}, ErrNoIdentity
	}

	caller := Caller{UserID: userID, Role: core.RoleUser}
	u, err := r.users.FindUser(ctx, userID)
	if err != nil || u == nil {
		return caller, nil
	}
	caller.Role = u.Role
	return caller, nil
}
