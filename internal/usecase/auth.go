package usecase

import (
	"context"

	"swimapi/internal/domain/user"
	"swimapi/internal/pkg/apikey"
	"swimapi/internal/pkg/errs"
)

// AuthGuard resolves the opaque API key to a principal when the handler has
// no target entity loaded yet. Item routes that already hold the target use
// VerifyOwner instead; the two paths are deliberately kept separate so the
// error ordering (404 before 403 on item routes) stays observable.
type AuthGuard interface {
	// ResolveByKey returns the user owning the key, or a Forbidden-class
	// error when the key is absent or matches no account.
	ResolveByKey(ctx context.Context, token string) (*user.User, error)
	// RequireAdmin resolves the caller and additionally demands the admin
	// role.
	RequireAdmin(ctx context.Context, token string) (*user.User, error)
}

type authGuardImpl struct {
	users UserRepository
}

func NewAuthGuard(users UserRepository) AuthGuard {
	return &authGuardImpl{users: users}
}

func (g *authGuardImpl) ResolveByKey(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrMissingAPIKey
	}

	users, err := g.users.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve api key")
	}

	// Every stored key is compared so the scan cost does not depend on
	// which account, if any, matches.
	var matched *user.User
	for _, u := range users {
		if apikey.Equal(token, u.APIKey) {
			matched = u
		}
	}
	if matched == nil {
		return nil, ErrInvalidAPIKey
	}
	return matched, nil
}

func (g *authGuardImpl) RequireAdmin(ctx context.Context, token string) (*user.User, error) {
	principal, err := g.ResolveByKey(ctx, token)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin() {
		return nil, ErrAdminRequired
	}
	return principal, nil
}

// VerifyOwner checks the presented key against an already-loaded target
// user's key in constant time.
func VerifyOwner(token string, target *user.User) error {
	if token == "" {
		return ErrMissingAPIKey
	}
	if !apikey.Equal(token, target.APIKey) {
		return ErrInvalidAPIKey
	}
	return nil
}
