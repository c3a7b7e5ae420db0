package usecase

import (
	"context"

	"swimapi/internal/domain/user"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"
	"swimapi/internal/pkg/apikey"
	"swimapi/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateUserParams struct {
	Name  string
	Email string
	Role  user.Role
}

type UserUseCase interface {
	List(ctx context.Context) ([]*user.User, error)
	Get(ctx context.Context, id int64) (*user.User, error)
	// Create issues a fresh API key and returns the stored user carrying it;
	// this is the only moment the key leaves the system.
	Create(ctx context.Context, params CreateUserParams) (*user.User, error)
	// CreateAdmin forces the admin role regardless of the requested one.
	CreateAdmin(ctx context.Context, params CreateUserParams) (*user.User, error)
	// Authorize loads the target (NotFound first) and verifies the token
	// against its key (Forbidden second). Item writes run it before the
	// request body is even looked at.
	Authorize(ctx context.Context, id int64, token string) (*user.User, error)
	Replace(ctx context.Context, id int64, token string, params CreateUserParams) error
	Delete(ctx context.Context, id int64, token string) error
}

type userUseCaseImpl struct {
	users UserRepository
	pool  *pgxpool.Pool
}

func NewUserUseCase(users UserRepository, pool *pgxpool.Pool) UserUseCase {
	return &userUseCaseImpl{users: users, pool: pool}
}

func (uc *userUseCaseImpl) List(ctx context.Context) ([]*user.User, error) {
	return uc.users.List(ctx)
}

func (uc *userUseCaseImpl) Get(ctx context.Context, id int64) (*user.User, error) {
	u, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (uc *userUseCaseImpl) Create(ctx context.Context, params CreateUserParams) (*user.User, error) {
	return uc.create(ctx, params, false)
}

func (uc *userUseCaseImpl) CreateAdmin(ctx context.Context, params CreateUserParams) (*user.User, error) {
	return uc.create(ctx, params, true)
}

func (uc *userUseCaseImpl) create(ctx context.Context, params CreateUserParams, forceAdmin bool) (*user.User, error) {
	key, err := apikey.Generate()
	if err != nil {
		return nil, err
	}

	role := params.Role
	if role == "" {
		role = user.RoleCustomer
	}
	if forceAdmin {
		role = user.RoleAdmin
	}

	u := &user.User{
		Name:   params.Name,
		Email:  params.Email,
		APIKey: key,
		Role:   role,
	}

	err = db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.users.Insert(ctx, tx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}
	return u, nil
}

func (uc *userUseCaseImpl) Authorize(ctx context.Context, id int64, token string) (*user.User, error) {
	target, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := VerifyOwner(token, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (uc *userUseCaseImpl) Replace(ctx context.Context, id int64, token string, params CreateUserParams) error {
	target, err := uc.Authorize(ctx, id, token)
	if err != nil {
		return err
	}

	role := params.Role
	if role == "" {
		role = user.RoleCustomer
	}
	target.Name = params.Name
	target.Email = params.Email
	target.Role = role

	err = db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.users.Update(ctx, tx, target)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, ErrEmailTaken)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrUserNotFound)
		}
		return err
	}
	return nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, id int64, token string) error {
	if _, err := uc.Authorize(ctx, id, token); err != nil {
		return err
	}

	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.users.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrUserNotFound)
		}
		return err
	}
	return nil
}
