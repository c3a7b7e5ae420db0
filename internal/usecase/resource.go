package usecase

import (
	"context"

	"swimapi/internal/domain/resource"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"
	"swimapi/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceParams struct {
	Name        string
	Description *string
	Type        resource.Type
}

// ResourceUseCase covers the bookable facilities. Admin gating happens in
// the auth middleware before these are reached.
type ResourceUseCase interface {
	List(ctx context.Context) ([]*resource.Resource, error)
	Get(ctx context.Context, id int64) (*resource.Resource, error)
	Create(ctx context.Context, params ResourceParams) (*resource.Resource, error)
	Replace(ctx context.Context, id int64, params ResourceParams) error
	Delete(ctx context.Context, id int64) error
}

type resourceUseCaseImpl struct {
	resources ResourceRepository
	pool      *pgxpool.Pool
}

func NewResourceUseCase(resources ResourceRepository, pool *pgxpool.Pool) ResourceUseCase {
	return &resourceUseCaseImpl{resources: resources, pool: pool}
}

func (uc *resourceUseCaseImpl) List(ctx context.Context) ([]*resource.Resource, error) {
	return uc.resources.List(ctx)
}

func (uc *resourceUseCaseImpl) Get(ctx context.Context, id int64) (*resource.Resource, error) {
	res, err := uc.resources.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrResourceNotFound)
		}
		return nil, err
	}
	return res, nil
}

func (uc *resourceUseCaseImpl) Create(ctx context.Context, params ResourceParams) (*resource.Resource, error) {
	res := &resource.Resource{
		Name:        params.Name,
		Description: params.Description,
		Type:        params.Type,
	}

	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.resources.Insert(ctx, tx, res)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrResourceConflict)
		}
		return nil, err
	}
	return res, nil
}

func (uc *resourceUseCaseImpl) Replace(ctx context.Context, id int64, params ResourceParams) error {
	res := &resource.Resource{
		ID:          id,
		Name:        params.Name,
		Description: params.Description,
		Type:        params.Type,
	}

	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.resources.Update(ctx, tx, res)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrResourceNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrResourceConflict)
		}
		return err
	}
	return nil
}

func (uc *resourceUseCaseImpl) Delete(ctx context.Context, id int64) error {
	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.resources.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrResourceNotFound)
		}
		return err
	}
	return nil
}
