package repository

import (
	"context"
	"errors"

	"swimapi/internal/domain/resource"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	db db.Executor
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: pool}
}

const resourceColumns = `resource_id, name, description, resource_type`

func scanResource(row pgx.Row) (*resource.Resource, error) {
	var res resource.Resource
	err := row.Scan(&res.ID, &res.Name, &res.Description, &res.Type)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResourceRepository) List(ctx context.Context) ([]*resource.Resource, error) {
	rows, err := r.db.Query(ctx, `SELECT `+resourceColumns+` FROM resources ORDER BY resource_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	var resources []*resource.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*resource.Resource, error) {
	res, err := scanResource(r.db.QueryRow(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE resource_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}
	return res, nil
}

func (r *ResourceRepository) Insert(ctx context.Context, tx db.Executor, res *resource.Resource) error {
	err := tx.QueryRow(ctx,
		`INSERT INTO resources (name, description, resource_type)
		 VALUES ($1, $2, $3)
		 RETURNING resource_id`,
		res.Name, res.Description, res.Type,
	).Scan(&res.ID)
	if err != nil {
		return wrapWriteErr("failed to insert resource", err)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, tx db.Executor, res *resource.Resource) error {
	tag, err := tx.Exec(ctx,
		`UPDATE resources SET name = $1, description = $2, resource_type = $3 WHERE resource_id = $4`,
		res.Name, res.Description, res.Type, res.ID,
	)
	if err != nil {
		return wrapWriteErr("failed to update resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the resource; its timeslots and their reservations go with
// it via ON DELETE CASCADE.
func (r *ResourceRepository) Delete(ctx context.Context, tx db.Executor, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM resources WHERE resource_id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}
