package repository

import (
	"context"
	"errors"

	"swimapi/internal/domain/user"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db db.Executor
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

const userColumns = `user_id, name, email, api_key, user_type, created_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.APIKey, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY user_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

// Insert stores a new user and fills in the generated identity and creation
// timestamp. A duplicate email or api_key surfaces as DUPLICATE_KEY.
func (r *UserRepository) Insert(ctx context.Context, tx db.Executor, u *user.User) error {
	err := tx.QueryRow(ctx,
		`INSERT INTO users (name, email, api_key, user_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id, created_at`,
		u.Name, u.Email, u.APIKey, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return wrapWriteErr("failed to insert user", err)
	}
	return nil
}

// Update replaces the mutable fields wholesale. The api_key and created_at
// are immutable and never touched.
func (r *UserRepository) Update(ctx context.Context, tx db.Executor, u *user.User) error {
	tag, err := tx.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, user_type = $3 WHERE user_id = $4`,
		u.Name, u.Email, u.Role, u.ID,
	)
	if err != nil {
		return wrapWriteErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx db.Executor, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
