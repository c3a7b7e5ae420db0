package repository

import (
	"context"
	"errors"

	"swimapi/internal/domain/timeslot"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeslotRepository struct {
	db db.Executor
}

func NewTimeslotRepository(pool *pgxpool.Pool) *TimeslotRepository {
	return &TimeslotRepository{db: pool}
}

const timeslotColumns = `slot_id, resource_id, start_time, end_time`

func scanTimeslot(row pgx.Row) (*timeslot.Timeslot, error) {
	var ts timeslot.Timeslot
	err := row.Scan(&ts.ID, &ts.ResourceID, &ts.StartTime, &ts.EndTime)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func (r *TimeslotRepository) List(ctx context.Context) ([]*timeslot.Timeslot, error) {
	rows, err := r.db.Query(ctx, `SELECT `+timeslotColumns+` FROM timeslots ORDER BY slot_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timeslots", err)
	}
	defer rows.Close()

	var slots []*timeslot.Timeslot
	for rows.Next() {
		ts, err := scanTimeslot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeslot", err)
		}
		slots = append(slots, ts)
	}
	return slots, rows.Err()
}

func (r *TimeslotRepository) FindByID(ctx context.Context, id int64) (*timeslot.Timeslot, error) {
	ts, err := scanTimeslot(r.db.QueryRow(ctx,
		`SELECT `+timeslotColumns+` FROM timeslots WHERE slot_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("timeslot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find timeslot by ID", err)
	}
	return ts, nil
}

// Insert fails with FOREIGN_KEY_VIOLATED when the referenced resource does
// not exist, and DUPLICATE_KEY when the same window already exists on the
// resource.
func (r *TimeslotRepository) Insert(ctx context.Context, tx db.Executor, ts *timeslot.Timeslot) error {
	err := tx.QueryRow(ctx,
		`INSERT INTO timeslots (resource_id, start_time, end_time)
		 VALUES ($1, $2, $3)
		 RETURNING slot_id`,
		ts.ResourceID, ts.StartTime, ts.EndTime,
	).Scan(&ts.ID)
	if err != nil {
		return wrapWriteErr("failed to insert timeslot", err)
	}
	return nil
}

func (r *TimeslotRepository) Update(ctx context.Context, tx db.Executor, ts *timeslot.Timeslot) error {
	tag, err := tx.Exec(ctx,
		`UPDATE timeslots SET resource_id = $1, start_time = $2, end_time = $3 WHERE slot_id = $4`,
		ts.ResourceID, ts.StartTime, ts.EndTime, ts.ID,
	)
	if err != nil {
		return wrapWriteErr("failed to update timeslot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("timeslot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TimeslotRepository) Delete(ctx context.Context, tx db.Executor, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM timeslots WHERE slot_id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete timeslot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("timeslot not found", nil, infra.KindNotFound)
	}
	return nil
}
