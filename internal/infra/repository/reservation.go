package repository

import (
	"context"
	"errors"

	"swimapi/internal/domain/reservation"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db db.Executor
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: pool}
}

const reservationColumns = `reservation_id, user_id, slot_id, created_at`

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var res reservation.Reservation
	err := row.Scan(&res.ID, &res.UserID, &res.SlotID, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY reservation_id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var reservations []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE reservation_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// FindBySlotID resolves the slot back-reference. A slot without a
// reservation returns (nil, nil) rather than a NOT_FOUND error because the
// absence is a normal answer for timeslot serialization.
func (r *ReservationRepository) FindBySlotID(ctx context.Context, slotID int64) (*reservation.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE slot_id = $1`, slotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find reservation by slot ID", err)
	}
	return res, nil
}

// Insert is the booking-race guard: two concurrent inserts for the same slot
// both reach the store, and UNIQUE (slot_id) lets exactly one commit. The
// loser gets DUPLICATE_KEY.
func (r *ReservationRepository) Insert(ctx context.Context, tx db.Executor, res *reservation.Reservation) error {
	err := tx.QueryRow(ctx,
		`INSERT INTO reservations (user_id, slot_id)
		 VALUES ($1, $2)
		 RETURNING reservation_id, created_at`,
		res.UserID, res.SlotID,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return wrapWriteErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx db.Executor, id int64) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reservations WHERE reservation_id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
