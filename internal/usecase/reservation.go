package usecase

import (
	"context"

	"swimapi/internal/domain/reservation"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"
	"swimapi/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationUseCase interface {
	List(ctx context.Context) ([]*reservation.Reservation, error)
	// Create books slotID for the given principal. Concurrent attempts on
	// the same slot are settled by the store's uniqueness constraint: the
	// loser gets ErrSlotAlreadyReserved, never a double booking.
	Create(ctx context.Context, userID, slotID int64) (*reservation.Reservation, error)
	// Get and Delete verify the token against the stored owner's key; the
	// token string comes straight from the request header.
	Get(ctx context.Context, id int64, token string) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64, token string) error
}

type reservationUseCaseImpl struct {
	reservations ReservationRepository
	users        UserRepository
	pool         *pgxpool.Pool
}

func NewReservationUseCase(reservations ReservationRepository, users UserRepository, pool *pgxpool.Pool) ReservationUseCase {
	return &reservationUseCaseImpl{reservations: reservations, users: users, pool: pool}
}

func (uc *reservationUseCaseImpl) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return uc.reservations.List(ctx)
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, userID, slotID int64) (*reservation.Reservation, error) {
	res := &reservation.Reservation{
		UserID: userID,
		SlotID: slotID,
	}

	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.reservations.Insert(ctx, tx, res)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrSlotAlreadyReserved)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			// Unknown slot (or a vanished user) is a referential verdict,
			// not a validation failure.
			return nil, errs.Mark(err, ErrReservationConflict)
		}
		return nil, err
	}
	return res, nil
}

func (uc *reservationUseCaseImpl) Get(ctx context.Context, id int64, token string) (*reservation.Reservation, error) {
	res, err := uc.findAuthorized(ctx, id, token)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (uc *reservationUseCaseImpl) Delete(ctx context.Context, id int64, token string) error {
	res, err := uc.findAuthorized(ctx, id, token)
	if err != nil {
		return err
	}

	err = db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.reservations.Delete(ctx, tx, res.ID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrReservationNotFound)
		}
		return err
	}
	return nil
}

// findAuthorized loads the reservation (404 first), then its owner, then
// compares the presented token against the owner's key (403 second).
func (uc *reservationUseCaseImpl) findAuthorized(ctx context.Context, id int64, token string) (*reservation.Reservation, error) {
	res, err := uc.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}

	owner, err := uc.users.FindByID(ctx, res.UserID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reservation owner")
	}
	if err := VerifyOwner(token, owner); err != nil {
		return nil, err
	}
	return res, nil
}
