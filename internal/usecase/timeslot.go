package usecase

import (
	"context"
	"time"

	"swimapi/internal/domain/reservation"
	"swimapi/internal/domain/timeslot"
	"swimapi/internal/infra"
	"swimapi/internal/infra/db"
	"swimapi/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeslotParams struct {
	ResourceID int64
	StartTime  time.Time
	EndTime    time.Time
}

// TimeslotDetail pairs a slot with its reservation, if any. The reservation
// is resolved through an explicit slot-reference query instead of an object
// back-reference.
type TimeslotDetail struct {
	Slot        *timeslot.Timeslot
	Reservation *reservation.Reservation
}

type TimeslotUseCase interface {
	List(ctx context.Context) ([]*TimeslotDetail, error)
	Get(ctx context.Context, id int64) (*TimeslotDetail, error)
	Create(ctx context.Context, params TimeslotParams) (*TimeslotDetail, error)
	Replace(ctx context.Context, id int64, params TimeslotParams) error
	Delete(ctx context.Context, id int64) error
}

type timeslotUseCaseImpl struct {
	timeslots    TimeslotRepository
	reservations ReservationRepository
	pool         *pgxpool.Pool
}

func NewTimeslotUseCase(timeslots TimeslotRepository, reservations ReservationRepository, pool *pgxpool.Pool) TimeslotUseCase {
	return &timeslotUseCaseImpl{timeslots: timeslots, reservations: reservations, pool: pool}
}

func (uc *timeslotUseCaseImpl) List(ctx context.Context) ([]*TimeslotDetail, error) {
	slots, err := uc.timeslots.List(ctx)
	if err != nil {
		return nil, err
	}

	reservations, err := uc.reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	bySlot := make(map[int64]*reservation.Reservation, len(reservations))
	for _, res := range reservations {
		bySlot[res.SlotID] = res
	}

	details := make([]*TimeslotDetail, len(slots))
	for i, ts := range slots {
		details[i] = &TimeslotDetail{Slot: ts, Reservation: bySlot[ts.ID]}
	}
	return details, nil
}

func (uc *timeslotUseCaseImpl) Get(ctx context.Context, id int64) (*TimeslotDetail, error) {
	ts, err := uc.timeslots.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTimeslotNotFound)
		}
		return nil, err
	}

	res, err := uc.reservations.FindBySlotID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &TimeslotDetail{Slot: ts, Reservation: res}, nil
}

func (uc *timeslotUseCaseImpl) Create(ctx context.Context, params TimeslotParams) (*TimeslotDetail, error) {
	ts := &timeslot.Timeslot{
		ResourceID: params.ResourceID,
		StartTime:  params.StartTime,
		EndTime:    params.EndTime,
	}

	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.timeslots.Insert(ctx, tx, ts)
	})
	if err != nil {
		// Both a duplicate window and a dangling resource reference are
		// constraint verdicts, reported as conflicts.
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrTimeslotConflict)
		}
		return nil, err
	}
	return &TimeslotDetail{Slot: ts}, nil
}

func (uc *timeslotUseCaseImpl) Replace(ctx context.Context, id int64, params TimeslotParams) error {
	ts := &timeslot.Timeslot{
		ID:         id,
		ResourceID: params.ResourceID,
		StartTime:  params.StartTime,
		EndTime:    params.EndTime,
	}

	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.timeslots.Update(ctx, tx, ts)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrTimeslotNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrTimeslotConflict)
		}
		return err
	}
	return nil
}

func (uc *timeslotUseCaseImpl) Delete(ctx context.Context, id int64) error {
	err := db.WithinTx(ctx, uc.pool, func(ctx context.Context, tx db.Executor) error {
		return uc.timeslots.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrTimeslotNotFound)
		}
		return err
	}
	return nil
}
