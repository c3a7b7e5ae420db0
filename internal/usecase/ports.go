package usecase

import (
	"context"

	"swimapi/internal/domain/reservation"
	"swimapi/internal/domain/resource"
	"swimapi/internal/domain/timeslot"
	"swimapi/internal/domain/user"
	"swimapi/internal/infra/db"
)

// Store ports implemented by internal/infra/repository. Write methods take
// the transaction executor so every mutation runs inside db.WithinTx.

type UserRepository interface {
	List(ctx context.Context) ([]*user.User, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
	Insert(ctx context.Context, tx db.Executor, u *user.User) error
	Update(ctx context.Context, tx db.Executor, u *user.User) error
	Delete(ctx context.Context, tx db.Executor, id int64) error
}

type ResourceRepository interface {
	List(ctx context.Context) ([]*resource.Resource, error)
	FindByID(ctx context.Context, id int64) (*resource.Resource, error)
	Insert(ctx context.Context, tx db.Executor, res *resource.Resource) error
	Update(ctx context.Context, tx db.Executor, res *resource.Resource) error
	Delete(ctx context.Context, tx db.Executor, id int64) error
}

type TimeslotRepository interface {
	List(ctx context.Context) ([]*timeslot.Timeslot, error)
	FindByID(ctx context.Context, id int64) (*timeslot.Timeslot, error)
	Insert(ctx context.Context, tx db.Executor, ts *timeslot.Timeslot) error
	Update(ctx context.Context, tx db.Executor, ts *timeslot.Timeslot) error
	Delete(ctx context.Context, tx db.Executor, id int64) error
}

type ReservationRepository interface {
	List(ctx context.Context) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	FindBySlotID(ctx context.Context, slotID int64) (*reservation.Reservation, error)
	Insert(ctx context.Context, tx db.Executor, res *reservation.Reservation) error
	Delete(ctx context.Context, tx db.Executor, id int64) error
}
