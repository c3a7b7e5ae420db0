//go:build unit

package api_test

import (
	"context"

	"swimapi/internal/domain/reservation"
	"swimapi/internal/domain/resource"
	"swimapi/internal/domain/user"
	"swimapi/internal/usecase"
)

// Hand-written stubs over the usecase ports. A nil function field means the
// test does not expect that call; reaching it panics and fails the test.

type stubUserUseCase struct {
	list        func(ctx context.Context) ([]*user.User, error)
	get         func(ctx context.Context, id int64) (*user.User, error)
	create      func(ctx context.Context, params usecase.CreateUserParams) (*user.User, error)
	createAdmin func(ctx context.Context, params usecase.CreateUserParams) (*user.User, error)
	authorize   func(ctx context.Context, id int64, token string) (*user.User, error)
	replace     func(ctx context.Context, id int64, token string, params usecase.CreateUserParams) error
	remove      func(ctx context.Context, id int64, token string) error
}

func (s *stubUserUseCase) List(ctx context.Context) ([]*user.User, error) { return s.list(ctx) }
func (s *stubUserUseCase) Get(ctx context.Context, id int64) (*user.User, error) {
	return s.get(ctx, id)
}
func (s *stubUserUseCase) Create(ctx context.Context, params usecase.CreateUserParams) (*user.User, error) {
	return s.create(ctx, params)
}
func (s *stubUserUseCase) CreateAdmin(ctx context.Context, params usecase.CreateUserParams) (*user.User, error) {
	return s.createAdmin(ctx, params)
}
func (s *stubUserUseCase) Authorize(ctx context.Context, id int64, token string) (*user.User, error) {
	return s.authorize(ctx, id, token)
}
func (s *stubUserUseCase) Replace(ctx context.Context, id int64, token string, params usecase.CreateUserParams) error {
	return s.replace(ctx, id, token, params)
}
func (s *stubUserUseCase) Delete(ctx context.Context, id int64, token string) error {
	return s.remove(ctx, id, token)
}

type stubResourceUseCase struct {
	list    func(ctx context.Context) ([]*resource.Resource, error)
	get     func(ctx context.Context, id int64) (*resource.Resource, error)
	create  func(ctx context.Context, params usecase.ResourceParams) (*resource.Resource, error)
	replace func(ctx context.Context, id int64, params usecase.ResourceParams) error
	remove  func(ctx context.Context, id int64) error
}

func (s *stubResourceUseCase) List(ctx context.Context) ([]*resource.Resource, error) {
	return s.list(ctx)
}
func (s *stubResourceUseCase) Get(ctx context.Context, id int64) (*resource.Resource, error) {
	return s.get(ctx, id)
}
func (s *stubResourceUseCase) Create(ctx context.Context, params usecase.ResourceParams) (*resource.Resource, error) {
	return s.create(ctx, params)
}
func (s *stubResourceUseCase) Replace(ctx context.Context, id int64, params usecase.ResourceParams) error {
	return s.replace(ctx, id, params)
}
func (s *stubResourceUseCase) Delete(ctx context.Context, id int64) error { return s.remove(ctx, id) }

type stubTimeslotUseCase struct {
	list    func(ctx context.Context) ([]*usecase.TimeslotDetail, error)
	get     func(ctx context.Context, id int64) (*usecase.TimeslotDetail, error)
	create  func(ctx context.Context, params usecase.TimeslotParams) (*usecase.TimeslotDetail, error)
	replace func(ctx context.Context, id int64, params usecase.TimeslotParams) error
	remove  func(ctx context.Context, id int64) error
}

func (s *stubTimeslotUseCase) List(ctx context.Context) ([]*usecase.TimeslotDetail, error) {
	return s.list(ctx)
}
func (s *stubTimeslotUseCase) Get(ctx context.Context, id int64) (*usecase.TimeslotDetail, error) {
	return s.get(ctx, id)
}
func (s *stubTimeslotUseCase) Create(ctx context.Context, params usecase.TimeslotParams) (*usecase.TimeslotDetail, error) {
	return s.create(ctx, params)
}
func (s *stubTimeslotUseCase) Replace(ctx context.Context, id int64, params usecase.TimeslotParams) error {
	return s.replace(ctx, id, params)
}
func (s *stubTimeslotUseCase) Delete(ctx context.Context, id int64) error { return s.remove(ctx, id) }

type stubReservationUseCase struct {
	list   func(ctx context.Context) ([]*reservation.Reservation, error)
	create func(ctx context.Context, userID, slotID int64) (*reservation.Reservation, error)
	get    func(ctx context.Context, id int64, token string) (*reservation.Reservation, error)
	remove func(ctx context.Context, id int64, token string) error
}

func (s *stubReservationUseCase) List(ctx context.Context) ([]*reservation.Reservation, error) {
	return s.list(ctx)
}
func (s *stubReservationUseCase) Create(ctx context.Context, userID, slotID int64) (*reservation.Reservation, error) {
	return s.create(ctx, userID, slotID)
}
func (s *stubReservationUseCase) Get(ctx context.Context, id int64, token string) (*reservation.Reservation, error) {
	return s.get(ctx, id, token)
}
func (s *stubReservationUseCase) Delete(ctx context.Context, id int64, token string) error {
	return s.remove(ctx, id, token)
}

type stubAuthGuard struct {
	resolve func(ctx context.Context, token string) (*user.User, error)
	admin   func(ctx context.Context, token string) (*user.User, error)
}

func (s *stubAuthGuard) ResolveByKey(ctx context.Context, token string) (*user.User, error) {
	return s.resolve(ctx, token)
}

func (s *stubAuthGuard) RequireAdmin(ctx context.Context, token string) (*user.User, error) {
	return s.admin(ctx, token)
}
