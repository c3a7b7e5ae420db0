package usecase

import "swimapi/internal/pkg/errs"

// Sentinel errors handlers translate into the HTTP error taxonomy.
var (
	// 403 Forbidden
	ErrMissingAPIKey = errs.New("missing api key")
	ErrInvalidAPIKey = errs.New("invalid api key")
	ErrAdminRequired = errs.New("admin privileges required")

	// 404 Not Found
	ErrUserNotFound        = errs.New("user not found")
	ErrResourceNotFound    = errs.New("resource not found")
	ErrTimeslotNotFound    = errs.New("timeslot not found")
	ErrReservationNotFound = errs.New("reservation not found")

	// 409 Conflict
	ErrEmailTaken          = errs.New("email already in use")
	ErrResourceConflict    = errs.New("resource conflict")
	ErrTimeslotConflict    = errs.New("timeslot conflict")
	ErrSlotAlreadyReserved = errs.New("timeslot already reserved")
	ErrReservationConflict = errs.New("reservation conflict")
)
