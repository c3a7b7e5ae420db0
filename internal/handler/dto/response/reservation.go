package response

import (
	"time"

	"swimapi/internal/domain/reservation"
)

type ReservationResponse struct {
	ReservationID int64     `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	SlotID        int64     `json:"slot_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ReservationID: res.ID,
		UserID:        res.UserID,
		SlotID:        res.SlotID,
		CreatedAt:     res.CreatedAt,
	}
}

func FromReservations(reservations []*reservation.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, len(reservations))
	for i, res := range reservations {
		out[i] = FromReservation(res)
	}
	return out
}
