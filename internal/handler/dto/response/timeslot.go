package response

import (
	"time"

	"swimapi/internal/usecase"
)

type TimeslotResponse struct {
	SlotID     int64     `json:"slot_id"`
	ResourceID int64     `json:"resource_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	// Reservation is the booking on this slot, or null when the slot is
	// free. The field is always present.
	Reservation *ReservationResponse `json:"reservation"`
}

func FromTimeslotDetail(d *usecase.TimeslotDetail) *TimeslotResponse {
	resp := &TimeslotResponse{
		SlotID:     d.Slot.ID,
		ResourceID: d.Slot.ResourceID,
		StartTime:  d.Slot.StartTime,
		EndTime:    d.Slot.EndTime,
	}
	if d.Reservation != nil {
		resp.Reservation = FromReservation(d.Reservation)
	}
	return resp
}

func FromTimeslotDetails(details []*usecase.TimeslotDetail) []*TimeslotResponse {
	out := make([]*TimeslotResponse, len(details))
	for i, d := range details {
		out[i] = FromTimeslotDetail(d)
	}
	return out
}
