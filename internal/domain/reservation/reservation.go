package reservation

import (
	"time"

	"swimapi/internal/pkg/schema"
)

// Reservation binds exactly one user to exactly one slot. It has no internal
// lifecycle: the row's presence is the confirmation and deletion is terminal.
type Reservation struct {
	ID        int64
	UserID    int64
	SlotID    int64
	CreatedAt time.Time
}

// PostSchema accepts only slot_id; user_id is never taken from the body but
// stamped from the authenticated caller.
var PostSchema = schema.Object{Fields: []schema.Field{
	{Name: "slot_id", Type: schema.Integer, Required: true},
}}
