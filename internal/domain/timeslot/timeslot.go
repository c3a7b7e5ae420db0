package timeslot

import (
	"time"

	"swimapi/internal/pkg/schema"
)

// Timeslot is a bookable window of time on a resource. A slot backs at most
// one reservation; that uniqueness lives in the reservations table.
type Timeslot struct {
	ID         int64
	ResourceID int64
	StartTime  time.Time
	EndTime    time.Time
}

var BodySchema = schema.Object{Fields: []schema.Field{
	{Name: "resource_id", Type: schema.Integer, Required: true},
	{Name: "start_time", Type: schema.DateTime, Required: true},
	{Name: "end_time", Type: schema.DateTime, Required: true},
}}
