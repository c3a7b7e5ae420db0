package resource

import (
	"swimapi/internal/pkg/schema"
)

type Type string

const (
	TypePool  Type = "pool"
	TypeSauna Type = "sauna"
	TypeGym   Type = "gym"
)

// Resource is a bookable facility such as a pool, sauna, or gym.
type Resource struct {
	ID          int64
	Name        string
	Description *string
	Type        Type
}

var BodySchema = schema.Object{Fields: []schema.Field{
	{Name: "name", Type: schema.String, Required: true},
	{Name: "resource_type", Type: schema.String, Required: true, Enum: []string{string(TypePool), string(TypeSauna), string(TypeGym)}},
	{Name: "description", Type: schema.String},
}}
