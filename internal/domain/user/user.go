package user

import (
	"time"

	"swimapi/internal/pkg/schema"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is an account holder of the swim facility. The API key is an opaque
// secret issued once at creation; it is exposed to the client only in the
// creation response.
type User struct {
	ID        int64
	Name      string
	Email     string
	APIKey    string
	Role      Role
	CreatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BodySchema validates both create and replace bodies. user_type is optional
// and defaults to customer.
var BodySchema = schema.Object{Fields: []schema.Field{
	{Name: "name", Type: schema.String, Required: true},
	{Name: "email", Type: schema.String, Required: true},
	{Name: "user_type", Type: schema.String, Enum: []string{string(RoleCustomer), string(RoleAdmin)}},
}}
