package response

import (
	"time"

	"swimapi/internal/domain/user"
)

type UserResponse struct {
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UserType  string    `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
	// APIKey is only populated on the creation response.
	APIKey string `json:"api_key,omitempty"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		UserType:  string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// FromCreatedUser exposes the freshly issued key; the only time it is ever
// returned to a client.
func FromCreatedUser(u *user.User) *UserResponse {
	resp := FromUser(u)
	resp.APIKey = u.APIKey
	return resp
}

func FromUsers(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = FromUser(u)
	}
	return out
}
