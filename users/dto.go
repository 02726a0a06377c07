// Data transfer objects for the users module. Each request struct carries its
// own Validate method, a pure function over the decoded payload, so handlers
// can reject malformed input before any business logic runs.
package users

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// CreateUserRequest is the payload for creating a user, either through
// registration or through the protected admin-style create endpoint.
type CreateUserRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// Validate enforces the creation constraints: non-empty name, syntactically
// valid email, password of at least 6 characters.
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

// UpdateUserRequest is the payload for partial updates. Pointer fields
// distinguish "not provided" (nil, leave unchanged) from "provided".
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" example:"Jane Doe"`
	Email    *string `json:"email,omitempty" example:"jane.new@example.com"`
	Password *string `json:"password,omitempty" example:"newpassword123"`
}

// Validate checks only the fields that were provided; nil fields are skipped.
// A provided field must carry a real value: empty strings are rejected, since
// ozzo rules treat them as absent and would otherwise wave them through.
func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(6, 72)),
	)
}

// UserResponse is the outward representation of a user. There is no password
// field here, so a stored digest cannot leak through serialization.
type UserResponse struct {
	ID        string    `json:"id" example:"7f8de1a6-0bb3-4f3c-9f9b-c21f67f9a8d2"`
	Name      string    `json:"name" example:"Jane Doe"`
	Email     string    `json:"email" example:"jane@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// DeleteResponse acknowledges a permanent removal.
type DeleteResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}

func newUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
