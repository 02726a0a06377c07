package auth

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// Validate enforces the registration constraints: non-empty name,
// syntactically valid email, password of at least 6 characters.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"strongpassword123"`
}

// Validate checks the login payload shape, including the same password
// length floor as registration: a password shorter than 6 characters can
// never match a stored account, so it is rejected as malformed input before
// the credential check runs. Whether the credentials are correct is the
// service's concern, not validation's.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 72)),
	)
}

// LoginResponse is the envelope returned on successful login. It carries the
// token at the top level rather than under data.
type LoginResponse struct {
	Status  bool   `json:"status" example:"true"`
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
