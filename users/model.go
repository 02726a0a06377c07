package users

import "time"

// User is the stored representation of an account. HashedPassword never
// leaves the service layer; API responses are built from UserResponse, which
// has no password field at all.
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}
