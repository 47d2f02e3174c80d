package domain

import (
	"errors"
	"time"
)

// RoleManager is the privileged role allowed to create movies.
// Roles are free-form strings; only this one carries extra rights.
const RoleManager = "Manager"

var ErrEmailTaken = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid token")

// ErrNotOwner is returned when a caller tries to modify a user record that
// is not their own.
var ErrNotOwner = errors.New("not the record owner")

// User models a registered account. PasswordHash is the bcrypt digest and
// never crosses the API boundary; handlers shape output through DTOs and
// the json tag is a second line of defence.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Gender       string    `json:"gender,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
