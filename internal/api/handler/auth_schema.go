package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Gender   string `json:"gender"`
	Role     string `json:"role"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the output shape for a user record. The password hash is
// deliberately absent; this DTO is the only user representation that
// crosses the wire.
type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Gender    string    `json:"gender,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// loginUserResponse mirrors the original login payload: id, email, role only.
type loginUserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	User  loginUserResponse `json:"user"`
	Token string            `json:"token"`
}

type claimsResponse struct {
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"exp"`
}

type verifyResponse struct {
	Data claimsResponse `json:"data"`
}
