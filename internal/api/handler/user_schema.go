package handler

type updateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Gender   string `json:"gender"`
	Role     string `json:"role"     validate:"required"`
}

// userPageResponse wraps a paginated user listing.
type userPageResponse struct {
	Users []userResponse `json:"users"`
}
