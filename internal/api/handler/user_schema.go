package handler

import "time"

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Age      *int   `json:"age"      validate:"omitempty,gte=0,lte=150"`
}

// userResponse is the sanitized user view. The key set is fixed: age
// marshals as null when absent so every returned user object has identical
// keys, and no secret field ever appears.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Age       *int      `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}
