package handler

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Age      *int   `json:"age"      validate:"omitempty,gte=0,lte=150"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// refreshRequest uses a pointer so an absent refresh_token field (400) is
// distinguishable from a present-but-empty one (401, handled downstream).
type refreshRequest struct {
	RefreshToken *string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken *string `json:"refresh_token" validate:"required"`
}

type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}
