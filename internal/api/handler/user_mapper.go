package handler

import "github.com/userhub/identity-system/internal/core/domain"

// toUserResponse strips secret fields from a domain user.
func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
