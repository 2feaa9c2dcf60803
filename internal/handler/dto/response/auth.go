package response

import (
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func FromAuthorizedUser(token string, u *usecase.AuthorizedUser) *LoginResponse {
	return &LoginResponse{
		Token: token,
		User: UserResponse{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Role:  u.Role.String(),
		},
	}
}
