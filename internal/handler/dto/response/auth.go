package response

import (
	"barberbook/internal/domain/identity"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	User UserResponse `json:"user"`
}

func FromIdentity(ident identity.Identity) UserResponse {
	return UserResponse{
		ID:    ident.UserID(),
		Email: ident.Email(),
	}
}
