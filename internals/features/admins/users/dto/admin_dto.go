package dto

import (
	"github.com/google/uuid"

	"robostaff_backend/internals/features/admins/users/model"
)

// 🔹 Request login admin
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🔹 Response profil admin
type AdminResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

func ToAdminResponse(m *model.AdminUserModel) *AdminResponse {
	return &AdminResponse{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		IsActive: m.IsActive,
	}
}
