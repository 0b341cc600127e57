package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"robostaff_backend/internals/features/staff/staff/model"
)

// 🔹 Request update profil (semua field opsional)
type UpdateProfileRequest struct {
	FirstName   *string  `json:"first_name" validate:"omitempty,max=255"`
	LastName    *string  `json:"last_name" validate:"omitempty,max=255"`
	PhoneNumber *string  `json:"phone_number" validate:"omitempty,max=50"`
	City        *string  `json:"city" validate:"omitempty,max=255"`
	Languages   []string `json:"languages" validate:"omitempty,dive,max=100"`
	Comment     *string  `json:"comment" validate:"omitempty,max=2000"`
}

// ApplyTo menyalin field yang dikirim ke model.
func (r *UpdateProfileRequest) ApplyTo(m *model.StaffModel) {
	if r.FirstName != nil {
		m.FirstName = r.FirstName
	}
	if r.LastName != nil {
		m.LastName = r.LastName
	}
	if r.PhoneNumber != nil {
		m.PhoneNumber = r.PhoneNumber
	}
	if r.City != nil {
		m.City = r.City
	}
	if r.Languages != nil {
		if raw, err := json.Marshal(r.Languages); err == nil {
			m.Languages = datatypes.JSON(raw)
		}
	}
	if r.Comment != nil {
		m.Comment = r.Comment
	}
}

// 🔹 Response profil staff
type StaffResponse struct {
	ID                uuid.UUID      `json:"id"`
	Username          string         `json:"username"`
	Email             string         `json:"email"`
	FirstName         *string        `json:"first_name,omitempty"`
	LastName          *string        `json:"last_name,omitempty"`
	PhoneNumber       *string        `json:"phone_number,omitempty"`
	City              *string        `json:"city,omitempty"`
	Languages         datatypes.JSON `json:"languages,omitempty"`
	Comment           *string        `json:"comment,omitempty"`
	PhotoPath         *string        `json:"photo_path,omitempty"`
	IsProfileComplete bool           `json:"is_profile_complete"`
	LastLoginAt       *time.Time     `json:"last_login_at,omitempty"`
}

func ToStaffResponse(m *model.StaffModel) *StaffResponse {
	return &StaffResponse{
		ID:                m.ID,
		Username:          m.Username,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		PhoneNumber:       m.PhoneNumber,
		City:              m.City,
		Languages:         m.Languages,
		Comment:           m.Comment,
		PhotoPath:         m.PhotoPath,
		IsProfileComplete: m.IsProfileComplete(),
		LastLoginAt:       m.LastLoginAt,
	}
}
