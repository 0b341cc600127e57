package dto

import (
	"time"

	"github.com/google/uuid"

	"robostaff_backend/internals/features/events/registrations/model"
)

// 🔹 Request update field registrasi (komentar & flag)
type UpdateRegistrationRequest struct {
	Comment              *string `json:"comment" validate:"omitempty,max=2000"`
	HelpBeforeEvent      *bool   `json:"help_before_event"`
	TeamAffiliation      *string `json:"team_affiliation" validate:"omitempty,max=500"`
	IsFirstParticipation *bool   `json:"is_first_participation"`
}

// 🔹 Request ganti preferensi role (1–3 id, urutan = rank)
type RolePreferencesRequest struct {
	RoleIDs []uuid.UUID `json:"role_ids" validate:"required,min=1"`
}

// 🔹 Request availability — parsial sah, per hari
type AvailabilityRequest struct {
	Availability []AvailabilityItem `json:"availability" validate:"required,min=1,dive"`
}

type AvailabilityItem struct {
	EventDayID           uuid.UUID `json:"event_day_id" validate:"required"`
	IsAvailableMorning   bool      `json:"is_available_morning"`
	IsAvailableAfternoon bool      `json:"is_available_afternoon"`
}

// 🔹 Response registrasi
type RegistrationResponse struct {
	ID                   uuid.UUID              `json:"id"`
	StaffID              uuid.UUID              `json:"staff_id"`
	EventID              uuid.UUID              `json:"event_id"`
	Comment              *string                `json:"comment,omitempty"`
	HelpBeforeEvent      bool                   `json:"help_before_event"`
	TeamAffiliation      *string                `json:"team_affiliation,omitempty"`
	IsFirstParticipation bool                   `json:"is_first_participation"`
	IsValidated          bool                   `json:"is_validated"`
	AssignedRoleID       *uuid.UUID             `json:"assigned_role_id,omitempty"`
	IsComplete           bool                   `json:"is_complete"`
	RolePreferences      []RolePreferenceItem   `json:"role_preferences,omitempty"`
	Availability         []AvailabilityResponse `json:"availability,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
}

type RolePreferenceItem struct {
	RoleID          uuid.UUID `json:"role_id"`
	PreferenceOrder int       `json:"preference_order"`
}

type AvailabilityResponse struct {
	EventDayID           uuid.UUID `json:"event_day_id"`
	IsAvailableMorning   bool      `json:"is_available_morning"`
	IsAvailableAfternoon bool      `json:"is_available_afternoon"`
}

func ToRegistrationResponse(m *model.StaffEventRegistrationModel, isComplete bool) *RegistrationResponse {
	resp := &RegistrationResponse{
		ID:                   m.ID,
		StaffID:              m.StaffID,
		EventID:              m.EventID,
		Comment:              m.Comment,
		HelpBeforeEvent:      m.HelpBeforeEvent,
		TeamAffiliation:      m.TeamAffiliation,
		IsFirstParticipation: m.IsFirstParticipation,
		IsValidated:          m.IsValidated,
		AssignedRoleID:       m.AssignedRoleID,
		IsComplete:           isComplete,
		CreatedAt:            m.CreatedAt,
	}
	for _, p := range m.RolePreferences {
		resp.RolePreferences = append(resp.RolePreferences, RolePreferenceItem{
			RoleID:          p.RoleID,
			PreferenceOrder: p.PreferenceOrder,
		})
	}
	for _, a := range m.Availability {
		resp.Availability = append(resp.Availability, AvailabilityResponse{
			EventDayID:           a.EventDayID,
			IsAvailableMorning:   a.IsAvailableMorning,
			IsAvailableAfternoon: a.IsAvailableAfternoon,
		})
	}
	return resp
}
