package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffEventRegistrationModel: relasi satu staff ↔ satu event.
// Unik pada (staff_id, event_id) — constraint DB adalah sumber kebenaran
// saat ada dua request register yang balapan.
type StaffEventRegistrationModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_registrations_staff_event" json:"staff_id"`
	EventID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_registrations_staff_event" json:"event_id"`

	Comment              *string    `gorm:"type:text" json:"comment,omitempty"`
	HelpBeforeEvent      bool       `gorm:"not null;default:false" json:"help_before_event"`
	TeamAffiliation      *string    `gorm:"size:500" json:"team_affiliation,omitempty"`
	IsFirstParticipation bool       `gorm:"not null;default:false" json:"is_first_participation"`
	IsValidated          bool       `gorm:"not null;default:false" json:"is_validated"`
	AssignedRoleID       *uuid.UUID `gorm:"type:uuid" json:"assigned_role_id,omitempty"`

	RolePreferences []StaffRolePreferenceModel `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" json:"role_preferences,omitempty"`
	Availability    []StaffAvailabilityModel   `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE" json:"availability,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StaffEventRegistrationModel) TableName() string {
	return "staff_event_registrations"
}

func (m *StaffEventRegistrationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
