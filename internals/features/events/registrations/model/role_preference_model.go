package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRolePreferenceModel: preferensi role ber-rank 1..3 milik satu registrasi.
// Satu-satunya jalur mutasi adalah replace-all di service, jadi rank selalu
// ditulis ulang 1..N; unique index tinggal sebagai pengaman.
type StaffRolePreferenceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RegistrationID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_preferences_registration_order" json:"registration_id"`
	RoleID          uuid.UUID `gorm:"type:uuid;not null" json:"role_id"`
	PreferenceOrder int       `gorm:"not null;uniqueIndex:ux_preferences_registration_order" json:"preference_order"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (StaffRolePreferenceModel) TableName() string {
	return "staff_role_preferences"
}

func (m *StaffRolePreferenceModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
