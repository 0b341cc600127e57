package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffAvailabilityModel: ketersediaan per (registrasi, hari event),
// pagi & sore independen. Diupsert per hari; pasangan yang belum ada
// dibuat on demand.
type StaffAvailabilityModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RegistrationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_availability_registration_day" json:"registration_id"`
	EventDayID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_availability_registration_day" json:"event_day_id"`

	IsAvailableMorning   bool `gorm:"not null;default:true" json:"is_available_morning"`
	IsAvailableAfternoon bool `gorm:"not null;default:true" json:"is_available_afternoon"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StaffAvailabilityModel) TableName() string {
	return "staff_availability"
}

func (m *StaffAvailabilityModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
