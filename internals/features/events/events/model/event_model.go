package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID               uuid.UUID      `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventName             string         `gorm:"column:event_name;size:255;not null" json:"event_name"`
	EventTagname          string         `gorm:"column:event_tagname;size:255;uniqueIndex;not null" json:"event_tagname"`
	EventShortDescription *string        `gorm:"column:event_short_description;size:1000" json:"event_short_description,omitempty"`
	EventLongDescription  *string        `gorm:"column:event_long_description;type:text" json:"event_long_description,omitempty"`
	EventStartDate        time.Time      `gorm:"column:event_start_date;not null" json:"event_start_date"`
	EventEndDate          time.Time      `gorm:"column:event_end_date;not null" json:"event_end_date"`
	EventLocation         *string        `gorm:"column:event_location;size:255" json:"event_location,omitempty"`
	EventContactEmail     *string        `gorm:"column:event_contact_email;size:255" json:"event_contact_email,omitempty"`
	EventLogoPath         *string        `gorm:"column:event_logo_path;size:500" json:"event_logo_path,omitempty"`
	EventWhatsappLink     *string        `gorm:"column:event_whatsapp_link;size:1000" json:"event_whatsapp_link,omitempty"`

	// Daftar {title, url} dokumen umum event.
	EventGeneralDocumentsLinks datatypes.JSON `gorm:"column:event_general_documents_links;type:jsonb" json:"event_general_documents_links,omitempty"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}

// IsPast: event sudah lewat kalau end_date < hari ini (granularitas tanggal).
// end_date == hari ini masih dihitung berjalan.
func (m *EventModel) IsPast(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(m.EventEndDate.Year(), m.EventEndDate.Month(), m.EventEndDate.Day(), 0, 0, 0, 0, time.UTC)
	return end.Before(today)
}

// DurationInDays = jumlah hari kalender inklusif kedua ujung.
func (m *EventModel) DurationInDays() int {
	start := time.Date(m.EventStartDate.Year(), m.EventStartDate.Month(), m.EventStartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(m.EventEndDate.Year(), m.EventEndDate.Month(), m.EventEndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}
