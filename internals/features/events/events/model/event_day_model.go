package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventDayModel struct {
	EventDayID      uuid.UUID `gorm:"column:event_day_id;type:uuid;primaryKey" json:"event_day_id"`
	EventDayEventID uuid.UUID `gorm:"column:event_day_event_id;type:uuid;not null;uniqueIndex:ux_event_days_event_date" json:"event_day_event_id"`
	EventDayDate    time.Time `gorm:"column:event_day_date;not null;uniqueIndex:ux_event_days_event_date" json:"event_day_date"`
	EventDaySchedule *string  `gorm:"column:event_day_schedule;type:text" json:"event_day_schedule,omitempty"`

	EventDayCreatedAt time.Time `gorm:"column:event_day_created_at;autoCreateTime" json:"event_day_created_at"`
	EventDayUpdatedAt time.Time `gorm:"column:event_day_updated_at;autoUpdateTime" json:"event_day_updated_at"`
}

func (EventDayModel) TableName() string {
	return "event_days"
}

func (m *EventDayModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventDayID == uuid.Nil {
		m.EventDayID = uuid.New()
	}
	return nil
}
