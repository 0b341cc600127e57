package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventRoleModel struct {
	EventRoleID             uuid.UUID      `gorm:"column:event_role_id;type:uuid;primaryKey" json:"event_role_id"`
	EventRoleEventID        uuid.UUID      `gorm:"column:event_role_event_id;type:uuid;not null;index:idx_event_roles_event_id" json:"event_role_event_id"`
	EventRoleDesignation    string         `gorm:"column:event_role_designation;size:255;not null" json:"event_role_designation"`
	EventRoleNumberRequired int            `gorm:"column:event_role_number_required;not null;default:0" json:"event_role_number_required"`
	EventRoleDocumentLinks  datatypes.JSON `gorm:"column:event_role_document_links;type:jsonb" json:"event_role_document_links,omitempty"`

	EventRoleCreatedAt time.Time `gorm:"column:event_role_created_at;autoCreateTime" json:"event_role_created_at"`
	EventRoleUpdatedAt time.Time `gorm:"column:event_role_updated_at;autoUpdateTime" json:"event_role_updated_at"`
}

func (EventRoleModel) TableName() string {
	return "event_roles"
}

func (m *EventRoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventRoleID == uuid.Nil {
		m.EventRoleID = uuid.New()
	}
	return nil
}
