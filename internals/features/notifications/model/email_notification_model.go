package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis notifikasi yang dikenal sistem.
const (
	TypeParticipationValidated = "staff_participation_validated"
	TypeRoleAssigned           = "staff_role_assigned"
	TypeEventReminder          = "event_reminder"
	TypeNewRegistration        = "new_staff_registration"
	TypePreferencesChanged     = "staff_preferences_changed"
	TypeConnectionLink         = "connection_link"
)

// RecipientType membedakan dua jenis penerima di ledger.
type RecipientType string

const (
	RecipientAdmin RecipientType = "admin"
	RecipientStaff RecipientType = "staff"
)

// Recipient: union ber-tag Admin(id) | Staff(id) — bukan sepasang string lepas,
// supaya call site tidak bisa salah ketik tipe penerima.
type Recipient struct {
	Type RecipientType
	ID   uuid.UUID
}

func AdminRecipient(id uuid.UUID) Recipient {
	return Recipient{Type: RecipientAdmin, ID: id}
}

func StaffRecipient(id uuid.UUID) Recipient {
	return Recipient{Type: RecipientStaff, ID: id}
}

// EmailNotificationModel: ledger audit + dasar rate-limit.
// Append-only — tidak pernah di-update atau dihapus aplikasi.
type EmailNotificationModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientType    string     `gorm:"size:20;not null;index:idx_notifications_recipient" json:"recipient_type"`
	RecipientID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient" json:"recipient_id"`
	NotificationType string     `gorm:"size:50;not null;index:idx_notifications_recipient" json:"notification_type"`
	EventID          *uuid.UUID `gorm:"type:uuid" json:"event_id,omitempty"`
	SentAt           time.Time  `gorm:"not null" json:"sent_at"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (EmailNotificationModel) TableName() string {
	return "email_notifications"
}

func (m *EmailNotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
