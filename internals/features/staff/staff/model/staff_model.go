package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "robostaff_backend/internals/helpers"
)

// Panjang token koneksi yang dikirim via email.
const AuthTokenLength = 64

type StaffModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string         `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email       string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FirstName   *string        `gorm:"size:255" json:"first_name,omitempty"`
	LastName    *string        `gorm:"size:255" json:"last_name,omitempty"`
	PhoneNumber *string        `gorm:"size:50" json:"phone_number,omitempty"`
	City        *string        `gorm:"size:255" json:"city,omitempty"`
	Languages   datatypes.JSON `gorm:"type:jsonb" json:"languages,omitempty"`
	Comment     *string        `gorm:"type:text" json:"comment,omitempty"`
	PhotoPath   *string        `gorm:"size:500" json:"photo_path,omitempty"`

	// Token koneksi (opaque). Tidak pernah ikut ke-serialize ke client.
	AuthToken      string     `gorm:"size:64;index;not null" json:"-"`
	TokenExpiresAt *time.Time `json:"-"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StaffModel) TableName() string {
	return "staff"
}

// BeforeCreate mengisi UUID + token awal.
func (m *StaffModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.AuthToken == "" {
		m.AuthToken = helper.GenerateAuthToken(AuthTokenLength)
	}
	return nil
}

// IsProfileComplete: profil lengkap jika nama depan, nama belakang, dan nomor HP terisi.
func (m *StaffModel) IsProfileComplete() bool {
	return notEmpty(m.FirstName) && notEmpty(m.LastName) && notEmpty(m.PhoneNumber)
}

// DisplayName dipakai di isi email notifikasi admin.
func (m *StaffModel) DisplayName() string {
	if notEmpty(m.FirstName) {
		return *m.FirstName
	}
	return m.Username
}

func notEmpty(s *string) bool {
	return s != nil && *s != ""
}
