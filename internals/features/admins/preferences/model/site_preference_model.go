package model

import (
	"time"

	"gorm.io/gorm"
)

// SitePreferenceModel: konfigurasi situs satu baris (id = 1).
// Di-load eksplisit lewat Load() saat boot lalu di-inject, bukan
// di-query ulang ad hoc di tiap handler.
type SitePreferenceModel struct {
	ID                     uint    `gorm:"primaryKey" json:"id"`
	AssociationDescription *string `gorm:"type:text" json:"association_description,omitempty"`
	LogoPath               *string `gorm:"size:500" json:"logo_path,omitempty"`
	WebsiteURL             *string `gorm:"size:1000" json:"website_url,omitempty"`
	GeneralWhatsappLink    *string `gorm:"size:1000" json:"general_whatsapp_link,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SitePreferenceModel) TableName() string {
	return "site_preferences"
}

const singletonID = 1

// Load mengambil baris preferensi situs; kalau belum ada, dibuat dengan default.
func Load(db *gorm.DB) (*SitePreferenceModel, error) {
	var pref SitePreferenceModel
	pref.ID = singletonID
	if err := db.FirstOrCreate(&pref, SitePreferenceModel{ID: singletonID}).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}
