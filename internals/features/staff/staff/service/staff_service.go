package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robostaff_backend/internals/configs"
	"robostaff_backend/internals/features/staff/staff/model"
	helper "robostaff_backend/internals/helpers"
)

// StaffService: identitas + sesi staff. Token opaque dengan expiry geser —
// setiap request terautentikasi memperpanjang umurnya.
type StaffService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db, Now: time.Now}
}

func (s *StaffService) FindByID(id uuid.UUID) (*model.StaffModel, error) {
	var staff model.StaffModel
	if err := s.DB.First(&staff, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// FindByIdentifier mencari staff berdasarkan username ATAU email.
func (s *StaffService) FindByIdentifier(identifier string) (*model.StaffModel, error) {
	var staff model.StaffModel
	if err := s.DB.
		Where("username = ? OR email = ?", identifier, identifier).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// FindByValidToken mencari staff dengan token yang belum kedaluwarsa
// (token tanpa expiry dianggap sah).
func (s *StaffService) FindByValidToken(token string) (*model.StaffModel, error) {
	var staff model.StaffModel
	if err := s.DB.
		Where("auth_token = ? AND (token_expires_at IS NULL OR token_expires_at > ?)", token, s.Now()).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// RegenerateToken membuat token baru + expiry 60 hari. Dipanggil setiap kali
// link koneksi diminta.
func (s *StaffService) RegenerateToken(staff *model.StaffModel) (string, error) {
	staff.AuthToken = helper.GenerateAuthToken(model.AuthTokenLength)
	exp := s.Now().AddDate(0, 0, configs.StaffTokenTTLDays)
	staff.TokenExpiresAt = &exp
	if err := s.DB.Save(staff).Error; err != nil {
		return "", err
	}
	return staff.AuthToken, nil
}

// RefreshTokenExpiration menggeser expiry dan mencatat last_login.
// Side effect dari request terautentikasi, bukan job terjadwal.
func (s *StaffService) RefreshTokenExpiration(staff *model.StaffModel) error {
	exp := s.Now().AddDate(0, 0, configs.StaffTokenTTLDays)
	now := s.Now()
	staff.TokenExpiresAt = &exp
	staff.LastLoginAt = &now
	return s.DB.Save(staff).Error
}

// Anonymize mengacak seluruh PII untuk permintaan penghapusan data.
// Baris dan id DIPERTAHANKAN supaya FK registrasi tetap valid;
// token dirotasi supaya sesi lama mati.
func (s *StaffService) Anonymize(staff *model.StaffModel) error {
	suffix := helper.GenerateAuthToken(8)
	staff.Username = "anonymized_" + suffix
	staff.Email = "anonymized_" + suffix + "@deleted.local"
	staff.FirstName = nil
	staff.LastName = nil
	staff.PhoneNumber = nil
	staff.City = nil
	staff.Languages = nil
	staff.Comment = nil
	staff.PhotoPath = nil
	staff.AuthToken = helper.GenerateAuthToken(model.AuthTokenLength)
	staff.TokenExpiresAt = nil
	return s.DB.Save(staff).Error
}
