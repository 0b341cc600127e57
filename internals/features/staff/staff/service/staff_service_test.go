package service

import (
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"robostaff_backend/internals/features/staff/staff/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.StaffModel{}))
	return db
}

func seedStaff(t *testing.T, db *gorm.DB, username string) *model.StaffModel {
	t.Helper()
	staff := &model.StaffModel{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

func ptr[T any](v T) *T { return &v }

func TestFindByIdentifier_UsernameOrEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewStaffService(db)
	staff := seedStaff(t, db, "vol1")

	byUsername, err := svc.FindByIdentifier("vol1")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, byUsername.ID)

	byEmail, err := svc.FindByIdentifier("vol1@example.com")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, byEmail.ID)

	_, err = svc.FindByIdentifier("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByValidToken_RespectsExpiry(t *testing.T) {
	db := openTestDB(t)
	svc := NewStaffService(db)
	staff := seedStaff(t, db, "vol1")

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return base }

	token, err := svc.RegenerateToken(staff)
	require.NoError(t, err)
	require.Len(t, token, model.AuthTokenLength)

	// di dalam masa berlaku
	found, err := svc.FindByValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, staff.ID, found.ID)

	// lewat 60 hari: kedaluwarsa
	svc.Now = func() time.Time { return base.AddDate(0, 0, 61) }
	_, err = svc.FindByValidToken(token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRefreshTokenExpiration_SlidesWindowAndRecordsLogin(t *testing.T) {
	db := openTestDB(t)
	svc := NewStaffService(db)
	staff := seedStaff(t, db, "vol1")

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return base }
	_, err := svc.RegenerateToken(staff)
	require.NoError(t, err)

	// 59 hari kemudian token masih hidup; kunjungan menggeser expiry
	svc.Now = func() time.Time { return base.AddDate(0, 0, 59) }
	require.NoError(t, svc.RefreshTokenExpiration(staff))

	// 61 hari dari titik awal = 2 hari setelah refresh — masih valid
	svc.Now = func() time.Time { return base.AddDate(0, 0, 61) }
	found, err := svc.FindByValidToken(staff.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, staff.ID, found.ID)
	require.NotNil(t, found.LastLoginAt)
}

func TestRegenerateToken_InvalidatesOldToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewStaffService(db)
	staff := seedStaff(t, db, "vol1")

	old := staff.AuthToken
	fresh, err := svc.RegenerateToken(staff)
	require.NoError(t, err)
	assert.NotEqual(t, old, fresh)

	_, err = svc.FindByValidToken(old)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAnonymize_KeepsRowScrubsPIIRotatesToken(t *testing.T) {
	db := openTestDB(t)
	svc := NewStaffService(db)

	staff := seedStaff(t, db, "vol1")
	staff.FirstName = ptr("Ana")
	staff.LastName = ptr("Lim")
	staff.PhoneNumber = ptr("+62811111111")
	staff.City = ptr("Bandung")
	staff.Comment = ptr("halo")
	require.NoError(t, db.Save(staff).Error)

	oldID := staff.ID
	oldToken := staff.AuthToken

	require.NoError(t, svc.Anonymize(staff))

	var got model.StaffModel
	require.NoError(t, db.First(&got, "id = ?", oldID).Error)

	// baris & id tetap — FK registrasi historis tidak boleh putus
	assert.Equal(t, oldID, got.ID)
	assert.True(t, strings.HasPrefix(got.Username, "anonymized_"))
	assert.True(t, strings.HasSuffix(got.Email, "@deleted.local"))
	assert.Nil(t, got.FirstName)
	assert.Nil(t, got.LastName)
	assert.Nil(t, got.PhoneNumber)
	assert.Nil(t, got.City)
	assert.Nil(t, got.Comment)
	assert.NotEqual(t, oldToken, got.AuthToken)
	assert.Nil(t, got.TokenExpiresAt)
}

func TestIsProfileComplete(t *testing.T) {
	staff := &model.StaffModel{Username: "vol1", Email: "vol1@example.com"}
	assert.False(t, staff.IsProfileComplete())

	staff.FirstName = ptr("Ana")
	staff.LastName = ptr("Lim")
	assert.False(t, staff.IsProfileComplete())

	staff.PhoneNumber = ptr("+62811111111")
	assert.True(t, staff.IsProfileComplete())

	staff.PhoneNumber = ptr("")
	assert.False(t, staff.IsProfileComplete())
}
