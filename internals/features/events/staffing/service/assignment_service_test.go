package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	adminModel "robostaff_backend/internals/features/admins/users/model"
	eventModel "robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
	notificationModel "robostaff_backend/internals/features/notifications/model"
	notifService "robostaff_backend/internals/features/notifications/service"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
)

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&adminModel.AdminUserModel{},
		&staffModel.StaffModel{},
		&eventModel.EventModel{},
		&eventModel.EventDayModel{},
		&eventModel.EventRoleModel{},
		&registrationModel.StaffEventRegistrationModel{},
		&registrationModel.StaffRolePreferenceModel{},
		&registrationModel.StaffAvailabilityModel{},
		&notificationModel.EmailNotificationModel{},
	))
	return db
}

type fixture struct {
	svc   *AssignmentService
	mail  *recordingMailer
	staff *staffModel.StaffModel
	event *eventModel.EventModel
	reg   *registrationModel.StaffEventRegistrationModel
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	mail := &recordingMailer{}
	svc := NewAssignmentService(db, notifService.NewNotificationService(db, mail))

	staff := &staffModel.StaffModel{Username: "vol1", Email: "vol1@example.com"}
	require.NoError(t, db.Create(staff).Error)

	event := &eventModel.EventModel{
		EventName:      "Open 2026",
		EventTagname:   "open-2026",
		EventStartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(event).Error)

	reg := &registrationModel.StaffEventRegistrationModel{StaffID: staff.ID, EventID: event.EventID}
	require.NoError(t, db.Create(reg).Error)

	return &fixture{svc: svc, mail: mail, staff: staff, event: event, reg: reg}
}

func seedRole(t *testing.T, db *gorm.DB, event *eventModel.EventModel, designation string, required int) *eventModel.EventRoleModel {
	t.Helper()
	role := &eventModel.EventRoleModel{
		EventRoleEventID:        event.EventID,
		EventRoleDesignation:    designation,
		EventRoleNumberRequired: required,
	}
	require.NoError(t, db.Create(role).Error)
	return role
}

func TestValidate_SetsFlagAndNotifiesStaff(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db)

	require.NoError(t, f.svc.Validate(f.event, f.reg))

	var got registrationModel.StaffEventRegistrationModel
	require.NoError(t, db.First(&got, "id = ?", f.reg.ID).Error)
	assert.True(t, got.IsValidated)
	assert.Equal(t, []string{"vol1@example.com"}, f.mail.sent)

	var ledger int64
	require.NoError(t, db.Model(&notificationModel.EmailNotificationModel{}).
		Where("notification_type = ?", notificationModel.TypeParticipationValidated).
		Count(&ledger).Error)
	assert.EqualValues(t, 1, ledger)

	// idempoten: validasi ulang tidak error
	require.NoError(t, f.svc.Validate(f.event, f.reg))
}

func TestAssignRole_RejectsForeignRole(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db)

	other := &eventModel.EventModel{
		EventName:      "Other",
		EventTagname:   "other-2026",
		EventStartDate: f.event.EventStartDate,
		EventEndDate:   f.event.EventEndDate,
	}
	require.NoError(t, db.Create(other).Error)
	foreign := seedRole(t, db, other, "Referee", 1)

	_, err := f.svc.AssignRole(f.event, f.reg, foreign.EventRoleID)
	assert.ErrorIs(t, err, ErrRoleNotFound)

	var got registrationModel.StaffEventRegistrationModel
	require.NoError(t, db.First(&got, "id = ?", f.reg.ID).Error)
	assert.Nil(t, got.AssignedRoleID)
}

func TestAssignRole_AllowsOverstaffing(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db)
	role := seedRole(t, db, f.event, "Referee", 1)

	// registrasi kedua di role yang sama, melebihi number_required
	staff2 := &staffModel.StaffModel{Username: "vol2", Email: "vol2@example.com"}
	require.NoError(t, db.Create(staff2).Error)
	reg2 := &registrationModel.StaffEventRegistrationModel{StaffID: staff2.ID, EventID: f.event.EventID}
	require.NoError(t, db.Create(reg2).Error)

	_, err := f.svc.AssignRole(f.event, f.reg, role.EventRoleID)
	require.NoError(t, err)
	_, err = f.svc.AssignRole(f.event, reg2, role.EventRoleID)
	require.NoError(t, err)

	count, err := f.svc.AssignedCount(role.EventRoleID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	full, err := f.svc.IsFullyStaffed(role)
	require.NoError(t, err)
	assert.True(t, full)
}

func TestIsFullyStaffed_BelowRequirement(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db)
	role := seedRole(t, db, f.event, "Referee", 3)

	_, err := f.svc.AssignRole(f.event, f.reg, role.EventRoleID)
	require.NoError(t, err)

	full, err := f.svc.IsFullyStaffed(role)
	require.NoError(t, err)
	assert.False(t, full)
}

func TestSendReminder_OnlyValidatedRegistrations(t *testing.T) {
	db := openTestDB(t)
	f := newFixture(t, db)

	// registrasi kedua, tidak divalidasi
	staff2 := &staffModel.StaffModel{Username: "vol2", Email: "vol2@example.com"}
	require.NoError(t, db.Create(staff2).Error)
	reg2 := &registrationModel.StaffEventRegistrationModel{StaffID: staff2.ID, EventID: f.event.EventID}
	require.NoError(t, db.Create(reg2).Error)

	require.NoError(t, f.svc.Validate(f.event, f.reg))
	f.mail.sent = nil

	sent, err := f.svc.SendReminder(f.event)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{"vol1@example.com"}, f.mail.sent)
}
