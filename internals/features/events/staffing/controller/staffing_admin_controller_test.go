package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	adminModel "robostaff_backend/internals/features/admins/users/model"
	eventModel "robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
	registrationService "robostaff_backend/internals/features/events/registrations/service"
	staffingService "robostaff_backend/internals/features/events/staffing/service"
	notificationModel "robostaff_backend/internals/features/notifications/model"
	notifService "robostaff_backend/internals/features/notifications/service"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
)

type noopMailer struct{}

func (noopMailer) Send(to, subject, body string) error { return nil }

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

func ptr[T any](v T) *T { return &v }

func TestValidateHandler_ReportsCompleteness(t *testing.T) {
	db := openTestDB(t)
	notifier := notifService.NewNotificationService(db, noopMailer{})
	registrations := registrationService.NewRegistrationService(db, notifier)
	assignments := staffingService.NewAssignmentService(db, notifier)
	ctrl := NewStaffingAdminController(db, assignments, registrations)

	// staff berprofil lengkap + registrasi dengan preferensi & availability
	staff := &staffModel.StaffModel{
		Username:    "vol1",
		Email:       "vol1@example.com",
		FirstName:   ptr("Ana"),
		LastName:    ptr("Lim"),
		PhoneNumber: ptr("+62811111111"),
	}
	require.NoError(t, db.Create(staff).Error)

	event := &eventModel.EventModel{
		EventName:      "Open 2026",
		EventTagname:   "open-2026",
		EventStartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(event).Error)

	day := &eventModel.EventDayModel{EventDayEventID: event.EventID, EventDayDate: event.EventStartDate}
	require.NoError(t, db.Create(day).Error)
	role := &eventModel.EventRoleModel{EventRoleEventID: event.EventID, EventRoleDesignation: "Referee"}
	require.NoError(t, db.Create(role).Error)

	reg := &registrationModel.StaffEventRegistrationModel{StaffID: staff.ID, EventID: event.EventID}
	require.NoError(t, db.Create(reg).Error)
	require.NoError(t, db.Create(&registrationModel.StaffRolePreferenceModel{
		RegistrationID: reg.ID, RoleID: role.EventRoleID, PreferenceOrder: 1,
	}).Error)
	require.NoError(t, db.Create(&registrationModel.StaffAvailabilityModel{
		RegistrationID: reg.ID, EventDayID: day.EventDayID,
		IsAvailableMorning: true, IsAvailableAfternoon: true,
	}).Error)

	app := fiber.New()
	app.Post("/admin/events/:tagname/registrations/:registrationId/validate", ctrl.Validate)

	req := httptest.NewRequest("POST",
		"/admin/events/open-2026/registrations/"+reg.ID.String()+"/validate", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Data struct {
			IsValidated bool `json:"is_validated"`
			IsComplete  bool `json:"is_complete"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.True(t, envelope.Data.IsValidated)
	// kelengkapan dihitung dari state, bukan nilai tetap
	assert.True(t, envelope.Data.IsComplete)
}
