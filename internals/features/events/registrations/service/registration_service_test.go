package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	adminModel "robostaff_backend/internals/features/admins/users/model"
	eventModel "robostaff_backend/internals/features/events/events/model"
	eventService "robostaff_backend/internals/features/events/events/service"
	"robostaff_backend/internals/features/events/registrations/model"
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
		&model.StaffEventRegistrationModel{},
		&model.StaffRolePreferenceModel{},
		&model.StaffAvailabilityModel{},
		&notificationModel.EmailNotificationModel{},
	))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) *RegistrationService {
	t.Helper()
	notifier := notifService.NewNotificationService(db, noopMailer{})
	return NewRegistrationService(db, notifier)
}

func seedStaff(t *testing.T, db *gorm.DB, username string) *staffModel.StaffModel {
	t.Helper()
	staff := &staffModel.StaffModel{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

// seedEvent membuat event 3 hari (12–14 Sep 2026) lengkap dengan kalendernya.
func seedEvent(t *testing.T, db *gorm.DB, tagname string) *eventModel.EventModel {
	t.Helper()
	event := &eventModel.EventModel{
		EventName:      "Event " + tagname,
		EventTagname:   tagname,
		EventStartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(event).Error)
	require.NoError(t, eventService.NewCalendarService(db).CreateEventDays(db, event))
	return event
}

func seedRole(t *testing.T, db *gorm.DB, event *eventModel.EventModel, designation string) *eventModel.EventRoleModel {
	t.Helper()
	role := &eventModel.EventRoleModel{
		EventRoleEventID:        event.EventID,
		EventRoleDesignation:    designation,
		EventRoleNumberRequired: 2,
	}
	require.NoError(t, db.Create(role).Error)
	return role
}

func ptr[T any](v T) *T { return &v }

func TestRegister_CreatesDefaultAvailabilityForEveryDay(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)

	var avail []model.StaffAvailabilityModel
	require.NoError(t, db.Where("registration_id = ?", reg.ID).Find(&avail).Error)
	require.Len(t, avail, 3)
	for _, a := range avail {
		assert.True(t, a.IsAvailableMorning)
		assert.True(t, a.IsAvailableAfternoon)
	}
}

func TestRegister_RejectsDuplicate(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")

	_, err := svc.Register(staff, event)
	require.NoError(t, err)

	_, err = svc.Register(staff, event)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	var count int64
	require.NoError(t, db.Model(&model.StaffEventRegistrationModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegister_EventEndedBoundary(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026") // berakhir 14 Sep

	// sehari setelah end_date: ditolak
	svc.Now = func() time.Time { return time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC) }
	_, err := svc.Register(staff, event)
	assert.ErrorIs(t, err, ErrEventEnded)

	// tepat di hari terakhir: masih boleh
	svc.Now = func() time.Time { return time.Date(2026, 9, 14, 23, 0, 0, 0, time.UTC) }
	_, err = svc.Register(staff, event)
	assert.NoError(t, err)
}

func TestCancel_RemovesChildren(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")
	role := seedRole(t, db, event, "Referee")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)
	require.NoError(t, svc.SetRolePreferences(staff, event, reg, []uuid.UUID{role.EventRoleID}))

	require.NoError(t, svc.Cancel(staff.ID, event.EventID))

	var regs, prefs, avail int64
	require.NoError(t, db.Model(&model.StaffEventRegistrationModel{}).Count(&regs).Error)
	require.NoError(t, db.Model(&model.StaffRolePreferenceModel{}).Count(&prefs).Error)
	require.NoError(t, db.Model(&model.StaffAvailabilityModel{}).Count(&avail).Error)
	assert.Zero(t, regs)
	assert.Zero(t, prefs)
	assert.Zero(t, avail)

	assert.ErrorIs(t, svc.Cancel(staff.ID, event.EventID), gorm.ErrRecordNotFound)
}

func TestSetRolePreferences_TruncatesToThreeInOrder(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")
	r1 := seedRole(t, db, event, "Referee")
	r2 := seedRole(t, db, event, "Scorekeeper")
	r3 := seedRole(t, db, event, "Field setup")
	r4 := seedRole(t, db, event, "Welcome desk")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)

	require.NoError(t, svc.SetRolePreferences(staff, event, reg,
		[]uuid.UUID{r1.EventRoleID, r2.EventRoleID, r3.EventRoleID, r4.EventRoleID}))

	var prefs []model.StaffRolePreferenceModel
	require.NoError(t, db.Where("registration_id = ?", reg.ID).
		Order("preference_order ASC").Find(&prefs).Error)
	require.Len(t, prefs, 3)
	assert.Equal(t, r1.EventRoleID, prefs[0].RoleID)
	assert.Equal(t, 1, prefs[0].PreferenceOrder)
	assert.Equal(t, r2.EventRoleID, prefs[1].RoleID)
	assert.Equal(t, 2, prefs[1].PreferenceOrder)
	assert.Equal(t, r3.EventRoleID, prefs[2].RoleID)
	assert.Equal(t, 3, prefs[2].PreferenceOrder)
}

func TestSetRolePreferences_ReplacesWholeList(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")
	r1 := seedRole(t, db, event, "Referee")
	r2 := seedRole(t, db, event, "Scorekeeper")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)

	require.NoError(t, svc.SetRolePreferences(staff, event, reg, []uuid.UUID{r1.EventRoleID, r2.EventRoleID}))
	require.NoError(t, svc.SetRolePreferences(staff, event, reg, []uuid.UUID{r2.EventRoleID}))

	var prefs []model.StaffRolePreferenceModel
	require.NoError(t, db.Where("registration_id = ?", reg.ID).Find(&prefs).Error)
	require.Len(t, prefs, 1)
	assert.Equal(t, r2.EventRoleID, prefs[0].RoleID)
	assert.Equal(t, 1, prefs[0].PreferenceOrder)
}

func TestSetRolePreferences_ForeignRoleRejectedWholly(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")
	other := seedEvent(t, db, "other-2026")
	valid := seedRole(t, db, event, "Referee")
	foreign := seedRole(t, db, other, "Referee")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)

	err = svc.SetRolePreferences(staff, event, reg, []uuid.UUID{valid.EventRoleID, foreign.EventRoleID})
	assert.ErrorIs(t, err, ErrInvalidRole)

	// ditolak utuh — tidak ada tulisan parsial
	var count int64
	require.NoError(t, db.Model(&model.StaffRolePreferenceModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSetAvailability_PartialUpsertKeepsOtherDays(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)

	days, err := eventService.NewCalendarService(db).Days(event.EventID)
	require.NoError(t, err)
	require.Len(t, days, 3)

	// ubah hanya hari pertama: pagi saja
	require.NoError(t, svc.SetAvailability(staff, event, reg, []AvailabilityInput{
		{EventDayID: days[0].EventDayID, IsAvailableMorning: true, IsAvailableAfternoon: false},
	}))

	var first model.StaffAvailabilityModel
	require.NoError(t, db.Where("registration_id = ? AND event_day_id = ?", reg.ID, days[0].EventDayID).
		First(&first).Error)
	assert.True(t, first.IsAvailableMorning)
	assert.False(t, first.IsAvailableAfternoon)

	// hari lain tidak tersentuh (masih default true/true)
	var second model.StaffAvailabilityModel
	require.NoError(t, db.Where("registration_id = ? AND event_day_id = ?", reg.ID, days[1].EventDayID).
		First(&second).Error)
	assert.True(t, second.IsAvailableMorning)
	assert.True(t, second.IsAvailableAfternoon)
}

func TestIsComplete_Matrix(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")
	role := seedRole(t, db, event, "Referee")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)

	// baru daftar: ada availability default tapi belum ada preferensi → belum lengkap
	complete, err := svc.IsComplete(reg, staff)
	require.NoError(t, err)
	assert.False(t, complete)

	// + preferensi, tapi profil belum lengkap
	require.NoError(t, svc.SetRolePreferences(staff, event, reg, []uuid.UUID{role.EventRoleID}))
	complete, err = svc.IsComplete(reg, staff)
	require.NoError(t, err)
	assert.False(t, complete)

	// profil lengkap → lengkap
	staff.FirstName = ptr("Ana")
	staff.LastName = ptr("Lim")
	staff.PhoneNumber = ptr("+62811111111")
	require.NoError(t, db.Save(staff).Error)
	complete, err = svc.IsComplete(reg, staff)
	require.NoError(t, err)
	assert.True(t, complete)

	// semua paruh hari false → tidak lengkap lagi
	days, err := eventService.NewCalendarService(db).Days(event.EventID)
	require.NoError(t, err)
	items := make([]AvailabilityInput, 0, len(days))
	for _, d := range days {
		items = append(items, AvailabilityInput{EventDayID: d.EventDayID})
	}
	require.NoError(t, svc.SetAvailability(staff, event, reg, items))
	complete, err = svc.IsComplete(reg, staff)
	require.NoError(t, err)
	assert.False(t, complete)
}

func TestUpdateFields_OnlySentFieldsChange(t *testing.T) {
	db := openTestDB(t)
	svc := newTestService(t, db)
	svc.Now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	staff := seedStaff(t, db, "vol1")
	event := seedEvent(t, db, "open-2026")

	reg, err := svc.Register(staff, event)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateFields(staff, event, reg,
		ptr("bawa obeng sendiri"), ptr(true), nil, nil))

	var got model.StaffEventRegistrationModel
	require.NoError(t, db.First(&got, "id = ?", reg.ID).Error)
	require.NotNil(t, got.Comment)
	assert.Equal(t, "bawa obeng sendiri", *got.Comment)
	assert.True(t, got.HelpBeforeEvent)
	assert.Nil(t, got.TeamAffiliation)
	assert.False(t, got.IsFirstParticipation)
}
