package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
)

func TestCreate_BuildsCalendarAndRejectsDuplicateTagname(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)

	event := &model.EventModel{
		EventName:      "Open 2026",
		EventTagname:   "open-2026",
		EventStartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(event))

	days, err := svc.Calendar.Days(event.EventID)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	dup := &model.EventModel{
		EventName:      "Open 2026 bis",
		EventTagname:   "open-2026",
		EventStartDate: event.EventStartDate,
		EventEndDate:   event.EventEndDate,
	}
	assert.ErrorIs(t, svc.Create(dup), ErrTagnameTaken)
}

func TestCreate_RejectsInvertedDateRange(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)

	event := &model.EventModel{
		EventName:      "Open 2026",
		EventTagname:   "open-2026",
		EventStartDate: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	assert.ErrorIs(t, svc.Create(event), ErrInvalidDateRange)
}

func TestCopyTo_DuplicatesRolesNotRegistrations(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)

	src := &model.EventModel{
		EventName:      "Open 2026",
		EventTagname:   "open-2026",
		EventStartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(src))

	role := &model.EventRoleModel{
		EventRoleEventID:        src.EventID,
		EventRoleDesignation:    "Referee",
		EventRoleNumberRequired: 4,
	}
	require.NoError(t, db.Create(role).Error)

	reg := &registrationModel.StaffEventRegistrationModel{
		StaffID: role.EventRoleID, // cukup uuid valid apa pun
		EventID: src.EventID,
	}
	require.NoError(t, db.Create(reg).Error)

	copied, err := svc.CopyTo(src, "open-2027")
	require.NoError(t, err)
	assert.NotEqual(t, src.EventID, copied.EventID)
	assert.Equal(t, "open-2027", copied.EventTagname)

	roles, err := svc.Roles(copied.EventID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Referee", roles[0].EventRoleDesignation)
	assert.NotEqual(t, role.EventRoleID, roles[0].EventRoleID)

	var regCount int64
	require.NoError(t, db.Model(&registrationModel.StaffEventRegistrationModel{}).
		Where("event_id = ?", copied.EventID).Count(&regCount).Error)
	assert.Zero(t, regCount)

	days, err := svc.Calendar.Days(copied.EventID)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestDelete_CascadesToAllChildren(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)

	event := &model.EventModel{
		EventName:      "Open 2026",
		EventTagname:   "open-2026",
		EventStartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(event))

	role := &model.EventRoleModel{EventRoleEventID: event.EventID, EventRoleDesignation: "Referee"}
	require.NoError(t, db.Create(role).Error)

	reg := &registrationModel.StaffEventRegistrationModel{StaffID: role.EventRoleID, EventID: event.EventID}
	require.NoError(t, db.Create(reg).Error)
	require.NoError(t, db.Create(&registrationModel.StaffRolePreferenceModel{
		RegistrationID: reg.ID, RoleID: role.EventRoleID, PreferenceOrder: 1,
	}).Error)

	require.NoError(t, svc.Delete(event))

	for name, q := range map[string]int64{
		"events":       count(t, db, &model.EventModel{}),
		"days":         count(t, db, &model.EventDayModel{}),
		"roles":        count(t, db, &model.EventRoleModel{}),
		"registrasi":   count(t, db, &registrationModel.StaffEventRegistrationModel{}),
		"preferensi":   count(t, db, &registrationModel.StaffRolePreferenceModel{}),
		"availability": count(t, db, &registrationModel.StaffAvailabilityModel{}),
	} {
		assert.Zerof(t, q, "tabel %s masih berisi", name)
	}
}

func TestDeleteRole_DropsPreferencesAndUnassigns(t *testing.T) {
	db := openTestDB(t)
	svc := NewEventService(db)

	event := &model.EventModel{
		EventName:      "Open 2026",
		EventTagname:   "open-2026",
		EventStartDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EventEndDate:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(event))

	role := &model.EventRoleModel{EventRoleEventID: event.EventID, EventRoleDesignation: "Referee"}
	keep := &model.EventRoleModel{EventRoleEventID: event.EventID, EventRoleDesignation: "Scorekeeper"}
	require.NoError(t, db.Create(role).Error)
	require.NoError(t, db.Create(keep).Error)

	reg := &registrationModel.StaffEventRegistrationModel{
		StaffID:        keep.EventRoleID,
		EventID:        event.EventID,
		AssignedRoleID: &role.EventRoleID,
	}
	require.NoError(t, db.Create(reg).Error)
	require.NoError(t, db.Create(&registrationModel.StaffRolePreferenceModel{
		RegistrationID: reg.ID, RoleID: role.EventRoleID, PreferenceOrder: 1,
	}).Error)
	require.NoError(t, db.Create(&registrationModel.StaffRolePreferenceModel{
		RegistrationID: reg.ID, RoleID: keep.EventRoleID, PreferenceOrder: 2,
	}).Error)

	require.NoError(t, svc.DeleteRole(role))

	var prefs []registrationModel.StaffRolePreferenceModel
	require.NoError(t, db.Find(&prefs).Error)
	require.Len(t, prefs, 1)
	assert.Equal(t, keep.EventRoleID, prefs[0].RoleID)

	var got registrationModel.StaffEventRegistrationModel
	require.NoError(t, db.First(&got, "id = ?", reg.ID).Error)
	assert.Nil(t, got.AssignedRoleID)
}

func count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
