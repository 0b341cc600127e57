package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
)

var (
	ErrTagnameTaken     = errors.New("tagname sudah dipakai event lain")
	ErrInvalidDateRange = errors.New("end_date harus >= start_date")
)

// EventService: CRUD event + role di sisi admin.
type EventService struct {
	DB       *gorm.DB
	Calendar *CalendarService
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db, Calendar: NewCalendarService(db)}
}

func (s *EventService) FindByTagname(tagname string) (*model.EventModel, error) {
	var event model.EventModel
	if err := s.DB.Where("event_tagname = ?", tagname).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Create menyimpan event baru lalu langsung membangun kalender harinya —
// orkestrasi eksplisit, bukan side effect tersembunyi di model.
func (s *EventService) Create(event *model.EventModel) error {
	if event.EventEndDate.Before(event.EventStartDate) {
		return ErrInvalidDateRange
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.EventModel{}).
			Where("event_tagname = ?", event.EventTagname).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrTagnameTaken
		}

		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return s.Calendar.CreateEventDays(tx, event)
	})
}

// Update menyimpan perubahan; kalau rentang tanggal berubah, kalender di-resync.
func (s *EventService) Update(event *model.EventModel, datesChanged bool) error {
	if event.EventEndDate.Before(event.EventStartDate) {
		return ErrInvalidDateRange
	}
	if err := s.DB.Save(event).Error; err != nil {
		return err
	}
	if datesChanged {
		return s.Calendar.SyncEventDays(event)
	}
	return nil
}

// Delete menghapus event beserta seluruh anaknya (hari, role, registrasi,
// preferensi, availability) dalam satu transaksi.
func (s *EventService) Delete(event *model.EventModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var regIDs []uuid.UUID
		if err := tx.Model(&registrationModel.StaffEventRegistrationModel{}).
			Where("event_id = ?", event.EventID).
			Pluck("id", &regIDs).Error; err != nil {
			return err
		}

		if len(regIDs) > 0 {
			if err := tx.Where("registration_id IN ?", regIDs).
				Delete(&registrationModel.StaffRolePreferenceModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("registration_id IN ?", regIDs).
				Delete(&registrationModel.StaffAvailabilityModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id = ?", event.EventID).
				Delete(&registrationModel.StaffEventRegistrationModel{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("event_day_event_id = ?", event.EventID).
			Delete(&model.EventDayModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_role_event_id = ?", event.EventID).
			Delete(&model.EventRoleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(event).Error
	})
}

// CopyTo menggandakan event (beserta role-nya, tanpa registrasi) ke tagname baru.
// Hari kalender event baru dibangun ulang dari rentang tanggalnya.
func (s *EventService) CopyTo(src *model.EventModel, newTagname string) (*model.EventModel, error) {
	dst := *src
	dst.EventID = uuid.Nil
	dst.EventTagname = newTagname

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.EventModel{}).
			Where("event_tagname = ?", newTagname).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrTagnameTaken
		}

		if err := tx.Create(&dst).Error; err != nil {
			return err
		}
		if err := s.Calendar.CreateEventDays(tx, &dst); err != nil {
			return err
		}

		var roles []model.EventRoleModel
		if err := tx.Where("event_role_event_id = ?", src.EventID).Find(&roles).Error; err != nil {
			return err
		}
		for _, role := range roles {
			role.EventRoleID = uuid.Nil
			role.EventRoleEventID = dst.EventID
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dst, nil
}

// DeleteRole menghapus role; preferensi yang menunjuknya dibuang dan
// assignment yang memakainya dilepas (bukan menghapus registrasinya).
func (s *EventService) DeleteRole(role *model.EventRoleModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", role.EventRoleID).
			Delete(&registrationModel.StaffRolePreferenceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&registrationModel.StaffEventRegistrationModel{}).
			Where("assigned_role_id = ?", role.EventRoleID).
			Update("assigned_role_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(role).Error
	})
}

// Roles mengembalikan role milik satu event.
func (s *EventService) Roles(eventID uuid.UUID) ([]model.EventRoleModel, error) {
	var roles []model.EventRoleModel
	err := s.DB.Where("event_role_event_id = ?", eventID).Find(&roles).Error
	return roles, err
}

// FindRole mencari role dan memastikan miliknya event tersebut.
func (s *EventService) FindRole(eventID, roleID uuid.UUID) (*model.EventRoleModel, error) {
	var role model.EventRoleModel
	if err := s.DB.
		Where("event_role_id = ? AND event_role_event_id = ?", roleID, eventID).
		First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateDaySchedule mengganti teks jadwal satu hari event.
func (s *EventService) UpdateDaySchedule(eventID, dayID uuid.UUID, schedule *string) (*model.EventDayModel, error) {
	var day model.EventDayModel
	if err := s.DB.
		Where("event_day_id = ? AND event_day_event_id = ?", dayID, eventID).
		First(&day).Error; err != nil {
		return nil, err
	}
	day.EventDaySchedule = schedule
	if err := s.DB.Save(&day).Error; err != nil {
		return nil, err
	}
	return &day, nil
}
