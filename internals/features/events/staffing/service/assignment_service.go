package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
	notificationModel "robostaff_backend/internals/features/notifications/model"
	notifService "robostaff_backend/internals/features/notifications/service"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
)

// ErrRoleNotFound: role yang di-assign bukan milik event registrasi tsb.
var ErrRoleNotFound = errors.New("role tidak ditemukan di event ini")

// AssignmentService: operasi admin terhadap registrasi staff —
// validasi, penugasan role, dan pengingat event.
type AssignmentService struct {
	DB       *gorm.DB
	Notifier *notifService.NotificationService
}

func NewAssignmentService(db *gorm.DB, notifier *notifService.NotificationService) *AssignmentService {
	return &AssignmentService{DB: db, Notifier: notifier}
}

func (s *AssignmentService) FindRegistration(eventID, registrationID uuid.UUID) (*registrationModel.StaffEventRegistrationModel, error) {
	var reg registrationModel.StaffEventRegistrationModel
	if err := s.DB.
		Where("event_id = ? AND id = ?", eventID, registrationID).
		First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListRegistrations memuat semua registrasi event berikut preferensi
// (terurut rank) dan availability — bahan layar staff admin.
func (s *AssignmentService) ListRegistrations(eventID uuid.UUID) ([]registrationModel.StaffEventRegistrationModel, error) {
	var regs []registrationModel.StaffEventRegistrationModel
	err := s.DB.
		Preload("RolePreferences", func(db *gorm.DB) *gorm.DB {
			return db.Order("preference_order ASC")
		}).
		Preload("Availability").
		Where("event_id = ?", eventID).
		Find(&regs).Error
	return regs, err
}

// Validate menyalakan is_validated (idempoten) lalu memberi tahu staff
// tanpa cooldown.
func (s *AssignmentService) Validate(event *eventModel.EventModel, reg *registrationModel.StaffEventRegistrationModel) error {
	reg.IsValidated = true
	if err := s.DB.Save(reg).Error; err != nil {
		return err
	}

	staff, err := s.findStaff(reg.StaffID)
	if err != nil {
		return err
	}

	return s.Notifier.NotifyStaff(
		staff,
		notificationModel.TypeParticipationValidated,
		"Your participation has been validated",
		fmt.Sprintf("Your participation for %s has been validated by the organizers.", event.EventName),
		&event.EventID,
	)
}

// AssignRole menetapkan assigned_role_id. Role wajib milik event yang sama
// (ErrRoleNotFound kalau bukan). Tidak ada pembatasan kapasitas: admin boleh
// menugaskan melebihi number_required — "fully staffed" cuma informasi.
func (s *AssignmentService) AssignRole(
	event *eventModel.EventModel,
	reg *registrationModel.StaffEventRegistrationModel,
	roleID uuid.UUID,
) (*eventModel.EventRoleModel, error) {
	var role eventModel.EventRoleModel
	err := s.DB.
		Where("event_role_id = ? AND event_role_event_id = ?", roleID, event.EventID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	reg.AssignedRoleID = &role.EventRoleID
	if err := s.DB.Save(reg).Error; err != nil {
		return nil, err
	}

	staff, err := s.findStaff(reg.StaffID)
	if err != nil {
		return nil, err
	}

	if err := s.Notifier.NotifyStaff(
		staff,
		notificationModel.TypeRoleAssigned,
		"Role assigned for event",
		fmt.Sprintf("You have been assigned the role of %s for %s.", role.EventRoleDesignation, event.EventName),
		&event.EventID,
	); err != nil {
		return nil, err
	}

	return &role, nil
}

// SendReminder mengirim pengingat ke semua registrasi tervalidasi.
// Mengembalikan jumlah yang dikirimi.
func (s *AssignmentService) SendReminder(event *eventModel.EventModel) (int, error) {
	var regs []registrationModel.StaffEventRegistrationModel
	if err := s.DB.
		Where("event_id = ? AND is_validated = ?", event.EventID, true).
		Find(&regs).Error; err != nil {
		return 0, err
	}

	subject := fmt.Sprintf("Reminder: %s", event.EventName)
	body := fmt.Sprintf("This is a reminder for the upcoming event: %s. Please check the event details for more information.", event.EventName)

	for _, reg := range regs {
		staff, err := s.findStaff(reg.StaffID)
		if err != nil {
			return 0, err
		}
		if err := s.Notifier.NotifyStaff(staff, notificationModel.TypeEventReminder, subject, body, &event.EventID); err != nil {
			return 0, err
		}
	}
	return len(regs), nil
}

// AssignedCount: jumlah registrasi yang menunjuk role ini sebagai role
// ter-assign. Derived, bukan kolom.
func (s *AssignmentService) AssignedCount(roleID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&registrationModel.StaffEventRegistrationModel{}).
		Where("assigned_role_id = ?", roleID).
		Count(&count).Error
	return count, err
}

// IsFullyStaffed: assigned count >= number_required.
func (s *AssignmentService) IsFullyStaffed(role *eventModel.EventRoleModel) (bool, error) {
	count, err := s.AssignedCount(role.EventRoleID)
	if err != nil {
		return false, err
	}
	return count >= int64(role.EventRoleNumberRequired), nil
}

func (s *AssignmentService) findStaff(staffID uuid.UUID) (*staffModel.StaffModel, error) {
	var staff staffModel.StaffModel
	if err := s.DB.First(&staff, "id = ?", staffID).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}
