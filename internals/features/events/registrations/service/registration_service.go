package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	eventModel "robostaff_backend/internals/features/events/events/model"
	"robostaff_backend/internals/features/events/registrations/model"
	notifService "robostaff_backend/internals/features/notifications/service"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
)

var (
	// ErrAlreadyRegistered: sudah ada registrasi untuk pasangan (staff, event).
	ErrAlreadyRegistered = errors.New("staff sudah terdaftar di event ini")
	// ErrEventEnded: event sudah lewat (end_date < hari ini).
	ErrEventEnded = errors.New("event sudah berakhir")
	// ErrInvalidRole: preferensi menunjuk role di luar event.
	ErrInvalidRole = errors.New("role tidak termasuk event ini")
)

// RegistrationService mengelola siklus hidup registrasi staff pada event:
// daftar, batal, edit field, preferensi role ber-rank, dan availability
// per setengah-hari.
type RegistrationService struct {
	DB       *gorm.DB
	Notifier *notifService.NotificationService
	Now      func() time.Time
}

func NewRegistrationService(db *gorm.DB, notifier *notifService.NotificationService) *RegistrationService {
	return &RegistrationService{DB: db, Notifier: notifier, Now: time.Now}
}

func (s *RegistrationService) Find(staffID, eventID uuid.UUID) (*model.StaffEventRegistrationModel, error) {
	var reg model.StaffEventRegistrationModel
	if err := s.DB.
		Where("staff_id = ? AND event_id = ?", staffID, eventID).
		First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// FindWithDetails memuat registrasi lengkap dengan preferensi (terurut rank)
// dan availability, untuk layar detail event.
func (s *RegistrationService) FindWithDetails(staffID, eventID uuid.UUID) (*model.StaffEventRegistrationModel, error) {
	var reg model.StaffEventRegistrationModel
	err := s.DB.
		Preload("RolePreferences", func(db *gorm.DB) *gorm.DB {
			return db.Order("preference_order ASC")
		}).
		Preload("Availability").
		Where("staff_id = ? AND event_id = ?", staffID, eventID).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Register membuat registrasi baru.
// Gagal ErrEventEnded kalau event sudah lewat, ErrAlreadyRegistered kalau
// baris sudah ada — termasuk saat dua request balapan: unique constraint
// (staff_id, event_id) yang jadi wasit, pelanggarannya diterjemahkan di sini.
// Setelah baris dibuat, availability default (kedua paruh hari = true)
// dipopulasikan eksplisit untuk semua hari event saat ini.
func (s *RegistrationService) Register(staff *staffModel.StaffModel, event *eventModel.EventModel) (*model.StaffEventRegistrationModel, error) {
	if event.IsPast(s.Now()) {
		return nil, ErrEventEnded
	}

	var existing model.StaffEventRegistrationModel
	err := s.DB.Where("staff_id = ? AND event_id = ?", staff.ID, event.EventID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyRegistered
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reg := &model.StaffEventRegistrationModel{
		StaffID: staff.ID,
		EventID: event.EventID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reg).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyRegistered
			}
			return err
		}
		return s.populateDefaultAvailability(tx, reg)
	})
	if err != nil {
		return nil, err
	}

	// Notifikasi admin tanpa cooldown; gagal kirim tidak membatalkan registrasi.
	if _, err := s.Notifier.NotifyAdminsOfNewRegistration(staff, event); err != nil {
		logNotifErr(err)
	}

	return reg, nil
}

// populateDefaultAvailability membuat baris availability "tersedia dua paruh"
// untuk setiap hari event yang ada sekarang. FirstOrCreate supaya aman
// dipanggil ulang.
func (s *RegistrationService) populateDefaultAvailability(tx *gorm.DB, reg *model.StaffEventRegistrationModel) error {
	var days []eventModel.EventDayModel
	if err := tx.Where("event_day_event_id = ?", reg.EventID).
		Order("event_day_date ASC").
		Find(&days).Error; err != nil {
		return err
	}

	for _, day := range days {
		av := model.StaffAvailabilityModel{
			RegistrationID:       reg.ID,
			EventDayID:           day.EventDayID,
			IsAvailableMorning:   true,
			IsAvailableAfternoon: true,
		}
		if err := tx.
			Where("registration_id = ? AND event_day_id = ?", reg.ID, day.EventDayID).
			FirstOrCreate(&av).Error; err != nil {
			return err
		}
	}
	return nil
}

// Cancel menghapus registrasi beserta preferensi dan availability-nya.
// Tidak ada notifikasi saat pembatalan.
func (s *RegistrationService) Cancel(staffID, eventID uuid.UUID) error {
	reg, err := s.Find(staffID, eventID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("registration_id = ?", reg.ID).
			Delete(&model.StaffRolePreferenceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("registration_id = ?", reg.ID).
			Delete(&model.StaffAvailabilityModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(reg).Error
	})
}

// UpdateFields mengubah komentar/flag registrasi, lalu memicu notifikasi
// admin ber-cooldown.
func (s *RegistrationService) UpdateFields(
	staff *staffModel.StaffModel,
	event *eventModel.EventModel,
	reg *model.StaffEventRegistrationModel,
	comment *string,
	helpBeforeEvent *bool,
	teamAffiliation *string,
	isFirstParticipation *bool,
) error {
	if comment != nil {
		reg.Comment = comment
	}
	if helpBeforeEvent != nil {
		reg.HelpBeforeEvent = *helpBeforeEvent
	}
	if teamAffiliation != nil {
		reg.TeamAffiliation = teamAffiliation
	}
	if isFirstParticipation != nil {
		reg.IsFirstParticipation = *isFirstParticipation
	}

	if err := s.DB.Save(reg).Error; err != nil {
		return err
	}

	if err := s.Notifier.NotifyAdminsOfChange(staff, event); err != nil {
		logNotifErr(err)
	}
	return nil
}

// SetRolePreferences mengganti seluruh preferensi registrasi secara atomik.
// Semua role id harus milik event (kalau ada yang bukan, ditolak utuh —
// ErrInvalidRole, tanpa tulisan parsial). Daftar dipangkas ke 3 entri
// pertama, rank ditulis 1..N sesuai urutan kiriman.
func (s *RegistrationService) SetRolePreferences(
	staff *staffModel.StaffModel,
	event *eventModel.EventModel,
	reg *model.StaffEventRegistrationModel,
	roleIDs []uuid.UUID,
) error {
	var eventRoleIDs []uuid.UUID
	if err := s.DB.Model(&eventModel.EventRoleModel{}).
		Where("event_role_event_id = ?", event.EventID).
		Pluck("event_role_id", &eventRoleIDs).Error; err != nil {
		return err
	}

	valid := make(map[uuid.UUID]struct{}, len(eventRoleIDs))
	for _, id := range eventRoleIDs {
		valid[id] = struct{}{}
	}
	for _, id := range roleIDs {
		if _, ok := valid[id]; !ok {
			return ErrInvalidRole
		}
	}

	if len(roleIDs) > 3 {
		roleIDs = roleIDs[:3]
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("registration_id = ?", reg.ID).
			Delete(&model.StaffRolePreferenceModel{}).Error; err != nil {
			return err
		}
		for i, roleID := range roleIDs {
			pref := model.StaffRolePreferenceModel{
				RegistrationID:  reg.ID,
				RoleID:          roleID,
				PreferenceOrder: i + 1,
			}
			if err := tx.Create(&pref).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.Notifier.NotifyAdminsOfChange(staff, event); err != nil {
		logNotifErr(err)
	}
	return nil
}

// AvailabilityInput: satu baris form availability per hari.
type AvailabilityInput struct {
	EventDayID           uuid.UUID
	IsAvailableMorning   bool
	IsAvailableAfternoon bool
}

// SetAvailability meng-upsert availability per hari dalam satu transaksi.
// Kiriman parsial sah: hari yang tidak ada di payload mempertahankan nilai
// sebelumnya (atau default kalau belum pernah diset).
func (s *RegistrationService) SetAvailability(
	staff *staffModel.StaffModel,
	event *eventModel.EventModel,
	reg *model.StaffEventRegistrationModel,
	items []AvailabilityInput,
) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var av model.StaffAvailabilityModel
			err := tx.Where("registration_id = ? AND event_day_id = ?", reg.ID, item.EventDayID).
				First(&av).Error
			switch {
			case err == nil:
				av.IsAvailableMorning = item.IsAvailableMorning
				av.IsAvailableAfternoon = item.IsAvailableAfternoon
				if err := tx.Save(&av).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				av = model.StaffAvailabilityModel{
					RegistrationID:       reg.ID,
					EventDayID:           item.EventDayID,
					IsAvailableMorning:   item.IsAvailableMorning,
					IsAvailableAfternoon: item.IsAvailableAfternoon,
				}
				if err := tx.Create(&av).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.Notifier.NotifyAdminsOfChange(staff, event); err != nil {
		logNotifErr(err)
	}
	return nil
}

// IsComplete: registrasi lengkap jika (a) punya ≥1 preferensi role,
// (b) ≥1 availability dengan pagi ATAU sore true, dan (c) profil staff
// pemiliknya lengkap. Murni dihitung dari state sekarang, tidak disimpan.
func (s *RegistrationService) IsComplete(reg *model.StaffEventRegistrationModel, staff *staffModel.StaffModel) (bool, error) {
	var prefCount int64
	if err := s.DB.Model(&model.StaffRolePreferenceModel{}).
		Where("registration_id = ?", reg.ID).
		Count(&prefCount).Error; err != nil {
		return false, err
	}
	if prefCount == 0 {
		return false, nil
	}

	var availCount int64
	if err := s.DB.Model(&model.StaffAvailabilityModel{}).
		Where("registration_id = ? AND (is_available_morning = ? OR is_available_afternoon = ?)",
			reg.ID, true, true).
		Count(&availCount).Error; err != nil {
		return false, err
	}
	if availCount == 0 {
		return false, nil
	}

	return staff.IsProfileComplete(), nil
}

// isUniqueViolation mengenali pelanggaran unique constraint dari Postgres
// (SQLSTATE 23505) maupun sqlite (dipakai di test).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}

func logNotifErr(err error) {
	// notifikasi tidak pernah menggagalkan mutasi yang memicunya
	if err != nil {
		log.Printf("[ERROR] Gagal proses notifikasi: %v", err)
	}
}
