package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robostaff_backend/internals/configs"
	adminModel "robostaff_backend/internals/features/admins/users/model"
	eventModel "robostaff_backend/internals/features/events/events/model"
	"robostaff_backend/internals/features/notifications/mailer"
	"robostaff_backend/internals/features/notifications/model"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
)

// Tipe yang selalu boleh dikirim (one-shot, time-sensitive) — tanpa cooldown.
var noCooldownTypes = map[string]struct{}{
	model.TypeNewRegistration:        {},
	model.TypeConnectionLink:         {},
	model.TypeParticipationValidated: {},
	model.TypeRoleAssigned:           {},
	model.TypeEventReminder:          {},
}

// NotificationService menggabungkan dua kebijakan kirim:
// tanpa syarat untuk tipe one-shot, dan ber-cooldown untuk
// staff_preferences_changed supaya inbox admin tidak banjir saat
// seorang volunteer mengedit preferensinya berkali-kali.
type NotificationService struct {
	DB       *gorm.DB
	Mailer   mailer.Mailer
	Now      func() time.Time
	Cooldown time.Duration
}

func NewNotificationService(db *gorm.DB, m mailer.Mailer) *NotificationService {
	return &NotificationService{
		DB:       db,
		Mailer:   m,
		Now:      time.Now,
		Cooldown: configs.NotificationCooldownMinutes * time.Minute,
	}
}

// CanSend mengecek cooldown terhadap ledger.
// CATATAN: check-then-write ini sengaja tidak dibungkus transaksi; dua update
// preferensi yang balapan dalam jendela cooldown bisa sama-sama lolos dan
// mengirim duplikat email admin. Konsekuensinya satu email ganda non-kritis,
// bukan korupsi data.
func (s *NotificationService) CanSend(r model.Recipient, notificationType string) (bool, error) {
	if _, ok := noCooldownTypes[notificationType]; ok {
		return true, nil
	}

	cutoff := s.Now().Add(-s.Cooldown)
	var count int64
	err := s.DB.Model(&model.EmailNotificationModel{}).
		Where("recipient_type = ? AND recipient_id = ? AND notification_type = ? AND sent_at > ?",
			string(r.Type), r.ID, notificationType, cutoff).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Record menulis satu baris ledger (append-only).
func (s *NotificationService) Record(r model.Recipient, notificationType string, eventID *uuid.UUID) error {
	row := model.EmailNotificationModel{
		RecipientType:    string(r.Type),
		RecipientID:      r.ID,
		NotificationType: notificationType,
		EventID:          eventID,
		SentAt:           s.Now(),
	}
	return s.DB.Create(&row).Error
}

// send: kegagalan mail dicatat, tidak pernah dipropagasi ke pemanggil.
func (s *NotificationService) send(to, subject, body string) {
	if err := s.Mailer.Send(to, subject, body); err != nil {
		log.Printf("[ERROR] Gagal kirim email ke %s: %v", to, err)
	}
}

func (s *NotificationService) listAdmins() ([]adminModel.AdminUserModel, error) {
	var admins []adminModel.AdminUserModel
	if err := s.DB.Where("is_active = ?", true).Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// NotifyAdminsOfNewRegistration: tanpa cooldown, satu baris ledger per admin.
// Mengembalikan jumlah admin yang dikirimi.
func (s *NotificationService) NotifyAdminsOfNewRegistration(staff *staffModel.StaffModel, event *eventModel.EventModel) (int, error) {
	admins, err := s.listAdmins()
	if err != nil {
		return 0, err
	}

	subject := fmt.Sprintf("New registration for %s", event.EventName)
	body := fmt.Sprintf("%s has registered for %s.", staff.DisplayName(), event.EventName)

	for _, admin := range admins {
		s.send(admin.Email, subject, body)
		if err := s.Record(model.AdminRecipient(admin.ID), model.TypeNewRegistration, &event.EventID); err != nil {
			return 0, err
		}
	}
	return len(admins), nil
}

// NotifyAdminsOfChange: ber-cooldown. Kalau masih di jendela 5 menit,
// suppress total (tanpa email, tanpa baris ledger). Kalau lolos, kirim ke
// semua admin tapi tulis TEPAT SATU baris ledger ber-key staff — baris itu
// yang jadi checkpoint cooldown berikutnya.
func (s *NotificationService) NotifyAdminsOfChange(staff *staffModel.StaffModel, event *eventModel.EventModel) error {
	ok, err := s.CanSend(model.StaffRecipient(staff.ID), model.TypePreferencesChanged)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	admins, err := s.listAdmins()
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Staff update for %s", event.EventName)
	body := fmt.Sprintf("%s has updated their preferences or availability for %s.", staff.DisplayName(), event.EventName)

	for _, admin := range admins {
		s.send(admin.Email, subject, body)
	}

	return s.Record(model.StaffRecipient(staff.ID), model.TypePreferencesChanged, &event.EventID)
}

// NotifyStaff: kirim ke satu staff tanpa cooldown + catat ledger.
func (s *NotificationService) NotifyStaff(staff *staffModel.StaffModel, notificationType, subject, body string, eventID *uuid.UUID) error {
	s.send(staff.Email, subject, body)
	return s.Record(model.StaffRecipient(staff.ID), notificationType, eventID)
}

// ListRecent mengembalikan isi ledger terbaru untuk layar audit admin.
func (s *NotificationService) ListRecent(limit int) ([]model.EmailNotificationModel, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var rows []model.EmailNotificationModel
	err := s.DB.Order("sent_at DESC").Limit(limit).Find(&rows).Error
	return rows, err
}
