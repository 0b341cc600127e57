package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
)

// CalendarService menurunkan entitas EventDay dari rentang tanggal event.
// Invariannya: set hari SELALU tepat sama dengan himpunan tanggal kalender
// di [start_date, end_date], inklusif kedua ujung.
type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

// CreateEventDays membuat satu EventDay per tanggal di rentang event.
// Idempoten: hari yang sudah ada (event+tanggal sama) dilewati, bukan diduplikasi.
func (s *CalendarService) CreateEventDays(tx *gorm.DB, event *model.EventModel) error {
	start := dateOnly(event.EventStartDate)
	end := dateOnly(event.EventEndDate)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := model.EventDayModel{
			EventDayEventID: event.EventID,
			EventDayDate:    d,
		}
		if err := tx.
			Where("event_day_event_id = ? AND event_day_date = ?", event.EventID, d).
			FirstOrCreate(&day).Error; err != nil {
			return err
		}
	}
	return nil
}

// SyncEventDays dipanggil setelah rentang tanggal berubah:
// hapus hari yang jatuh di luar rentang baru (beserta availability yang
// menunjuknya — tanpa ini baris yatim tetap terhitung di kelengkapan
// registrasi), lalu isi hari yang kurang. Hari yang masih di dalam rentang
// (termasuk teks jadwalnya) tidak disentuh. Satu transaksi supaya pembaca
// tidak pernah melihat set hari setengah jadi.
func (s *CalendarService) SyncEventDays(event *model.EventModel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		start := dateOnly(event.EventStartDate)
		end := dateOnly(event.EventEndDate)

		var removedDayIDs []uuid.UUID
		if err := tx.Model(&model.EventDayModel{}).
			Where("event_day_event_id = ? AND (event_day_date < ? OR event_day_date > ?)",
				event.EventID, start, end).
			Pluck("event_day_id", &removedDayIDs).Error; err != nil {
			return err
		}

		if len(removedDayIDs) > 0 {
			if err := tx.Where("event_day_id IN ?", removedDayIDs).
				Delete(&registrationModel.StaffAvailabilityModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_day_id IN ?", removedDayIDs).
				Delete(&model.EventDayModel{}).Error; err != nil {
				return err
			}
		}

		return s.CreateEventDays(tx, event)
	})
}

// Days mengembalikan hari event terurut tanggal.
func (s *CalendarService) Days(eventID uuid.UUID) ([]model.EventDayModel, error) {
	var days []model.EventDayModel
	err := s.DB.
		Where("event_day_event_id = ?", eventID).
		Order("event_day_date ASC").
		Find(&days).Error
	return days, err
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
