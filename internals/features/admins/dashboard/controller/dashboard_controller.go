package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDto "robostaff_backend/internals/features/events/events/dto"
	eventModel "robostaff_backend/internals/features/events/events/model"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
	registrationService "robostaff_backend/internals/features/events/registrations/service"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
	helper "robostaff_backend/internals/helpers"
)

// DashboardController merangkum event aktif & arsip beserta hitungan
// registrasinya untuk layar utama admin.
type DashboardController struct {
	DB            *gorm.DB
	Registrations *registrationService.RegistrationService
	Now           func() time.Time
}

func NewDashboardController(db *gorm.DB, registrations *registrationService.RegistrationService) *DashboardController {
	return &DashboardController{DB: db, Registrations: registrations, Now: time.Now}
}

type eventSummary struct {
	Event          *eventDto.EventResponse `json:"event"`
	Registrations  int64                   `json:"registrations"`
	ValidatedCount int64                   `json:"validated_count"`
	CompleteCount  int64                   `json:"complete_count"`
}

func (ctrl *DashboardController) summarize(events []eventModel.EventModel) ([]eventSummary, error) {
	out := make([]eventSummary, 0, len(events))
	for i := range events {
		var regs []registrationModel.StaffEventRegistrationModel
		if err := ctrl.DB.
			Where("event_id = ?", events[i].EventID).
			Find(&regs).Error; err != nil {
			return nil, err
		}

		var validated, complete int64
		for j := range regs {
			if regs[j].IsValidated {
				validated++
			}
			var staff staffModel.StaffModel
			if err := ctrl.DB.First(&staff, "id = ?", regs[j].StaffID).Error; err != nil {
				return nil, err
			}
			ok, err := ctrl.Registrations.IsComplete(&regs[j], &staff)
			if err != nil {
				return nil, err
			}
			if ok {
				complete++
			}
		}

		out = append(out, eventSummary{
			Event:          eventDto.ToEventResponse(&events[i], nil, nil),
			Registrations:  int64(len(regs)),
			ValidatedCount: validated,
			CompleteCount:  complete,
		})
	}
	return out, nil
}

// 🟢 GET /admin/dashboard — event mendatang (terdekat dulu) + arsip (terbaru dulu)
func (ctrl *DashboardController) Show(c *fiber.Ctx) error {
	today := helper.DateOnly(ctrl.Now())

	var upcoming, past []eventModel.EventModel
	if err := ctrl.DB.
		Where("event_end_date >= ?", today).
		Order("event_start_date ASC").
		Find(&upcoming).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil dashboard")
	}
	if err := ctrl.DB.
		Where("event_end_date < ?", today).
		Order("event_start_date DESC").
		Find(&past).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil dashboard")
	}

	upcomingSummary, err := ctrl.summarize(upcoming)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil dashboard")
	}
	pastSummary, err := ctrl.summarize(past)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil dashboard")
	}

	return helper.Success(c, "Dashboard admin", fiber.Map{
		"upcoming_events": upcomingSummary,
		"past_events":     pastSummary,
	})
}
