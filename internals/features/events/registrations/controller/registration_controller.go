package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDto "robostaff_backend/internals/features/events/events/dto"
	eventModel "robostaff_backend/internals/features/events/events/model"
	eventService "robostaff_backend/internals/features/events/events/service"
	"robostaff_backend/internals/features/events/registrations/dto"
	"robostaff_backend/internals/features/events/registrations/model"
	"robostaff_backend/internals/features/events/registrations/service"
	staffingService "robostaff_backend/internals/features/events/staffing/service"
	helper "robostaff_backend/internals/helpers"
	"robostaff_backend/internals/middlewares/auth"
)

var validate = validator.New()

type RegistrationController struct {
	DB            *gorm.DB
	Events        *eventService.EventService
	Calendar      *eventService.CalendarService
	Registrations *service.RegistrationService
	Staffing      *staffingService.AssignmentService
	Now           func() time.Time
}

func NewRegistrationController(db *gorm.DB, registrations *service.RegistrationService, staffing *staffingService.AssignmentService) *RegistrationController {
	return &RegistrationController{
		DB:            db,
		Events:        eventService.NewEventService(db),
		Calendar:      eventService.NewCalendarService(db),
		Registrations: registrations,
		Staffing:      staffing,
		Now:           time.Now,
	}
}

func (ctrl *RegistrationController) findEvent(c *fiber.Ctx) (*eventModel.EventModel, error) {
	event, err := ctrl.Events.FindByTagname(c.Params("tagname"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return event, nil
}

// registrationOrNil cari registrasi staff di event ini; nil kalau belum daftar.
func (ctrl *RegistrationController) registrationOrNil(staffID, eventID uuid.UUID) (*model.StaffEventRegistrationModel, error) {
	reg, err := ctrl.Registrations.FindWithDetails(staffID, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// 🟢 GET /staff/events — event yang belum berakhir, terdekat dulu
func (ctrl *RegistrationController) Index(c *fiber.Ctx) error {
	today := helper.DateOnly(ctrl.Now())

	var events []eventModel.EventModel
	if err := ctrl.DB.
		Where("event_end_date >= ?", today).
		Order("event_start_date ASC").
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar event")
	}

	resp := make([]*eventDto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, eventDto.ToEventResponse(&events[i], nil, nil))
	}
	return helper.Success(c, "Daftar event", resp)
}

// 🟢 GET /staff/events/:tagname — detail event + registrasi staff (kalau ada)
func (ctrl *RegistrationController) Show(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	days, err := ctrl.Calendar.Days(event.EventID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	roles, err := ctrl.Events.Roles(event.EventID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	roleResponses := make([]eventDto.EventRoleResponse, 0, len(roles))
	for i := range roles {
		count, err := ctrl.Staffing.AssignedCount(roles[i].EventRoleID)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
		}
		roleResponses = append(roleResponses, eventDto.ToEventRoleResponse(&roles[i], count))
	}

	reg, err := ctrl.registrationOrNil(staff.ID, event.EventID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}

	payload := fiber.Map{
		"event":        eventDto.ToEventResponse(event, days, roleResponses),
		"registration": nil,
	}
	if reg != nil {
		complete, err := ctrl.Registrations.IsComplete(reg, staff)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
		}
		payload["registration"] = dto.ToRegistrationResponse(reg, complete)
	}
	return helper.Success(c, "Detail event", payload)
}

// 🟢 POST /staff/events/:tagname/register
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	reg, rerr := ctrl.Registrations.Register(staff, event)
	if rerr != nil {
		switch {
		case errors.Is(rerr, service.ErrEventEnded):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Event sudah berakhir, pendaftaran ditutup")
		case errors.Is(rerr, service.ErrAlreadyRegistered):
			return helper.Error(c, fiber.StatusConflict, "Anda sudah terdaftar di event ini")
		default:
			log.Printf("[ERROR] Gagal registrasi staff %s ke event %s: %v", staff.ID, event.EventTagname, rerr)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftar")
		}
	}

	full, ferr := ctrl.Registrations.FindWithDetails(staff.ID, event.EventID)
	if ferr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	complete, cerr := ctrl.Registrations.IsComplete(reg, staff)
	if cerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Berhasil mendaftar", dto.ToRegistrationResponse(full, complete))
}

// 🟢 DELETE /staff/events/:tagname/registration — batal daftar, anak ikut terhapus
func (ctrl *RegistrationController) Cancel(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	if err := ctrl.Registrations.Cancel(staff.ID, event.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anda belum terdaftar di event ini")
		}
		log.Printf("[ERROR] Gagal batal registrasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membatalkan pendaftaran")
	}
	return helper.Success(c, "Pendaftaran dibatalkan", nil)
}

// 🟢 PUT /staff/events/:tagname/registration — update komentar & flag
func (ctrl *RegistrationController) Update(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	reg, rerr := ctrl.Registrations.Find(staff.ID, event.EventID)
	if rerr != nil {
		if errors.Is(rerr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anda belum terdaftar di event ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}

	var req dto.UpdateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Registrations.UpdateFields(staff, event, reg,
		req.Comment, req.HelpBeforeEvent, req.TeamAffiliation, req.IsFirstParticipation); err != nil {
		log.Printf("[ERROR] Gagal update registrasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pendaftaran")
	}

	complete, cerr := ctrl.Registrations.IsComplete(reg, staff)
	if cerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	return helper.Success(c, "Pendaftaran diperbarui", dto.ToRegistrationResponse(reg, complete))
}

// 🟢 PUT /staff/events/:tagname/registration/preferences — replace-all
func (ctrl *RegistrationController) UpdatePreferences(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	reg, rerr := ctrl.Registrations.Find(staff.ID, event.EventID)
	if rerr != nil {
		if errors.Is(rerr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anda belum terdaftar di event ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}

	var req dto.RolePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Registrations.SetRolePreferences(staff, event, reg, req.RoleIDs); err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			return helper.FieldError(c, "role_ids", "Ada role yang bukan milik event ini")
		}
		log.Printf("[ERROR] Gagal set preferensi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan preferensi")
	}

	full, ferr := ctrl.Registrations.FindWithDetails(staff.ID, event.EventID)
	if ferr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	complete, cerr := ctrl.Registrations.IsComplete(full, staff)
	if cerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	return helper.Success(c, "Preferensi role disimpan", dto.ToRegistrationResponse(full, complete))
}

// 🟢 PUT /staff/events/:tagname/registration/availability — upsert parsial
func (ctrl *RegistrationController) UpdateAvailability(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	reg, rerr := ctrl.Registrations.Find(staff.ID, event.EventID)
	if rerr != nil {
		if errors.Is(rerr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Anda belum terdaftar di event ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}

	var req dto.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	items := make([]service.AvailabilityInput, 0, len(req.Availability))
	for _, item := range req.Availability {
		items = append(items, service.AvailabilityInput{
			EventDayID:           item.EventDayID,
			IsAvailableMorning:   item.IsAvailableMorning,
			IsAvailableAfternoon: item.IsAvailableAfternoon,
		})
	}

	if err := ctrl.Registrations.SetAvailability(staff, event, reg, items); err != nil {
		log.Printf("[ERROR] Gagal set availability: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan availability")
	}

	full, ferr := ctrl.Registrations.FindWithDetails(staff.ID, event.EventID)
	if ferr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	complete, cerr := ctrl.Registrations.IsComplete(full, staff)
	if cerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	return helper.Success(c, "Availability disimpan", dto.ToRegistrationResponse(full, complete))
}
