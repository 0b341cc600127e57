package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"robostaff_backend/internals/features/events/events/dto"
	"robostaff_backend/internals/features/events/events/model"
	"robostaff_backend/internals/features/events/events/service"
	staffingService "robostaff_backend/internals/features/events/staffing/service"
	helper "robostaff_backend/internals/helpers"
)

var validate = validator.New()

type EventAdminController struct {
	DB       *gorm.DB
	Events   *service.EventService
	Calendar *service.CalendarService
	Staffing *staffingService.AssignmentService
}

func NewEventAdminController(db *gorm.DB, staffing *staffingService.AssignmentService) *EventAdminController {
	return &EventAdminController{
		DB:       db,
		Events:   service.NewEventService(db),
		Calendar: service.NewCalendarService(db),
		Staffing: staffing,
	}
}

// findEvent resolve :tagname, 404 kalau tidak ada.
func (ctrl *EventAdminController) findEvent(c *fiber.Ctx) (*model.EventModel, error) {
	event, err := ctrl.Events.FindByTagname(c.Params("tagname"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return event, nil
}

func (ctrl *EventAdminController) eventResponse(event *model.EventModel) (*dto.EventResponse, error) {
	days, err := ctrl.Calendar.Days(event.EventID)
	if err != nil {
		return nil, err
	}
	roles, err := ctrl.Events.Roles(event.EventID)
	if err != nil {
		return nil, err
	}
	roleResponses := make([]dto.EventRoleResponse, 0, len(roles))
	for i := range roles {
		count, err := ctrl.Staffing.AssignedCount(roles[i].EventRoleID)
		if err != nil {
			return nil, err
		}
		roleResponses = append(roleResponses, dto.ToEventRoleResponse(&roles[i], count))
	}
	return dto.ToEventResponse(event, days, roleResponses), nil
}

// 🟢 GET /admin/events — semua event, terbaru dulu
func (ctrl *EventAdminController) Index(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.Order("event_start_date DESC").Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar event")
	}

	resp := make([]*dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i], nil, nil))
	}
	return helper.Success(c, "Daftar event", resp)
}

// 🟢 POST /admin/events
func (ctrl *EventAdminController) Store(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !helper.IsValidTagname(req.Tagname) {
		return helper.FieldError(c, "tagname", "Tagname hanya boleh huruf, angka, - dan _")
	}

	event, err := req.ToModel()
	if err != nil {
		return helper.FieldError(c, "start_date", "Format tanggal harus YYYY-MM-DD")
	}

	if err := ctrl.Events.Create(event); err != nil {
		switch {
		case errors.Is(err, service.ErrTagnameTaken):
			return helper.FieldError(c, "tagname", "Tagname sudah dipakai event lain")
		case errors.Is(err, service.ErrInvalidDateRange):
			return helper.FieldError(c, "end_date", "Tanggal selesai harus >= tanggal mulai")
		default:
			log.Printf("[ERROR] Gagal membuat event: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat event")
		}
	}

	resp, err := ctrl.eventResponse(event)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil dibuat", resp)
}

// 🟢 GET /admin/events/:tagname
func (ctrl *EventAdminController) Show(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}
	resp, err := ctrl.eventResponse(event)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.Success(c, "Detail event", resp)
}

// 🟢 PUT /admin/events/:tagname — kalau rentang tanggal berubah, kalender
// hari otomatis disinkronkan (hari di luar rentang dibuang beserta turunannya).
func (ctrl *EventAdminController) Update(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	datesChanged, err := req.ApplyTo(event)
	if err != nil {
		return helper.FieldError(c, "start_date", "Format tanggal harus YYYY-MM-DD")
	}

	if err := ctrl.Events.Update(event, datesChanged); err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			return helper.FieldError(c, "end_date", "Tanggal selesai harus >= tanggal mulai")
		}
		log.Printf("[ERROR] Gagal update event %s: %v", event.EventTagname, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	resp, err := ctrl.eventResponse(event)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.Success(c, "Event berhasil diperbarui", resp)
}

// 🟢 DELETE /admin/events/:tagname — hapus event beserta seluruh turunannya
func (ctrl *EventAdminController) Destroy(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}
	if err := ctrl.Events.Delete(event); err != nil {
		log.Printf("[ERROR] Gagal hapus event %s: %v", event.EventTagname, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}
	return helper.Success(c, "Event berhasil dihapus", nil)
}

// 🟢 POST /admin/events/:tagname/copy — duplikat event + role, tanpa registrasi
func (ctrl *EventAdminController) Copy(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	var req dto.CopyEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !helper.IsValidTagname(req.NewTagname) {
		return helper.FieldError(c, "new_tagname", "Tagname hanya boleh huruf, angka, - dan _")
	}

	copied, err := ctrl.Events.CopyTo(event, req.NewTagname)
	if err != nil {
		if errors.Is(err, service.ErrTagnameTaken) {
			return helper.FieldError(c, "new_tagname", "Tagname sudah dipakai event lain")
		}
		log.Printf("[ERROR] Gagal copy event %s: %v", event.EventTagname, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyalin event")
	}

	resp, err := ctrl.eventResponse(copied)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event berhasil disalin", resp)
}

// 🟢 PUT /admin/events/:tagname/logo — simpan path logo
func (ctrl *EventAdminController) SetLogo(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	var req struct {
		LogoPath *string `json:"logo_path" validate:"omitempty,max=1000"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	event.EventLogoPath = req.LogoPath
	if err := ctrl.DB.Save(event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan logo")
	}
	return helper.Success(c, "Logo event diperbarui", nil)
}

// 🟢 POST /admin/events/:tagname/roles
func (ctrl *EventAdminController) AddRole(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	var req dto.EventRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	role := req.ToModel(event.EventID)
	if err := ctrl.DB.Create(role).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat role: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat role")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Role berhasil dibuat", dto.ToEventRoleResponse(role, 0))
}

// 🟢 PUT /admin/events/:tagname/roles/:roleId
func (ctrl *EventAdminController) UpdateRole(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	roleID, perr := uuid.Parse(c.Params("roleId"))
	if perr != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Role ID tidak valid")
	}

	role, ferr := ctrl.Events.FindRole(event.EventID, roleID)
	if ferr != nil {
		if errors.Is(ferr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Role tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil role")
	}

	var req dto.EventRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := req.ToModel(event.EventID)
	role.EventRoleDesignation = updated.EventRoleDesignation
	role.EventRoleNumberRequired = updated.EventRoleNumberRequired
	role.EventRoleDocumentLinks = updated.EventRoleDocumentLinks

	if err := ctrl.DB.Save(role).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui role")
	}

	count, err := ctrl.Staffing.AssignedCount(role.EventRoleID)
	if err != nil {
		count = 0
	}
	return helper.Success(c, "Role berhasil diperbarui", dto.ToEventRoleResponse(role, count))
}

// 🟢 DELETE /admin/events/:tagname/roles/:roleId — preferensi & assignment
// yang menunjuk role ini ikut dilepas
func (ctrl *EventAdminController) DeleteRole(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	roleID, perr := uuid.Parse(c.Params("roleId"))
	if perr != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Role ID tidak valid")
	}

	role, ferr := ctrl.Events.FindRole(event.EventID, roleID)
	if ferr != nil {
		if errors.Is(ferr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Role tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil role")
	}

	if err := ctrl.Events.DeleteRole(role); err != nil {
		log.Printf("[ERROR] Gagal hapus role %s: %v", role.EventRoleID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus role")
	}
	return helper.Success(c, "Role berhasil dihapus", nil)
}

// 🟢 PUT /admin/events/:tagname/days/:dayId/schedule
func (ctrl *EventAdminController) UpdateDaySchedule(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	dayID, perr := uuid.Parse(c.Params("dayId"))
	if perr != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Day ID tidak valid")
	}

	var req dto.DayScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	day, uerr := ctrl.Events.UpdateDaySchedule(event.EventID, dayID, req.Schedule)
	if uerr != nil {
		if errors.Is(uerr, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Hari event tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}

	resp := dto.ToEventDayResponse(day)
	return helper.Success(c, "Jadwal hari diperbarui", resp)
}
