package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "robostaff_backend/internals/features/events/events/model"
	eventService "robostaff_backend/internals/features/events/events/service"
	registrationDto "robostaff_backend/internals/features/events/registrations/dto"
	registrationModel "robostaff_backend/internals/features/events/registrations/model"
	registrationService "robostaff_backend/internals/features/events/registrations/service"
	"robostaff_backend/internals/features/events/staffing/service"
	staffDto "robostaff_backend/internals/features/staff/staff/dto"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
	helper "robostaff_backend/internals/helpers"
)

var validate = validator.New()

type StaffingAdminController struct {
	DB            *gorm.DB
	Events        *eventService.EventService
	Assignments   *service.AssignmentService
	Registrations *registrationService.RegistrationService
}

func NewStaffingAdminController(db *gorm.DB, assignments *service.AssignmentService, registrations *registrationService.RegistrationService) *StaffingAdminController {
	return &StaffingAdminController{
		DB:            db,
		Events:        eventService.NewEventService(db),
		Assignments:   assignments,
		Registrations: registrations,
	}
}

func (ctrl *StaffingAdminController) findEvent(c *fiber.Ctx) (*eventModel.EventModel, error) {
	event, err := ctrl.Events.FindByTagname(c.Params("tagname"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return event, nil
}

func (ctrl *StaffingAdminController) findRegistration(c *fiber.Ctx, event *eventModel.EventModel) (*registrationModel.StaffEventRegistrationModel, error) {
	regID, perr := uuid.Parse(c.Params("registrationId"))
	if perr != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Registration ID tidak valid")
	}
	reg, err := ctrl.Assignments.FindRegistration(event.EventID, regID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Registrasi tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	return reg, nil
}

// 🟢 GET /admin/events/:tagname/registrations — daftar registrasi + profil
// staff + status kelengkapan, bahan layar validasi/penugasan.
func (ctrl *StaffingAdminController) Index(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	regs, lerr := ctrl.Assignments.ListRegistrations(event.EventID)
	if lerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}

	items := make([]fiber.Map, 0, len(regs))
	for i := range regs {
		var staff staffModel.StaffModel
		if err := ctrl.DB.First(&staff, "id = ?", regs[i].StaffID).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
		}
		complete, cerr := ctrl.Registrations.IsComplete(&regs[i], &staff)
		if cerr != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
		}
		items = append(items, fiber.Map{
			"registration": registrationDto.ToRegistrationResponse(&regs[i], complete),
			"staff":        staffDto.ToStaffResponse(&staff),
		})
	}
	return helper.Success(c, "Daftar registrasi event", items)
}

// 🟢 POST /admin/events/:tagname/registrations/:registrationId/validate
func (ctrl *StaffingAdminController) Validate(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}
	reg, err := ctrl.findRegistration(c, event)
	if err != nil {
		return err
	}

	if err := ctrl.Assignments.Validate(event, reg); err != nil {
		log.Printf("[ERROR] Gagal validasi registrasi %s: %v", reg.ID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memvalidasi registrasi")
	}

	var staff staffModel.StaffModel
	if err := ctrl.DB.First(&staff, "id = ?", reg.StaffID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil staff")
	}
	complete, cerr := ctrl.Registrations.IsComplete(reg, &staff)
	if cerr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	return helper.Success(c, "Registrasi divalidasi", registrationDto.ToRegistrationResponse(reg, complete))
}

// 🟢 POST /admin/events/:tagname/registrations/:registrationId/assign-role
func (ctrl *StaffingAdminController) AssignRole(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}
	reg, err := ctrl.findRegistration(c, event)
	if err != nil {
		return err
	}

	var req struct {
		RoleID uuid.UUID `json:"role_id" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, aerr := ctrl.Assignments.AssignRole(event, reg, req.RoleID)
	if aerr != nil {
		if errors.Is(aerr, service.ErrRoleNotFound) {
			return helper.FieldError(c, "role_id", "Role bukan milik event ini")
		}
		log.Printf("[ERROR] Gagal assign role: %v", aerr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menugaskan role")
	}

	return helper.Success(c, "Role ditugaskan", fiber.Map{
		"registration_id": reg.ID,
		"role_id":         role.EventRoleID,
		"designation":     role.EventRoleDesignation,
	})
}

// 🟢 POST /admin/events/:tagname/send-reminder — broadcast ke registrasi
// tervalidasi, tanpa cooldown
func (ctrl *StaffingAdminController) SendReminder(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c)
	if err != nil {
		return err
	}

	sent, serr := ctrl.Assignments.SendReminder(event)
	if serr != nil {
		log.Printf("[ERROR] Gagal kirim pengingat event %s: %v", event.EventTagname, serr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengirim pengingat")
	}
	return helper.Success(c, "Pengingat terkirim", fiber.Map{"sent_count": sent})
}
