package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robostaff_backend/internals/features/staff/staff/dto"
	staffService "robostaff_backend/internals/features/staff/staff/service"
	helper "robostaff_backend/internals/helpers"
	"robostaff_backend/internals/middlewares/auth"
)

var validate = validator.New()

type StaffProfileController struct {
	DB    *gorm.DB
	Staff *staffService.StaffService
}

func NewStaffProfileController(db *gorm.DB) *StaffProfileController {
	return &StaffProfileController{
		DB:    db,
		Staff: staffService.NewStaffService(db),
	}
}

// 🟢 GET /staff/profile
func (ctrl *StaffProfileController) Show(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)
	return helper.Success(c, "Profil ditemukan", dto.ToStaffResponse(staff))
}

// 🟢 PUT /staff/profile
func (ctrl *StaffProfileController) Update(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(staff)
	if err := ctrl.DB.Save(staff).Error; err != nil {
		log.Printf("[ERROR] Gagal update profil staff %s: %v", staff.ID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}

	return helper.Success(c, "Profil berhasil diperbarui", dto.ToStaffResponse(staff))
}

// 🟢 PUT /staff/profile/photo — simpan path foto (upload fisik di luar API ini)
func (ctrl *StaffProfileController) SetPhoto(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)

	var req struct {
		PhotoPath string `json:"photo_path" validate:"required,max=1000"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	staff.PhotoPath = &req.PhotoPath
	if err := ctrl.DB.Save(staff).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}
	return helper.Success(c, "Foto profil diperbarui", dto.ToStaffResponse(staff))
}

// 🟢 DELETE /staff/profile/photo
func (ctrl *StaffProfileController) DeletePhoto(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)

	staff.PhotoPath = nil
	if err := ctrl.DB.Save(staff).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus foto")
	}
	return helper.Success(c, "Foto profil dihapus", nil)
}

// 🟢 DELETE /staff/profile — anonimisasi akun (registrasi historis tetap ada)
func (ctrl *StaffProfileController) Anonymize(c *fiber.Ctx) error {
	staff := auth.GetStaff(c)

	if err := ctrl.Staff.Anonymize(staff); err != nil {
		log.Printf("[ERROR] Gagal anonimisasi staff %s: %v", staff.ID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus akun")
	}

	helper.ClearStaffTokenCookie(c)
	return helper.Success(c, "Akun berhasil dihapus", nil)
}
