package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robostaff_backend/internals/configs"
	"robostaff_backend/internals/features/notifications/mailer"
	notifService "robostaff_backend/internals/features/notifications/service"
	"robostaff_backend/internals/features/staff/auth/dto"
	authService "robostaff_backend/internals/features/staff/auth/service"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
	staffService "robostaff_backend/internals/features/staff/staff/service"
	helper "robostaff_backend/internals/helpers"
)

var validate = validator.New()

type StaffAuthController struct {
	DB         *gorm.DB
	Staff      *staffService.StaffService
	Connection *authService.ConnectionService
}

func NewStaffAuthController(db *gorm.DB) *StaffAuthController {
	notifier := notifService.NewNotificationService(db, mailer.FromConfig())
	return &StaffAuthController{
		DB:         db,
		Staff:      staffService.NewStaffService(db),
		Connection: authService.NewConnectionService(db, notifier),
	}
}

// 🟢 POST /staff/register — daftar akun + kirim link koneksi
func (ctrl *StaffAuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// cek unik username/email dulu supaya errornya per-field, bukan 500
	var count int64
	if err := ctrl.DB.Model(&staffModel.StaffModel{}).
		Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek username")
	}
	if count > 0 {
		return helper.FieldError(c, "username", "Username sudah terpakai")
	}
	if err := ctrl.DB.Model(&staffModel.StaffModel{}).
		Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek email")
	}
	if count > 0 {
		return helper.FieldError(c, "email", "Email sudah terdaftar")
	}

	staff := &staffModel.StaffModel{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := ctrl.DB.Create(staff).Error; err != nil {
		log.Printf("[ERROR] Gagal membuat staff: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	if err := ctrl.Connection.SendConnectionEmail(staff); err != nil {
		log.Printf("[ERROR] Gagal kirim link koneksi: %v", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Email pendaftaran terkirim", nil)
}

// 🟢 POST /staff/login — minta link login by username/email
func (ctrl *StaffAuthController) RequestLogin(c *fiber.Ctx) error {
	var req dto.RequestLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	staff, err := ctrl.Staff.FindByIdentifier(req.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FieldError(c, "identifier", "Staff tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencari staff")
	}

	if err := ctrl.Connection.SendConnectionEmail(staff); err != nil {
		log.Printf("[ERROR] Gagal kirim link koneksi: %v", err)
	}

	return helper.Success(c, "Email login terkirim", nil)
}

// 🟢 GET /staff/login/:token — login via link
func (ctrl *StaffAuthController) LoginWithToken(c *fiber.Ctx) error {
	token := c.Params("token")

	staff, err := ctrl.Staff.FindByValidToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// token invalid/kedaluwarsa = sesi habis biasa, bukan error keras
			return helper.Error(c, fiber.StatusUnauthorized, "Link tidak valid atau sudah kedaluwarsa")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := ctrl.Staff.RefreshTokenExpiration(staff); err != nil {
		log.Printf("[ERROR] Gagal refresh expiry: %v", err)
	}

	helper.SetStaffTokenCookie(c, staff.AuthToken, configs.StaffTokenTTLDays*24*60*60)
	return helper.Success(c, "Login berhasil", fiber.Map{"staff_id": staff.ID})
}

// 🟢 POST /staff/logout
func (ctrl *StaffAuthController) Logout(c *fiber.Ctx) error {
	helper.ClearStaffTokenCookie(c)
	return helper.Success(c, "Logout berhasil", nil)
}
