package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"robostaff_backend/internals/configs"
	"robostaff_backend/internals/features/admins/users/dto"
	"robostaff_backend/internals/features/admins/users/model"
	helper "robostaff_backend/internals/helpers"
	"robostaff_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AdminAuthController struct {
	DB *gorm.DB
}

func NewAdminAuthController(db *gorm.DB) *AdminAuthController {
	return &AdminAuthController{DB: db}
}

// 🟢 POST /admin/login — email + password, balasan JWT HS256
func (ctrl *AdminAuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminUserModel
	if err := ctrl.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[ERROR] Gagal cari admin: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !admin.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if configs.JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": admin.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] Gagal sign token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"token": signed,
		"admin": dto.ToAdminResponse(&admin),
	})
}

// 🟢 GET /admin/me
func (ctrl *AdminAuthController) Me(c *fiber.Ctx) error {
	admin := auth.GetAdmin(c)
	return helper.Success(c, "Profil admin", dto.ToAdminResponse(admin))
}
