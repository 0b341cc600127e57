package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"robostaff_backend/internals/configs"
	adminModel "robostaff_backend/internals/features/admins/users/model"
	helper "robostaff_backend/internals/helpers"
)

// Key Locals tempat admin terautentikasi disimpan.
const LocalsAdmin = "admin_user"

// AuthAdmin memverifikasi JWT admin (HS256) dari Authorization header,
// lalu memastikan akunnya masih aktif.
func AuthAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token admin:", err)
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Token invalid or expired")
		}

		adminID, err := extractAdminID(claims)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Invalid or missing admin ID")
		}

		var admin adminModel.AdminUserModel
		if err := db.First(&admin, "id = ?", adminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Admin not found")
			}
			log.Println("[ERROR] DB error saat cek admin:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !admin.IsActive {
			return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals(LocalsAdmin, &admin)
		return c.Next()
	}
}

// GetAdmin mengambil admin terautentikasi dari Locals.
func GetAdmin(c *fiber.Ctx) *adminModel.AdminUserModel {
	admin, _ := c.Locals(LocalsAdmin).(*adminModel.AdminUserModel)
	return admin
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):]), nil
	}
	return "", errors.New("Unauthorized - Missing bearer token")
}

func extractAdminID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["sub"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("claim sub kosong")
	}
	return uuid.Parse(raw)
}
