package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	staffModel "robostaff_backend/internals/features/staff/staff/model"
	staffService "robostaff_backend/internals/features/staff/staff/service"
	helper "robostaff_backend/internals/helpers"
)

// Key Locals tempat staff terautentikasi disimpan.
const LocalsStaff = "staff"

// AuthStaff memvalidasi token koneksi staff (cookie / bearer) pada tiap
// request. Token kedaluwarsa = 401 — itu kejadian rutin sesi habis, bukan
// error keras. Validasi sukses juga menggeser expiry token (sliding window).
func AuthStaff(db *gorm.DB) fiber.Handler {
	svc := staffService.NewStaffService(db)

	return func(c *fiber.Ctx) error {
		token := helper.GetStaffToken(c)
		if token == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthenticated")
		}

		staff, err := svc.FindByValidToken(token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusUnauthorized, "Unauthenticated")
			}
			log.Printf("[ERROR] Gagal cek token staff: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		// Refresh expiry di tiap kunjungan — side effect request, bukan job.
		if err := svc.RefreshTokenExpiration(staff); err != nil {
			log.Printf("[ERROR] Gagal refresh expiry token staff %s: %v", staff.ID, err)
		}

		c.Locals(LocalsStaff, staff)
		return c.Next()
	}
}

// GetStaff mengambil staff terautentikasi dari Locals.
func GetStaff(c *fiber.Ctx) *staffModel.StaffModel {
	staff, _ := c.Locals(LocalsStaff).(*staffModel.StaffModel)
	return staff
}
