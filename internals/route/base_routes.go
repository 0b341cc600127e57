package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "robostaff_backend/internals/helpers"
)

// BaseRoutes: endpoint dasar di luar fitur.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Database tidak terjangkau")
		}
		return helper.Success(c, "OK", fiber.Map{"status": "healthy"})
	})
}
