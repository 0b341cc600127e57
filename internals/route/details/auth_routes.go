package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "robostaff_backend/internals/features/admins/users/controller"
	staffAuthController "robostaff_backend/internals/features/staff/auth/controller"
	"robostaff_backend/internals/middlewares"
	"robostaff_backend/internals/middlewares/auth"
)

// AuthRoutes: pendaftaran & login staff (magic link) + login admin (JWT).
// Endpoint auth diberi rate limiter lebih ketat dari limiter global.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	staffAuth := staffAuthController.NewStaffAuthController(db)
	adminAuth := adminController.NewAdminAuthController(db)

	staff := app.Group("/api/staff")
	staff.Post("/register", middlewares.RegisterRateLimiter(), staffAuth.Register)
	staff.Post("/login", middlewares.LoginRateLimiter(), staffAuth.RequestLogin)
	staff.Get("/login/:token", middlewares.LoginRateLimiter(), staffAuth.LoginWithToken)
	staff.Post("/logout", staffAuth.Logout)

	admin := app.Group("/api/admin")
	admin.Post("/login", middlewares.LoginRateLimiter(), adminAuth.Login)
	admin.Get("/me", auth.AuthAdmin(db), adminAuth.Me)
}
