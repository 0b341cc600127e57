package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationService "robostaff_backend/internals/features/events/registrations/service"
	staffingService "robostaff_backend/internals/features/events/staffing/service"
	"robostaff_backend/internals/features/notifications/mailer"
	notifService "robostaff_backend/internals/features/notifications/service"
	"robostaff_backend/internals/route/details"
)

// SetupRoutes merangkai service bersama lalu memasang semua grup route.
// Notifier dibuat sekali di sini supaya mailer & cooldown konsisten
// di seluruh fitur.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	notifier := notifService.NewNotificationService(db, mailer.FromConfig())
	registrations := registrationService.NewRegistrationService(db, notifier)
	staffing := staffingService.NewAssignmentService(db, notifier)

	BaseRoutes(app, db)
	details.AuthRoutes(app, db)
	details.StaffRoutes(app, db, registrations, staffing)
	details.AdminRoutes(app, db, notifier, registrations, staffing)
}
