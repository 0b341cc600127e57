package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "robostaff_backend/internals/features/events/registrations/controller"
	registrationService "robostaff_backend/internals/features/events/registrations/service"
	staffingService "robostaff_backend/internals/features/events/staffing/service"
	staffController "robostaff_backend/internals/features/staff/staff/controller"
	"robostaff_backend/internals/middlewares/auth"
)

// StaffRoutes: semua endpoint sisi staff — butuh token koneksi valid.
func StaffRoutes(app *fiber.App, db *gorm.DB, registrations *registrationService.RegistrationService, staffing *staffingService.AssignmentService) {
	profile := staffController.NewStaffProfileController(db)
	events := registrationController.NewRegistrationController(db, registrations, staffing)

	staff := app.Group("/api/staff", auth.AuthStaff(db))

	// profil
	staff.Get("/profile", profile.Show)
	staff.Put("/profile", profile.Update)
	staff.Put("/profile/photo", profile.SetPhoto)
	staff.Delete("/profile/photo", profile.DeletePhoto)
	staff.Delete("/profile", profile.Anonymize)

	// event & registrasi
	staff.Get("/events", events.Index)
	staff.Get("/events/:tagname", events.Show)
	staff.Post("/events/:tagname/register", events.Register)
	staff.Delete("/events/:tagname/registration", events.Cancel)
	staff.Put("/events/:tagname/registration", events.Update)
	staff.Put("/events/:tagname/registration/preferences", events.UpdatePreferences)
	staff.Put("/events/:tagname/registration/availability", events.UpdateAvailability)
}
