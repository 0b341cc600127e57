package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "robostaff_backend/internals/features/admins/dashboard/controller"
	preferenceController "robostaff_backend/internals/features/admins/preferences/controller"
	eventController "robostaff_backend/internals/features/events/events/controller"
	registrationService "robostaff_backend/internals/features/events/registrations/service"
	staffingController "robostaff_backend/internals/features/events/staffing/controller"
	staffingService "robostaff_backend/internals/features/events/staffing/service"
	notificationController "robostaff_backend/internals/features/notifications/controller"
	notifService "robostaff_backend/internals/features/notifications/service"
	"robostaff_backend/internals/middlewares/auth"
)

// AdminRoutes: seluruh endpoint pengelolaan — dilindungi JWT admin.
func AdminRoutes(
	app *fiber.App,
	db *gorm.DB,
	notifier *notifService.NotificationService,
	registrations *registrationService.RegistrationService,
	staffing *staffingService.AssignmentService,
) {
	events := eventController.NewEventAdminController(db, staffing)
	staffAdmin := staffingController.NewStaffingAdminController(db, staffing, registrations)
	dashboard := dashboardController.NewDashboardController(db, registrations)
	notifications := notificationController.NewNotificationAdminController(db, notifier)
	preferences := preferenceController.NewSitePreferenceController(db)

	// preferensi situs dibaca publik (halaman depan)
	app.Get("/api/preferences", preferences.Show)

	admin := app.Group("/api/admin", auth.AuthAdmin(db))

	admin.Get("/dashboard", dashboard.Show)
	admin.Get("/notifications", notifications.Index)
	admin.Put("/preferences", preferences.Update)

	// event CRUD
	admin.Get("/events", events.Index)
	admin.Post("/events", events.Store)
	admin.Get("/events/:tagname", events.Show)
	admin.Put("/events/:tagname", events.Update)
	admin.Delete("/events/:tagname", events.Destroy)
	admin.Post("/events/:tagname/copy", events.Copy)
	admin.Put("/events/:tagname/logo", events.SetLogo)

	// role & jadwal
	admin.Post("/events/:tagname/roles", events.AddRole)
	admin.Put("/events/:tagname/roles/:roleId", events.UpdateRole)
	admin.Delete("/events/:tagname/roles/:roleId", events.DeleteRole)
	admin.Put("/events/:tagname/days/:dayId/schedule", events.UpdateDaySchedule)

	// staffing
	admin.Get("/events/:tagname/registrations", staffAdmin.Index)
	admin.Post("/events/:tagname/registrations/:registrationId/validate", staffAdmin.Validate)
	admin.Post("/events/:tagname/registrations/:registrationId/assign-role", staffAdmin.AssignRole)
	admin.Post("/events/:tagname/send-reminder", staffAdmin.SendReminder)
}
