package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"robostaff_backend/internals/features/notifications/service"
	helper "robostaff_backend/internals/helpers"
)

type NotificationAdminController struct {
	DB            *gorm.DB
	Notifications *service.NotificationService
}

func NewNotificationAdminController(db *gorm.DB, notifications *service.NotificationService) *NotificationAdminController {
	return &NotificationAdminController{DB: db, Notifications: notifications}
}

// 🟢 GET /admin/notifications?limit=50 — jejak audit notifikasi, terbaru dulu
func (ctrl *NotificationAdminController) Index(c *fiber.Ctx) error {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	items, err := ctrl.Notifications.ListRecent(limit)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat notifikasi")
	}
	return helper.Success(c, "Riwayat notifikasi", items)
}
