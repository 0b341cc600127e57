package service

import (
	"fmt"

	"gorm.io/gorm"

	"robostaff_backend/internals/configs"
	"robostaff_backend/internals/features/notifications/model"
	notifService "robostaff_backend/internals/features/notifications/service"
	staffModel "robostaff_backend/internals/features/staff/staff/model"
	staffService "robostaff_backend/internals/features/staff/staff/service"
)

// ConnectionService mengirim link login (passwordless) ke email staff.
type ConnectionService struct {
	Staff    *staffService.StaffService
	Notifier *notifService.NotificationService
}

func NewConnectionService(db *gorm.DB, notifier *notifService.NotificationService) *ConnectionService {
	return &ConnectionService{
		Staff:    staffService.NewStaffService(db),
		Notifier: notifier,
	}
}

// SendConnectionEmail meregenerasi token lalu mengirim link koneksi.
// Tiap kiriman dicatat di ledger sebagai connection_link (tanpa cooldown).
func (s *ConnectionService) SendConnectionEmail(staff *staffModel.StaffModel) error {
	token, err := s.Staff.RegenerateToken(staff)
	if err != nil {
		return err
	}

	loginURL := fmt.Sprintf("%s/staff/login/%s", configs.AppBaseURL, token)
	body := fmt.Sprintf(
		"Hello %s!\n\nClick the link below to access your account.\n\n%s\n\nThis link will expire in %d days.\nIf you did not request this link, you can safely ignore this email.",
		staff.DisplayName(), loginURL, configs.StaffTokenTTLDays,
	)

	return s.Notifier.NotifyStaff(staff, model.TypeConnectionLink, "Your Connection Link", body, nil)
}
