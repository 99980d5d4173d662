package services

import (
	"context"

	"github.com/fintechdocs/creditapp/internal/client/api"
	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/client/session"
	"github.com/fintechdocs/creditapp/internal/common"
	"github.com/fintechdocs/creditapp/internal/logging"
)

// NotificationService handles device registration and notification
// preferences. Pushes are fire-and-forget: transport and decode failures
// are logged and never surfaced to the caller.
type NotificationService struct {
	api   api.Client
	store *session.Store
	log   logging.Logger
}

func NewNotificationService(apiClient api.Client, store *session.Store, log logging.Logger) *NotificationService {
	return &NotificationService{api: apiClient, store: store, log: log}
}

// RegisterDevice submits the push-provider token for the current session.
// Without a session the call is silently skipped.
func (s *NotificationService) RegisterDevice(ctx context.Context, token, deviceType string) {
	u, err := s.store.Session(ctx)
	if err != nil || u == nil {
		s.log.Warn(ctx, "device registration skipped: no session", "error", err)
		return
	}

	reg := models.DeviceRegistration{
		RegistrationID: token,
		DeviceType:     deviceType,
		UserID:         u.ID,
		Email:          u.Email,
	}
	if err := s.api.RegisterDevice(ctx, reg); err != nil {
		s.log.Error(ctx, "device registration failed", "user_id", u.ID, "error", err)
		return
	}
	s.log.Info(ctx, "device registered", "user_id", u.ID, "device_type", deviceType)
}

// Push submits notification preferences, filling in the identity fields
// from the current session.
func (s *NotificationService) Push(ctx context.Context, settings models.NotificationSettings, deviceType string) {
	u, err := s.store.Session(ctx)
	if err != nil || u == nil {
		s.log.Warn(ctx, "settings push skipped: no session", "error", err)
		return
	}

	settings.UserID = u.ID
	settings.Email = u.Email
	settings.DeviceType = deviceType

	if err := s.api.PushNotificationSettings(ctx, settings); err != nil {
		s.log.Error(ctx, "settings push failed", "user_id", u.ID, "error", err)
		return
	}
	s.log.Info(ctx, "notification settings pushed", "user_id", u.ID)
}

// Fetch retrieves the stored preferences for the current session.
func (s *NotificationService) Fetch(ctx context.Context, platform string) (*models.NotificationSettings, error) {
	u, err := s.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrorUnauthorized
	}
	return s.api.FetchNotificationSettings(ctx, u.ID, u.Email, platform)
}

// Statuses lists the client-status labels the user may subscribe to,
// queried from the session's own API base.
func (s *NotificationService) Statuses(ctx context.Context) ([]string, error) {
	u, err := s.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrorUnauthorized
	}
	return s.api.FetchStatuses(ctx, u.APIURL)
}
