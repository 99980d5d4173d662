package api

import (
	"context"

	"github.com/fintechdocs/creditapp/internal/client/models"
)

// Client is the surface of the backend REST API used by the client core.
//
// Login and Logout talk to the configured public server. FetchStatuses and
// PostComment take the per-user API base from the session profile, because
// the backend routes those through the organization's own instance.
type Client interface {
	Close() error
	Login(ctx context.Context, username string, email string, password string) (*models.User, error)
	Logout(ctx context.Context) error
	RegisterDevice(ctx context.Context, reg models.DeviceRegistration) error
	PushNotificationSettings(ctx context.Context, s models.NotificationSettings) error
	FetchNotificationSettings(ctx context.Context, userID int, email string, platform string) (*models.NotificationSettings, error)
	FetchStatuses(ctx context.Context, apiBase string) ([]string, error)
	PostComment(ctx context.Context, apiBase string, c models.Comment) error
}
