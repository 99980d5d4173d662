package devserver

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fintechdocs/creditapp/internal/client/api"
	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/common"
	"github.com/fintechdocs/creditapp/internal/logging"
)

// Поднимает dev-сервер на httptest и настоящий HTTP-клиент поверх него.
func newTestPair(t *testing.T) (*Server, api.Client, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New("", logger)

	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)

	return s, api.NewHTTPClient(ts.URL, 0, logging.New(slog.LevelError)), ts.URL
}

func TestLogin_SeededAccount(t *testing.T) {
	_, client, _ := newTestPair(t)

	u, err := client.Login(context.Background(), "ivanov", "ivanov@example.ru", "password")
	require.NoError(t, err)
	require.Equal(t, 42, u.ID)
	require.Equal(t, "ivanov", u.Username)
	require.NotEmpty(t, u.APIURL, "api_url must point back at the dev server")
}

func TestLogin_Demo(t *testing.T) {
	_, client, _ := newTestPair(t)

	u, err := client.Login(context.Background(), common.DemoUsername, common.DemoEmail, common.DemoPassword)
	require.NoError(t, err)
	require.Equal(t, common.DemoEmail, u.Email)
	require.True(t, u.IsDemo())
}

func TestLogin_WrongPassword(t *testing.T) {
	_, client, _ := newTestPair(t)

	_, err := client.Login(context.Background(), "ivanov", "ivanov@example.ru", "nope")
	require.ErrorIs(t, err, api.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	_, client, _ := newTestPair(t)
	require.NoError(t, client.Logout(context.Background()))
}

func TestRegisterDevice(t *testing.T) {
	s, client, _ := newTestPair(t)

	err := client.RegisterDevice(context.Background(), models.DeviceRegistration{
		RegistrationID: "tok123",
		DeviceType:     "terminal",
		UserID:         42,
		Email:          "ivanov@example.ru",
	})
	require.NoError(t, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.devices, 1)
	require.Equal(t, "tok123", s.devices[0].RegistrationID)
}

func TestNotificationSettings_Roundtrip(t *testing.T) {
	_, client, _ := newTestPair(t)
	ctx := context.Background()

	pushed := models.NotificationSettings{
		UserID:                42,
		Email:                 "ivanov@example.ru",
		DeviceType:            "terminal",
		CommentsNotifications: 1,
		StatusNotifications:   []string{"В работе"},
	}
	require.NoError(t, client.PushNotificationSettings(ctx, pushed))

	got, err := client.FetchNotificationSettings(ctx, 42, "ivanov@example.ru", "terminal")
	require.NoError(t, err)
	require.Equal(t, pushed, *got)
}

func TestNotificationSettings_DefaultsWhenUnset(t *testing.T) {
	_, client, _ := newTestPair(t)

	got, err := client.FetchNotificationSettings(context.Background(), 99, "x@example.ru", "terminal")
	require.NoError(t, err)
	require.Equal(t, 99, got.UserID)
	require.Zero(t, got.CommentsNotifications)
}

func TestStatuses(t *testing.T) {
	s, client, _ := newTestPair(t)

	u, err := client.Login(context.Background(), "ivanov", "ivanov@example.ru", "password")
	require.NoError(t, err)

	statuses, err := client.FetchStatuses(context.Background(), u.APIURL)
	require.NoError(t, err)
	require.Equal(t, s.statuses, statuses)
}

func TestPostComment(t *testing.T) {
	s, client, _ := newTestPair(t)
	ctx := context.Background()

	u, err := client.Login(ctx, "ivanov", "ivanov@example.ru", "password")
	require.NoError(t, err)

	err = client.PostComment(ctx, u.APIURL, models.Comment{
		ClientINN:   "7707083893",
		Author:      u.ID,
		Comment:     "созвонились, ждут документы",
		CommentDate: "2025-03-14 10:30:00",
	})
	require.NoError(t, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.comments, 1)
	require.Equal(t, "7707083893", s.comments[0].ClientINN)
}

func TestPostComment_RejectsEmpty(t *testing.T) {
	_, client, base := newTestPair(t)

	err := client.PostComment(context.Background(), base, models.Comment{})
	require.Error(t, err)
}
