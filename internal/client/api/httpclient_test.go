package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/logging"
)

func testLogger() logging.Logger {
	return logging.New(10) // above Error, keeps test output quiet
}

func TestHTTPClient_Login_Success(t *testing.T) {
	var gotBody loginRequest
	var gotPath string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(models.User{
			ID: 42, Email: "ivanov@example.ru", Username: "iivanov", APIURL: srvURL(r),
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, testLogger())
	u, err := c.Login(context.Background(), "iivanov", "ivanov@example.ru", "secret")
	require.NoError(t, err)
	require.Equal(t, "/swift/api_login_swift", gotPath)
	require.Equal(t, loginRequest{Username: "iivanov", Email: "ivanov@example.ru", Password: "secret"}, gotBody)
	require.Equal(t, 42, u.ID)
	require.Equal(t, "iivanov", u.Username)
}

func srvURL(r *http.Request) string { return "http://" + r.Host + "/" }

func TestHTTPClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, testLogger())
	_, err := c.Login(context.Background(), "iivanov", "ivanov@example.ru", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHTTPClient_Login_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewHTTPClient(srv.URL, 0, testLogger())
	_, err := c.Login(context.Background(), "iivanov", "ivanov@example.ru", "secret")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Login_TruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":42,"email":"iva`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, testLogger())
	_, err := c.Login(context.Background(), "iivanov", "ivanov@example.ru", "secret")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidCredentials))
	require.False(t, errors.Is(err, ErrUnavailable))
}

func TestHTTPClient_Login_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, testLogger())
	_, err := c.Login(context.Background(), "iivanov", "ivanov@example.ru", "secret")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestHTTPClient_Logout(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodPost, r.Method)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, testLogger())
	require.NoError(t, c.Logout(context.Background()))
	require.Equal(t, "/swift/api_logout_swift", gotPath)
}

func TestHTTPClient_RegisterDevice(t *testing.T) {
	var got models.DeviceRegistration
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/swift/register_device/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, testLogger())
	reg := models.DeviceRegistration{
		RegistrationID: "fcm-token", DeviceType: "terminal", UserID: 42, Email: "ivanov@example.ru",
	}
	require.NoError(t, c.RegisterDevice(context.Background(), reg))
	require.Equal(t, reg, got)
}

func TestHTTPClient_FetchNotificationSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/swift/share_preferences/42/ivanov@example.ru/terminal", r.URL.Path)
		json.NewEncoder(w).Encode(models.NotificationSettings{
			UserID: 42, Email: "ivanov@example.ru", DeviceType: "terminal",
			CommentsNotifications: 1, StatusNotifications: []string{"overdue", "approved"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0, testLogger())
	s, err := c.FetchNotificationSettings(context.Background(), 42, "ivanov@example.ru", "terminal")
	require.NoError(t, err)
	require.Equal(t, 1, s.CommentsNotifications)
	require.Equal(t, []string{"overdue", "approved"}, s.StatusNotifications)
}

func TestHTTPClient_FetchStatuses_UsesAPIBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/swift/statuses_list", r.URL.Path)
		json.NewEncoder(w).Encode([]string{"new", "overdue"})
	}))
	defer srv.Close()

	// deliberately bind the client to a dead address: statuses must go to apiBase
	c := NewHTTPClient("http://127.0.0.1:1", 0, testLogger())
	statuses, err := c.FetchStatuses(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, []string{"new", "overdue"}, statuses)
}

func TestHTTPClient_PostComment(t *testing.T) {
	var got models.Comment
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/swift/api_comment", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	c := NewHTTPClient("http://127.0.0.1:1", 0, testLogger())
	comment := models.Comment{ClientINN: "7707083893", Author: 42, Comment: "перезвонить", CommentDate: "2026-08-31 12:00:00"}
	require.NoError(t, c.PostComment(context.Background(), srv.URL, comment))
	require.Equal(t, comment, got)
}
