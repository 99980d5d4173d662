package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/logging"
)

// HTTPClient implements Client over plain HTTP/JSON, matching the backend's
// legacy /swift/ endpoints. Every request is attempted exactly once; a
// timed-out request surfaces as ErrUnavailable like any other transport
// failure.
type HTTPClient struct {
	serverAddr string
	httpc      *http.Client
	log        logging.Logger
}

// NewHTTPClient constructs an HTTPClient bound to serverAddr
// (e.g. "https://www.credit-app.ru/"). A zero timeout means no limit.
func NewHTTPClient(serverAddr string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		serverAddr: normalizeBase(serverAddr),
		httpc:      &http.Client{Timeout: timeout},
		log:        log,
	}
}

func normalizeBase(addr string) string {
	return strings.TrimRight(addr, "/") + "/"
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// do issues a single JSON request. Transport failures are collapsed into
// ErrUnavailable; the caller owns status-code handling and must close the
// body on success.
func (c *HTTPClient) do(ctx context.Context, method, rawURL string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	c.log.Debug(ctx, "api request", "method", method, "url", rawURL, "request_id", reqID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api transport failure", "request_id", reqID, "error", err)
		return nil, ErrUnavailable
	}
	return resp, nil
}

// Login posts credentials to /swift/api_login_swift and decodes the profile.
//
// Error contract (UI copy depends on it):
//   - 401                    → ErrInvalidCredentials
//   - transport failure      → ErrUnavailable
//   - undecodable body, any other status → plain wrapped error
func (c *HTTPClient) Login(ctx context.Context, username, email, password string) (*models.User, error) {
	resp, err := c.do(ctx, http.MethodPost, c.serverAddr+"swift/api_login_swift",
		loginRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("login: unexpected status %s", resp.Status)
	}

	var u models.User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &u, nil
}

// Logout tears down the server-side session. Local state clearing happens
// elsewhere and does not depend on this call succeeding.
func (c *HTTPClient) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, c.serverAddr+"swift/api_logout_swift", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("logout: unexpected status %s", resp.Status)
	}
	return nil
}

// RegisterDevice submits a push registration to /swift/register_device/.
func (c *HTTPClient) RegisterDevice(ctx context.Context, reg models.DeviceRegistration) error {
	resp, err := c.do(ctx, http.MethodPost, c.serverAddr+"swift/register_device/", reg)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("register device: unexpected status %s", resp.Status)
	}
	return nil
}

// PushNotificationSettings submits the preferences object.
func (c *HTTPClient) PushNotificationSettings(ctx context.Context, s models.NotificationSettings) error {
	resp, err := c.do(ctx, http.MethodPost, c.serverAddr+"swift/notification_settings", s)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push notification settings: unexpected status %s", resp.Status)
	}
	return nil
}

// FetchNotificationSettings retrieves the stored preferences for the user.
func (c *HTTPClient) FetchNotificationSettings(ctx context.Context, userID int, email, platform string) (*models.NotificationSettings, error) {
	rawURL := fmt.Sprintf("%sswift/share_preferences/%d/%s/%s",
		c.serverAddr, userID, url.PathEscape(email), url.PathEscape(platform))

	resp, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch notification settings: unexpected status %s", resp.Status)
	}

	var s models.NotificationSettings
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode notification settings: %w", err)
	}
	return &s, nil
}

// FetchStatuses lists the client-status labels available for notification
// subscriptions, from the per-user API base.
func (c *HTTPClient) FetchStatuses(ctx context.Context, apiBase string) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, normalizeBase(apiBase)+"swift/statuses_list", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch statuses: unexpected status %s", resp.Status)
	}

	var statuses []string
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return nil, fmt.Errorf("decode statuses: %w", err)
	}
	return statuses, nil
}

// PostComment submits a client comment to the per-user API base.
func (c *HTTPClient) PostComment(ctx context.Context, apiBase string, comment models.Comment) error {
	resp, err := c.do(ctx, http.MethodPost, normalizeBase(apiBase)+"swift/api_comment", comment)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post comment: unexpected status %s", resp.Status)
	}
	return nil
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
