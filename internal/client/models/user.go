// Package models defines the wire and storage types shared by the creditapp
// client: the user profile returned by the login endpoint, notification
// settings, device registrations, and client comments. JSON tags follow the
// backend's snake_case field names and must not change.
package models

import "github.com/fintechdocs/creditapp/internal/common"

// User is the profile payload returned by POST /swift/api_login_swift and
// persisted locally as the session.
type User struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
	APIURL     string `json:"api_url"`
	Otdel      string `json:"otdel"`
	DirectorID int    `json:"director_id"`
	Department string `json:"department"`
	UserGroup  string `json:"user_group"`
}

// IsZero reports whether u carries the legacy "no session" sentinel
// (zero id and empty username). Stored sessions matching it are treated
// as absent.
func (u *User) IsZero() bool {
	return u.ID == 0 && u.Username == ""
}

// IsDemo reports whether u is the reserved demo account.
func (u *User) IsDemo() bool {
	return u.Email == common.DemoEmail
}
