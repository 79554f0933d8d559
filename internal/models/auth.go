package models

import (
	"time"
)

// User represents a registered user
type User struct {
	ID            int64  `json:"-" db:"id"`
	UUID          string `json:"id" db:"uuid"`
	FirstName     string `json:"first_name" db:"firstname"`
	LastName      string `json:"last_name" db:"lastname"`
	UserName      string `json:"username" db:"username"`
	Email         string `json:"email" db:"email"`
	Password      string `json:"-" db:"password"` // PBKDF2 hash, never serialised
	Salt          string `json:"-" db:"salt"`
	Country       string `json:"country" db:"country"`
	AboutMe       string `json:"about_me" db:"aboutme"`
	DOB           string `json:"dob" db:"dob"`
	Role          Role   `json:"role" db:"role"`
	ContactNumber string `json:"contact_number" db:"contactnumber"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserAuthToken is a session issued at sign-in.
// LogoutAt is nil while the session is live.
type UserAuthToken struct {
	ID          int64      `json:"-" db:"id"`
	UUID        string     `json:"uuid" db:"uuid"` // owning user's public id
	UserID      int64      `json:"-" db:"user_id"`
	AccessToken string     `json:"-" db:"access_token"`
	LoginAt     time.Time  `json:"login_at" db:"login_at"`
	ExpiresAt   time.Time  `json:"expires_at" db:"expires_at"`
	LogoutAt    *time.Time `json:"logout_at,omitempty" db:"logout_at"`
}

// SignedOut reports whether the session has been ended by sign-out
func (t *UserAuthToken) SignedOut() bool {
	return t.LogoutAt != nil
}
