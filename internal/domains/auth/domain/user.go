package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 6 characters")
)

// User is a dashboard account allowed to manage invoices. Credentials are
// the only profile data the authenticator needs.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// NewUser builds a user ensuring credential invariants.
func NewUser(id, email, password string) (*User, error) {
	user := &User{ID: id}
	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetEmail trims and validates the login email.
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// SetPassword validates basic password strength.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 6 {
		return ErrWeakPassword
	}
	u.Password = password
	return nil
}

// CheckPassword compares the stored password with the supplied credentials.
func (u *User) CheckPassword(password string) bool {
	return password != "" && u.Password == password
}
