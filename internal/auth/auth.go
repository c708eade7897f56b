// Package auth simulates a signed-in session. There is no backend: any
// non-empty email with a password of at least six characters is accepted.
package auth

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/zhubert/saasboard/internal/logger"
	"github.com/zhubert/saasboard/internal/observer"
)

// MinPasswordLength is the shortest password Login accepts.
const MinPasswordLength = 6

// User is the signed-in identity.
type User struct {
	Name  string
	Email string
}

// Session describes the current sign-in.
type Session struct {
	ID       string
	User     User
	SignedIn time.Time
}

// Holder owns the authentication state for the whole program.
type Holder struct {
	session *Session
	changed observer.Subject[bool]
	now     func() time.Time
}

// NewHolder returns a signed-out holder.
func NewHolder() *Holder {
	return &Holder{now: time.Now}
}

// Login signs in when email is non-empty and password is long enough. The
// display name is the local part of the email.
func (h *Holder) Login(email, password string) bool {
	log := logger.WithComponent("auth")
	email = strings.TrimSpace(email)
	if email == "" || utf8.RuneCountInString(password) < MinPasswordLength {
		log.Debug("login rejected", "email", email)
		return false
	}

	name, _, _ := strings.Cut(email, "@")
	h.session = &Session{
		ID:       uuid.NewString(),
		User:     User{Name: name, Email: email},
		SignedIn: h.now(),
	}
	log.Info("signed in", "session", h.session.ID, "user", name)
	h.changed.Notify(true)
	return true
}

// Logout clears the session. Logging out while signed out does nothing.
func (h *Holder) Logout() {
	if h.session == nil {
		return
	}
	logger.WithComponent("auth").Info("signed out", "session", h.session.ID)
	h.session = nil
	h.changed.Notify(false)
}

// IsAuthenticated reports whether a session is active.
func (h *Holder) IsAuthenticated() bool {
	return h.session != nil
}

// User returns the signed-in user, or the zero User when signed out.
func (h *Holder) User() User {
	if h.session == nil {
		return User{}
	}
	return h.session.User
}

// UpdateProfile replaces the display name and email of the current user.
func (h *Holder) UpdateProfile(u User) {
	if h.session == nil {
		return
	}
	h.session.User = u
	h.changed.Notify(true)
}

// Session returns a copy of the active session.
func (h *Holder) Session() (Session, bool) {
	if h.session == nil {
		return Session{}, false
	}
	return *h.session, true
}

// Subscribe registers fn to be called with the authentication state after
// every change.
func (h *Holder) Subscribe(fn func(authenticated bool)) (unsubscribe func()) {
	return h.changed.Subscribe(fn)
}
