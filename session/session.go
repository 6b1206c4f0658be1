package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/smadsen/powerium/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	sessionName = "powerium_session"
	userIDKey   = "userID"
)

// Flash kinds surfaced to views.
const (
	FlashError  = "error"
	FlashNotice = "notice"
)

// ErrInvalidCredentials covers both an unknown email and a wrong
// password, so a failed login never reveals which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Manager establishes a logged-in principal from submitted credentials
// and carries that identity across requests in a cookie-backed session.
// A session is either Anonymous (no principal) or Authenticated.
type Manager struct {
	store *sessions.CookieStore
	users repository.UserRepository
}

func NewManager(secret string, users repository.UserRepository) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, users: users}
}

// Authenticate verifies the credentials and, on success, records the
// user's identity as the session principal. A failed attempt leaves the
// session Anonymous and returns ErrInvalidCredentials.
func (m *Manager) Authenticate(w http.ResponseWriter, r *http.Request, email, password string) error {
	user, err := m.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		return fmt.Errorf("error fetching user for login: %w", err)
	}
	if user == nil {
		return ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(password, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	sess, _ := m.store.Get(r, sessionName)
	sess.Values[userIDKey] = user.ID.Hex()
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

// CurrentUserID returns the session principal's identifier.
// ok is false for an Anonymous session.
func (m *Manager) CurrentUserID(r *http.Request) (primitive.ObjectID, bool) {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		// An undecodable cookie is treated as no session at all.
		return primitive.NilObjectID, false
	}
	hex, ok := sess.Values[userIDKey].(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// IsAuthenticated reports whether the session carries a principal.
func (m *Manager) IsAuthenticated(r *http.Request) bool {
	_, ok := m.CurrentUserID(r)
	return ok
}

// LogOut clears the principal and expires the session cookie,
// returning the session to Anonymous.
func (m *Manager) LogOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, sessionName)
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

// Flash records a one-shot message of the given kind for the next page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	sess, _ := m.store.Get(r, sessionName)
	sess.AddFlash(message, kind)
	_ = sess.Save(r, w)
}

// Flashes drains the pending messages of the given kind.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request, kind string) []string {
	sess, _ := m.store.Get(r, sessionName)
	raw := sess.Flashes(kind)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
