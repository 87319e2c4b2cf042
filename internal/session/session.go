// Package session wraps the cookie session store. It carries exactly two
// things: the signed-in account id and the flash notices shown after a
// redirect.
package session

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "portal_session"

// Manager owns the cookie store.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager derives a signing key and an encryption key from the
// configured secret. Lengths fit what securecookie expects.
func NewManager(secret string, secure bool) *Manager {
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Manager{store: store}
}

func (m *Manager) get(r *http.Request) *sessions.Session {
	// Get never fails into an unusable session: a bad cookie yields a
	// fresh one, which is what we want for sign-in.
	s, _ := m.store.Get(r, sessionName)
	return s
}

// SignIn binds the account id to the session.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID int) error {
	s := m.get(r)
	s.Values["user_id"] = userID
	return s.Save(r, w)
}

// SignOut drops the account id from the session.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r)
	delete(s.Values, "user_id")
	return s.Save(r, w)
}

// UserID returns the signed-in account id, if any.
func (m *Manager) UserID(r *http.Request) (int, bool) {
	s := m.get(r)
	if v, ok := s.Values["user_id"].(int); ok {
		return v, true
	}
	return 0, false
}

// AddFlash queues a one-shot notice for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, msg string) {
	s := m.get(r)
	s.AddFlash(msg)
	_ = s.Save(r, w)
}

// Flashes pops all pending notices.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	s := m.get(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(r, w)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
