package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"asistanportal/internal/models"
)

type contextKey string

// identityKey is the context key for the resolved caller identity.
const identityKey = contextKey("identity")

// requireUser resolves the session to a fresh account row and stores the
// resulting Identity in the request context. The row is re-read on every
// request so a password change or admin-flag edit takes effect immediately.
// Anything without a valid session is sent to the login page.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := s.sessions.UserID(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		user, err := s.users.GetByID(userID)
		if err != nil {
			// Stale cookie for a row that no longer resolves.
			log.Warn().Err(err).Int("user_id", userID).Msg("session user not found")
			_ = s.sessions.SignOut(w, r)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, user.Identity())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFrom pulls the caller identity placed by requireUser.
func identityFrom(r *http.Request) (models.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(models.Identity)
	return identity, ok
}

// requireAdmin checks the admin capability flag. On failure it flashes the
// admin-required notice and redirects home; the caller must return without
// writing anything else.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return models.Identity{}, false
	}
	if !identity.IsAdmin {
		s.sessions.AddFlash(w, r, "Bu sayfa için admin yetkisi gerekiyor.")
		http.Redirect(w, r, "/", http.StatusFound)
		return models.Identity{}, false
	}
	return identity, true
}
