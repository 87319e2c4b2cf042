package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"asistanportal/internal/services"
)

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	// Already signed in: straight to the home page.
	if _, ok := s.sessions.UserID(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	s.render(w, r, "login", map[string]any{"Title": "Giriş"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessions.UserID(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	identity, err := s.users.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, services.ErrBadCredentials) {
			log.Error().Err(err).Msg("login lookup failed")
		} else {
			log.Warn().Str("username", username).Msg("failed login attempt")
		}
		// One notice for every failure; never reveal which accounts exist.
		s.sessions.AddFlash(w, r, "Hatalı kullanıcı adı veya şifre.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := s.sessions.SignIn(w, r, identity.ID); err != nil {
		log.Error().Err(err).Int("user_id", identity.ID).Msg("failed to save session")
		s.sessions.AddFlash(w, r, "Oturum açılamadı, tekrar deneyin.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.SignOut(w, r); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) changePasswordForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "change_password", map[string]any{"Title": "Şifre Değiştir"})
}

func (s *Server) changePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	old := r.FormValue("old")
	newPassword := r.FormValue("new")
	confirm := r.FormValue("new2")

	err := s.users.ChangePassword(identity, old, newPassword, confirm)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		s.sessions.AddFlash(w, r, "Tüm alanları doldurun.")
		http.Redirect(w, r, "/change-password", http.StatusFound)
	case errors.Is(err, services.ErrPasswordMismatch):
		s.sessions.AddFlash(w, r, "Yeni şifreler uyuşmuyor.")
		http.Redirect(w, r, "/change-password", http.StatusFound)
	case errors.Is(err, services.ErrBadCredentials):
		s.sessions.AddFlash(w, r, "Eski şifre yanlış.")
		http.Redirect(w, r, "/change-password", http.StatusFound)
	case err != nil:
		log.Error().Err(err).Int("user_id", identity.ID).Msg("failed to change password")
		s.sessions.AddFlash(w, r, "Şifre değiştirilemedi, tekrar deneyin.")
		http.Redirect(w, r, "/change-password", http.StatusFound)
	default:
		s.sessions.AddFlash(w, r, "Şifreniz değiştirildi.")
		http.Redirect(w, r, "/", http.StatusFound)
	}
}
