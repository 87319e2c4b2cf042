package web

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

func (s *Server) adminOverview(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}

	users, err := s.users.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	results, err := s.results.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to list results")
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	log.Info().Str("username", identity.Username).Msg("admin overview viewed")
	s.render(w, r, "admin", map[string]any{
		"Title":   "Yönetim",
		"Users":   users,
		"Results": results,
	})
}

func (s *Server) adminExportCSV(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	data, err := s.results.ExportCSV()
	if err != nil {
		log.Error().Err(err).Msg("failed to export results")
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename=sinav_sonuclari.csv`)
	_, _ = w.Write(data)
}

func (s *Server) adminResetDemoPasswords(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}

	if err := s.users.ResetDemoPasswords(); err != nil {
		log.Error().Err(err).Msg("failed to reset demo passwords")
		s.sessions.AddFlash(w, r, "Şifreler sıfırlanamadı.")
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	log.Info().Str("username", identity.Username).Msg("demo passwords reset")
	s.sessions.AddFlash(w, r, "Demo şifreleri sıfırlandı.")
	http.Redirect(w, r, "/admin", http.StatusFound)
}
