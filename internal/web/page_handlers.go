package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "home", map[string]any{"Title": "Ana Sayfa"})
}

func (s *Server) lessons(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "lessons", map[string]any{"Title": "Dersler"})
}

func (s *Server) cases(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "cases", map[string]any{
		"Title": "Vaka Bankası",
		"Cases": s.content.Cases,
	})
}

func (s *Server) caseDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.sessions.AddFlash(w, r, "Vaka bulunamadı.")
		http.Redirect(w, r, "/cases", http.StatusFound)
		return
	}

	c, err := s.content.CaseByID(id)
	if err != nil {
		s.sessions.AddFlash(w, r, "Vaka bulunamadı.")
		http.Redirect(w, r, "/cases", http.StatusFound)
		return
	}

	s.render(w, r, "case_detail", map[string]any{
		"Title": c.Title,
		"Case":  c,
	})
}
