// Package web is the HTML surface of the portal: routing, the session
// middleware and the page handlers.
package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"asistanportal/internal/content"
	"asistanportal/internal/services"
	"asistanportal/internal/session"
)

// Server bundles everything the handlers need.
type Server struct {
	users    services.UserServiceProvider
	results  services.ResultServiceProvider
	content  *content.Store
	sessions *session.Manager
	pages    pageSet
}

// NewServer parses the page templates and wires the handler dependencies.
func NewServer(users services.UserServiceProvider, results services.ResultServiceProvider, store *content.Store, sessions *session.Manager) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Server{
		users:    users,
		results:  results,
		content:  store,
		sessions: sessions,
		pages:    pages,
	}, nil
}

// Router creates and configures the Chi router.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.RedirectSlashes)

	r.Get("/login", s.loginForm)
	r.Post("/login", s.login)

	// Everything below requires a signed-in account.
	r.Group(func(g chi.Router) {
		g.Use(s.requireUser)

		g.Get("/", s.home)
		g.Get("/logout", s.logout)
		g.Get("/lessons", s.lessons)
		g.Get("/cases", s.cases)
		g.Get("/cases/{id}", s.caseDetail)
		g.Get("/quiz", s.quizForm)
		g.Post("/quiz", s.quizSubmit)
		g.Get("/me", s.myResults)
		g.Get("/change-password", s.changePasswordForm)
		g.Post("/change-password", s.changePassword)

		g.Get("/admin", s.adminOverview)
		g.Get("/admin/export.csv", s.adminExportCSV)
		g.Get("/admin/reset-demo-passwords", s.adminResetDemoPasswords)
	})

	return r
}
