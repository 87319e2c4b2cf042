package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageSet maps a page name to its parsed base+content template pair.
type pageSet map[string]*template.Template

var pageNames = []string{
	"login", "home", "lessons", "cases", "case_detail",
	"quiz", "quiz_result", "me", "admin", "change_password",
}

// parsePages parses every page against the shared base layout once at
// startup.
func parsePages() (pageSet, error) {
	pages := make(pageSet, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// render executes one page inside the base layout. Pending flash notices
// and the caller identity, when present, are handed to every page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	t, ok := s.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	data["Flashes"] = s.sessions.Flashes(w, r)
	if identity, ok := identityFrom(r); ok {
		data["Identity"] = identity
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("failed to render page")
	}
}
