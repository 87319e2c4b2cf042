package web

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"asistanportal/internal/quiz"
)

func (s *Server) quizForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "quiz", map[string]any{
		"Title":     "Sınav",
		"Questions": s.content.Bank,
	})
}

func (s *Server) quizSubmit(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sub, err := quiz.ParseSubmission(s.content.Bank, r.PostForm)
	if err != nil {
		if errors.Is(err, quiz.ErrMalformedSubmission) {
			log.Warn().Err(err).Str("username", identity.Username).Msg("rejected quiz submission")
			s.sessions.AddFlash(w, r, "Geçersiz sınav gönderimi, lütfen tüm soruları yanıtlayın.")
			http.Redirect(w, r, "/quiz", http.StatusFound)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	attemptID := uuid.NewString()
	score, review := quiz.Score(s.content.Bank, sub)
	details := quiz.EncodeDetails(s.content.Bank, sub)

	if err := s.results.Save(identity, score, details); err != nil {
		log.Error().Err(err).
			Str("attempt_id", attemptID).
			Int("user_id", identity.ID).
			Msg("failed to save quiz result")
		s.sessions.AddFlash(w, r, "Sonuç kaydedilemedi, tekrar deneyin.")
		http.Redirect(w, r, "/quiz", http.StatusFound)
		return
	}

	log.Info().
		Str("attempt_id", attemptID).
		Str("username", identity.Username).
		Int("score", score).
		Str("details", details).
		Msg("quiz submitted")

	s.render(w, r, "quiz_result", map[string]any{
		"Title":  "Sınav Sonucu",
		"Score":  score,
		"Review": review,
	})
}

func (s *Server) myResults(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	results, err := s.results.ForUser(identity.ID)
	if err != nil {
		log.Error().Err(err).Int("user_id", identity.ID).Msg("failed to list results")
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, "me", map[string]any{
		"Title":   "Sonuçlarım",
		"Results": results,
	})
}
