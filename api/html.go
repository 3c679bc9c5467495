package api

import (
	"bytes"
	"net/http"
)

// handleIndex renders the dashboard page for the current snapshot
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, s.page()); err != nil {
		s.logger.Error().Err(err).Msg("failed to render dashboard")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// handleSearch accepts the search form and redirects back to the page.
// Blank input leaves the current city untouched.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if gen, ok := s.dash.Search(r.PostFormValue("city")); ok {
		s.logger.Info().Uint64("generation", gen).Str("city", s.dash.Snapshot().City).Msg("city selected")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
