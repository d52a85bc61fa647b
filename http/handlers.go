package http

import (
	"net/http"
	"strconv"

	cmdlib "github.com/dockers-x/LinuxCommandLibrary"
)

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, "Service is healthy")
}

// handleStats returns aggregate catalog counts.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.CategoryService.Stats(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, stats)
}

// handleCategories returns basic category titles.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	titles, err := s.CategoryService.CategoryTitles(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, titles)
}

// handleCategoriesDetailed returns categories with descriptions and icons.
func (s *Server) handleCategoriesDetailed(w http.ResponseWriter, r *http.Request) {
	categories, err := s.CategoryService.DetailedCategories(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, categories)
}

// handleSearch performs substring search over names and descriptions.
// A missing or blank q yields an empty result, not an error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.respondError(w, r, cmdlib.Errorf(cmdlib.EINVALID, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	commands, err := s.CommandService.SearchCommands(r.Context(), q, limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, commands)
}

// handleSuggestions returns autocomplete candidates for a name prefix.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	names, err := s.CommandService.SuggestCommands(r.Context(), r.URL.Query().Get("q"), 0)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, names)
}

// handlePopular returns the curated popular list resolved against the
// catalog.
func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	commands, err := s.CommandService.PopularCommands(r.Context(), s.Popular.Commands)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, commands)
}

// handleCommands returns the full catalog for the alphabetical listing.
func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	commands, err := s.CommandService.FindCommands(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, commands)
}

// handleCommandByID returns one command with its sections.
func (s *Server) handleCommandByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		s.respondError(w, r, cmdlib.Errorf(cmdlib.EINVALID, "command id must be a positive integer"))
		return
	}

	detail, err := s.CommandService.FindCommandByID(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, detail)
}

// handleCommandsByCategory returns the commands grouped under a basic
// category title.
func (s *Server) handleCommandsByCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.respondError(w, r, cmdlib.Errorf(cmdlib.EINVALID, "category name required"))
		return
	}

	commands, err := s.CategoryService.FindCommandsByCategory(r.Context(), name)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, commands)
}

// handleRandomTip returns one uniformly selected tip.
func (s *Server) handleRandomTip(w http.ResponseWriter, r *http.Request) {
	tip, err := s.TipService.RandomTip(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respond(w, tip)
}
