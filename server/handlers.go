package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veridian-labs/cofoundry/core"
	"github.com/veridian-labs/cofoundry/search"
)

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Query   string              `json:"query"`
	Matches []*core.MatchResult `json:"matches"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	matches, err := s.searcher.Search(r.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrEmptyQuery):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, search.ErrNotInitialized):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		default:
			// Internal detail stays in the log
			s.logger.Error("search failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "search failed"})
		}
		return
	}

	if matches == nil {
		matches = []*core.MatchResult{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: req.Query, Matches: matches})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
