package server

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

func (s *Server) handleTrialList(w http.ResponseWriter, r *http.Request) {
	trials, err := s.provider.List()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("list trials")
		writeError(w, http.StatusInternalServerError, "failed to list trials", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trials": trials})
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	trialID := r.PathValue("trialId")

	raw, err := s.provider.Analysis(trialID)
	switch {
	case errors.Is(err, ErrTrialNotFound):
		writeError(w, http.StatusNotFound, "analysis not found", map[string]any{"trialId": trialID})
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("read analysis")
		writeError(w, http.StatusInternalServerError, "failed to read analysis", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	trialID := r.PathValue("trialId")

	tr, err := s.trials.Transcript(trialID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transcript not found", map[string]any{"trialId": trialID})
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("load transcript")
		writeError(w, http.StatusInternalServerError, "failed to load transcript", nil)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}
