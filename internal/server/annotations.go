package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/core/trial"
	"github.com/Abhimanyu-Jha/trial-annotation-tool/internal/stores"
)

type createAnnotationRequest struct {
	ReviewerID string        `json:"reviewerId"`
	TrialPart  trial.Part    `json:"trialPart"`
	Emotion    trial.Emotion `json:"emotion"`
	Start      *float64      `json:"startTime"`
	End        *float64      `json:"endTime"`
	Content    string        `json:"content"`
}

type updateAnnotationRequest struct {
	Content   *string        `json:"content"`
	TrialPart *trial.Part    `json:"trialPart"`
	Emotion   *trial.Emotion `json:"emotion"`
}

func (s *Server) handleAnnotationList(w http.ResponseWriter, r *http.Request) {
	trialID := r.PathValue("trialId")
	writeJSON(w, http.StatusOK, map[string]any{
		"annotations": s.anns.List(trialID),
	})
}

func (s *Server) handleAnnotationCreate(w http.ResponseWriter, r *http.Request) {
	trialID := r.PathValue("trialId")

	var req createAnnotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Start == nil {
		writeError(w, http.StatusBadRequest, "startTime is required", nil)
		return
	}

	ann := trial.Annotation{
		TrialID:    trialID,
		ReviewerID: req.ReviewerID,
		TrialPart:  req.TrialPart,
		Emotion:    req.Emotion,
		Timestamp:  trial.Timestamp{Start: *req.Start, End: req.End},
		Content:    req.Content,
	}
	if ann.ReviewerID == "" {
		ann.ReviewerID = s.reviewerID
	}
	if ann.TrialPart == "" {
		ann.TrialPart = trial.PartOne
	}

	// The transcript snippet is derived server-side so clients cannot
	// store inconsistent excerpts.
	if tr, err := s.trials.Transcript(trialID); err == nil {
		ann.TranscriptSnippet = tr.SnippetFor(ann.Timestamp.Start, ann.Timestamp.End)
	}

	created, err := s.anns.Create(ann)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid annotation", map[string]any{
			"reason": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleAnnotationUpdate(w http.ResponseWriter, r *http.Request) {
	trialID := r.PathValue("trialId")
	annotationID := r.PathValue("annotationId")

	var req updateAnnotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	updated, err := s.anns.Update(trialID, annotationID, stores.UpdateFields{
		Content:   req.Content,
		TrialPart: req.TrialPart,
		Emotion:   req.Emotion,
	})
	switch {
	case errors.Is(err, stores.ErrInvalidAnnotation):
		writeError(w, http.StatusBadRequest, "invalid annotation", nil)
		return
	case errors.Is(err, stores.ErrNotFound):
		writeError(w, http.StatusNotFound, "annotation not found", nil)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update annotation", nil)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleAnnotationDelete(w http.ResponseWriter, r *http.Request) {
	trialID := r.PathValue("trialId")
	annotationID := r.PathValue("annotationId")

	// Idempotent: deleting an absent id still returns 204.
	s.anns.Delete(trialID, annotationID)
	w.WriteHeader(http.StatusNoContent)
}
