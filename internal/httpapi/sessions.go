package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/areweokay/server/internal/session"
)

type createSessionResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
}

type getSessionResponse struct {
	Success bool            `json:"success"`
	Session session.Session `json:"session"`
}

type submitAnswersRequest struct {
	Answers      []session.Answer     `json:"answers"`
	AnswererType session.AnswererType `json:"answererType"`
}

type submitAnswersResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type getResultsResponse struct {
	Success bool               `json:"success"`
	Results session.Projection `json:"results"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req session.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	sess, err := s.sessions.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, session.ErrInvalidType) {
			respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		log.Printf("session creation error: %v", err)
		s.metrics.StorageErrors.WithLabelValues("create").Inc()
		respondError(w, http.StatusInternalServerError, "storage_error", "Failed to create session")
		return
	}
	s.metrics.SessionsCreated.WithLabelValues(string(sess.Type)).Inc()

	respondJSON(w, http.StatusCreated, createSessionResponse{
		Success:   true,
		SessionID: sess.SessionID,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "missing session id")
		return
	}

	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			s.metrics.SessionReads.WithLabelValues("not_found").Inc()
			respondError(w, http.StatusNotFound, "session_not_found", "Session not found")
			return
		}
		log.Printf("session retrieval error: %v", err)
		s.metrics.SessionReads.WithLabelValues("error").Inc()
		s.metrics.StorageErrors.WithLabelValues("get").Inc()
		respondError(w, http.StatusInternalServerError, "storage_error", "Failed to retrieve session")
		return
	}
	s.metrics.SessionReads.WithLabelValues("found").Inc()

	respondJSON(w, http.StatusOK, getSessionResponse{Success: true, Session: sess})
}

func (s *Server) handleSubmitAnswers(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "missing session id")
		return
	}

	var req submitAnswersRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := s.sessions.SubmitAnswers(r.Context(), id, req.Answers, req.AnswererType); err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidAnswererType):
			respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, session.ErrNotFound):
			respondError(w, http.StatusNotFound, "session_not_found", "Session not found")
		default:
			log.Printf("answer submission error: %v", err)
			s.metrics.StorageErrors.WithLabelValues("answer").Inc()
			respondError(w, http.StatusInternalServerError, "storage_error", "Failed to submit answers")
		}
		return
	}
	s.metrics.AnswerSubmissions.WithLabelValues(string(req.AnswererType)).Inc()

	respondJSON(w, http.StatusOK, submitAnswersResponse{
		Success: true,
		Message: "Answers submitted successfully",
	})
}

func (s *Server) handleGetResults(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "missing session id")
		return
	}

	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			respondError(w, http.StatusNotFound, "session_not_found", "Session not found")
			return
		}
		log.Printf("results retrieval error: %v", err)
		s.metrics.StorageErrors.WithLabelValues("get").Inc()
		respondError(w, http.StatusInternalServerError, "storage_error", "Failed to retrieve session")
		return
	}

	respondJSON(w, http.StatusOK, getResultsResponse{
		Success: true,
		Results: session.Project(sess),
	})
}
