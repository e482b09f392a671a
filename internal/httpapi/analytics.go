package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/areweokay/server/internal/analytics"
)

type trackVisitRequest struct {
	Gender analytics.Gender `json:"gender"`
}

type analyticsResponse struct {
	TotalVisits int64 `json:"totalVisits"`
	MaleCount   int64 `json:"maleCount"`
	FemaleCount int64 `json:"femaleCount"`
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	totals, err := s.analytics.Totals(r.Context())
	if err != nil {
		log.Printf("analytics fetch error: %v", err)
		s.metrics.StorageErrors.WithLabelValues("analytics").Inc()
		respondError(w, http.StatusInternalServerError, "storage_error", "Failed to fetch analytics")
		return
	}

	respondJSON(w, http.StatusOK, analyticsResponse{
		TotalVisits: totals.TotalVisits,
		MaleCount:   totals.MaleCount,
		FemaleCount: totals.FemaleCount,
	})
}

func (s *Server) handleTrackVisit(w http.ResponseWriter, r *http.Request) {
	var req trackVisitRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := s.analytics.Track(r.Context(), req.Gender); err != nil {
		log.Printf("analytics tracking error: %v", err)
		s.metrics.StorageErrors.WithLabelValues("analytics").Inc()
		respondError(w, http.StatusInternalServerError, "storage_error", "Failed to track analytics")
		return
	}
	s.metrics.VisitsTracked.Inc()

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
