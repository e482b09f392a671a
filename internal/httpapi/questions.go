package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/areweokay/server/internal/questionbank"
)

type randomQuestionsResponse struct {
	Success   bool                    `json:"success"`
	Questions []questionbank.Question `json:"questions"`
}

func (s *Server) handleRandomQuestions(w http.ResponseWriter, r *http.Request) {
	count := s.cfg.QuestionSampleSize
	if raw := strings.TrimSpace(r.URL.Query().Get("count")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_request", "count must be a positive integer")
			return
		}
		count = n
	}

	respondJSON(w, http.StatusOK, randomQuestionsResponse{
		Success:   true,
		Questions: questionbank.Sample(count),
	})
}
