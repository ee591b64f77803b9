package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"go.uber.org/zap"
)

type queryRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}

type queryResponse struct {
	Answer        string   `json:"answer"`
	NextQuestions []string `json:"next_questions"`
	SessionID     string   `json:"session_id"`
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Clients that send no session id get one assigned so follow-up
	// turns can carry context.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	result := s.engine.HandleQuery(r.Context(), sessionID, req.Query)

	writeJSON(w, http.StatusOK, queryResponse{
		Answer:        result.Answer,
		NextQuestions: result.NextQuestions,
		SessionID:     sessionID,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	s.engine.Reset(req.SessionID)
	s.logger.Debug("session reset", zap.String("session", req.SessionID))

	writeJSON(w, http.StatusOK, map[string]string{"message": "Context reset."})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
