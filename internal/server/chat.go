package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatMessage is the incoming WebSocket message format.
type chatMessage struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Query     string `json:"query"`
}

// chatReply is the outgoing WebSocket message format.
type chatReply struct {
	SessionID     string   `json:"session_id"`
	Answer        string   `json:"answer"`
	NextQuestions []string `json:"next_questions"`
	Error         string   `json:"error,omitempty"`
}

// handleWebSocket drives the same turn orchestrator as /api/query over
// a persistent connection, one turn per message.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var req chatMessage
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendChatReply(conn, chatReply{Error: "invalid message format"})
			continue
		}

		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		result := s.engine.HandleQuery(r.Context(), sessionID, req.Query)
		s.sendChatReply(conn, chatReply{
			SessionID:     sessionID,
			Answer:        result.Answer,
			NextQuestions: result.NextQuestions,
		})
	}
}

func (s *Server) sendChatReply(conn *websocket.Conn, reply chatReply) {
	if err := conn.WriteJSON(reply); err != nil {
		s.logger.Warn("websocket write failed", zap.Error(err))
	}
}
