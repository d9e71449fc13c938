package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"skyspotter-service/internal/app"
	"skyspotter-service/internal/domain"
)

type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type answerPayload struct {
	Choice string `json:"choice"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the connection and drives one player's quiz loop. A
// single goroutine reads and writes, so no write coordination is needed:
// every outbound frame is a direct response to an inbound one.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("playerId")
	if playerID == "" {
		http.Error(w, "missing playerId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.writeError(conn, "invalid start payload")
				continue
			}
			started, err := h.service.Start(ctx, playerID, domain.Category(payload.Category), domain.Difficulty(payload.Difficulty), payload.Count)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[app.StartedQuiz]{Type: "started", Payload: started})

		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.writeError(conn, "invalid answer payload")
				continue
			}
			feedback, err := h.service.Answer(ctx, playerID, payload.Choice)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[domain.AnswerFeedback]{Type: "answerResult", Payload: feedback})

		case "advance":
			outcome, err := h.service.Advance(ctx, playerID)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			if outcome.Completed {
				_ = conn.WriteJSON(outboundMessage[*app.CompletionSummary]{Type: "completed", Payload: outcome.Summary})
			} else {
				_ = conn.WriteJSON(outboundMessage[*app.QuestionView]{Type: "question", Payload: outcome.Next})
			}

		case "stats":
			stats, err := h.service.Stats(ctx, playerID)
			if err != nil {
				h.writeError(conn, err.Error())
				continue
			}
			_ = conn.WriteJSON(outboundMessage[domain.UserStats]{Type: "stats", Payload: stats})

		case "abandon":
			h.service.Abandon(ctx, playerID)
			_ = conn.WriteJSON(outboundMessage[struct{}]{Type: "abandoned"})

		default:
			h.writeError(conn, "unsupported message type")
		}
	}
}

func (h *WSHandler) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: message}}); err != nil {
		log.Printf("ws write error: %v", err)
	}
}
