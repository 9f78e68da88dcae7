package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

// heartbeatInterval is the tick rate of the alert streams.
const heartbeatInterval = 5 * time.Second

// StreamHandler serves the alert heartbeat over SSE and WebSocket.
type StreamHandler struct {
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewStreamHandler creates a new stream handler.
func NewStreamHandler(log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// StreamSSE streams heartbeat events until the client disconnects.
// GET /api/alerts/stream
func (h *StreamHandler) StreamSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	i := 0
	for {
		i++
		fmt.Fprintf(w, "data: {\"id\":\"tick-%d\",\"type\":\"heartbeat\",\"ts\":%d}\n\n", i, time.Now().Unix())
		flusher.Flush()

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

// heartbeat is the WebSocket flavor of the SSE tick.
type heartbeat struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	TS   int64  `json:"ts"`
}

// StreamWS streams heartbeat events over a WebSocket connection.
// GET /api/alerts/ws
func (h *StreamHandler) StreamWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	i := 0
	for {
		i++
		msg := heartbeat{
			ID:   fmt.Sprintf("tick-%d", i),
			Type: "heartbeat",
			TS:   time.Now().Unix(),
		}
		if err := conn.WriteJSON(msg); err != nil {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
