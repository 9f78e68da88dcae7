package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TejaswiBhavani/EVStockMaster/pkg/logger"
)

func newTestStreamHandler(t *testing.T) *StreamHandler {
	t.Helper()
	return NewStreamHandler(logger.New(testConfig(t)))
}

func TestStreamSSE_FirstEvent(t *testing.T) {
	h := newTestStreamHandler(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest("GET", "/api/alerts/stream", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	h.StreamSSE(w, req)

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `data: {"id":"tick-1","type":"heartbeat"`)
	assert.True(t, strings.HasSuffix(body, "\n\n"))
}

func TestStreamWS_Heartbeat(t *testing.T) {
	h := newTestStreamHandler(t)

	server := httptest.NewServer(http.HandlerFunc(h.StreamWS))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	var msg heartbeat
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "tick-1", msg.ID)
	assert.Equal(t, "heartbeat", msg.Type)
	assert.NotZero(t, msg.TS)
}
