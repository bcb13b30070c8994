package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	ws "github.com/isdelr/event-service/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "any origin", allowed: []string{"*"}, origin: "http://evil.local", want: true},
		{name: "listed origin", allowed: []string{"http://app.local"}, origin: "http://app.local", want: true},
		{name: "case differs", allowed: []string{"http://App.local"}, origin: "http://app.local", want: true},
		{name: "unlisted origin", allowed: []string{"http://app.local"}, origin: "http://evil.local", want: false},
		{name: "no origin header", allowed: []string{"http://app.local"}, origin: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws/events", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, originChecker(tt.allowed)(req))
		})
	}
}

func TestServe_RejectsUnlistedOrigin(t *testing.T) {
	hub := ws.NewHub()
	go hub.Run()
	defer hub.Stop()

	h := NewWebSocketHandler(hub, []string{"http://app.local"})
	srv := httptest.NewServer(http.HandlerFunc(h.Serve))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	header := http.Header{}
	header.Set("Origin", "http://evil.local")
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "http://app.local")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}
