package websocket

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	required bool
}

func (p stubParser) Required() bool { return p.required }

func (p stubParser) ParseToken(tokenString string) (string, error) {
	if tokenString == "good" {
		return "JLOPEZ", nil
	}
	return "", errors.New("invalid token")
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func startHub(t *testing.T, parser TokenParser) (*Hub, string) {
	t.Helper()
	hub := NewHub(quietLogger())
	stop := make(chan struct{})
	go hub.Run(stop)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		ServeWs(hub, parser, c)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		close(stop)
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestHub_BroadcastsPublishedEvents(t *testing.T) {
	hub, url := startHub(t, stubParser{})

	conn, _, err := websocket.DefaultDialer.Dial(url+"?token=good", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.True(t, hub.Publish(EventPermissionsApplied, map[string]string{"adm_almacen": "W1"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
		At    time.Time         `json:"at"`
	}
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, EventPermissionsApplied, got.Event)
	assert.Equal(t, "W1", got.Data["adm_almacen"])
	assert.False(t, got.At.IsZero())
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	hub, url := startHub(t, stubParser{})

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServeWs_RejectsTokens(t *testing.T) {
	_, url := startHub(t, stubParser{required: true})

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(url+"?token=bad", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub := NewHub(quietLogger())

	// nothing drains the queue, so it fills and later events are dropped
	for i := 0; i < cap(hub.broadcast); i++ {
		require.True(t, hub.Publish(EventTransferPermissionsApplied, i))
	}
	assert.False(t, hub.Publish(EventTransferPermissionsApplied, "overflow"))
}
