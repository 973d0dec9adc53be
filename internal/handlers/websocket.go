package handlers

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/find-the-imposter/internal/models"
	"github.com/aaronzipp/find-the-imposter/internal/sse"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = time.Minute
	wsPingPeriod = (wsPongWait * 9) / 10
)

// wsEnvelope frames one room event on the socket
type wsEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// NewUpgrader accepts same-origin requests and the listed origins. An empty
// list accepts any origin.
func NewUpgrader(origins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return len(origins) == 0 || origin == "" || slices.Contains(origins, origin)
		},
	}
}

// HandleWebSocket streams the same events as HandleSSE over a socket. The
// socket is push-only: inbound frames other than control frames are ignored.
func (ctx *Context) HandleWebSocket(c *gin.Context) {
	id, ok := requirePlayer(c, c.Query("playerId"))
	if !ok {
		return
	}
	sub, err := ctx.Manager.Subscribe(c.Param("code"), id)
	if err != nil {
		writeError(c, err)
		return
	}
	defer sub.Close()

	conn, err := ctx.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Reader: keeps pong deadlines fresh and notices the peer going away
	gone := make(chan struct{})
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := writeEvent(conn, models.SSEMessage{Event: sse.EventRoomUpdate, Data: sub.Initial}); err != nil {
		return
	}

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-gone:
			return
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg := <-sub.Events:
			if err := writeEvent(conn, msg); err != nil {
				return
			}
			if sse.Terminal(msg.Event) {
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, msg.Event))
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, msg models.SSEMessage) error {
	data := json.RawMessage(msg.Data)
	if !json.Valid(data) {
		quoted, _ := json.Marshal(msg.Data)
		data = quoted
	}
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(wsEnvelope{Event: msg.Event, Data: data})
}
