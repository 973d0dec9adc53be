package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/find-the-imposter/internal/sse"
)

// keepAliveInterval is how often an idle stream gets a comment line so
// proxies keep it open
const keepAliveInterval = 25 * time.Second

// HandleSSE streams the caller's room events. EventSource cannot set
// headers, so the player token may also come from the cookie or the
// playerId query parameter.
func (ctx *Context) HandleSSE(c *gin.Context) {
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

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	log.Debug().Str("room", c.Param("code")).Str("player", id).Msg("sse client connected")

	c.SSEvent(sse.EventRoomUpdate, sub.Initial)
	c.Writer.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	reqCtx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-reqCtx.Done():
			return false
		case <-keepAlive.C:
			_, err := io.WriteString(w, ": keep-alive\n\n")
			return err == nil
		case msg := <-sub.Events:
			c.SSEvent(msg.Event, msg.Data)
			return !sse.Terminal(msg.Event)
		}
	})
	log.Debug().Str("room", c.Param("code")).Str("player", id).Msg("sse client disconnected")
}
