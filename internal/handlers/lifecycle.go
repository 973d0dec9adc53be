package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// hostCommand runs a host-only transition that takes no arguments
func (ctx *Context) hostCommand(c *gin.Context, run func(c *gin.Context, code, hostID string) error) {
	var req playerRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	if err := run(c, c.Param("code"), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleStartGame is the host's explicit start
func (ctx *Context) HandleStartGame(c *gin.Context) {
	ctx.hostCommand(c, func(c *gin.Context, code, hostID string) error {
		return ctx.Manager.StartGame(c.Request.Context(), code, hostID)
	})
}

// HandleReturnToLobby resets a finished online game
func (ctx *Context) HandleReturnToLobby(c *gin.Context) {
	ctx.hostCommand(c, func(c *gin.Context, code, hostID string) error {
		return ctx.Manager.ReturnToLobby(c.Request.Context(), code, hostID)
	})
}

// HandleRestart sends an in-person game back to waiting
func (ctx *Context) HandleRestart(c *gin.Context) {
	ctx.hostCommand(c, func(c *gin.Context, code, hostID string) error {
		return ctx.Manager.Restart(c.Request.Context(), code, hostID)
	})
}
