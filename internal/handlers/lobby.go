package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
	"github.com/aaronzipp/find-the-imposter/internal/models"
	"github.com/aaronzipp/find-the-imposter/internal/render"
)

type createRequest struct {
	PlayerID   string            `json:"playerId"`
	Name       string            `json:"name"`
	Mode       models.GameMode   `json:"mode"`
	Visibility models.Visibility `json:"visibility"`
}

// HandleCreateGame opens a room. Callers without a token get a fresh one.
func (ctx *Context) HandleCreateGame(c *gin.Context) {
	var req createRequest
	if !bind(c, &req) {
		return
	}
	if req.Mode == "" {
		req.Mode = models.ModeInPerson
	}
	if !req.Mode.Valid() {
		writeError(c, apperrors.WithMetadata(apperrors.CodeValidation, "invalid mode", map[string]string{"mode": string(req.Mode)}))
		return
	}
	id := playerID(c, req.PlayerID)
	if id == "" {
		id = uuid.NewString()
	}

	var (
		room models.Room
		err  error
	)
	if req.Mode == models.ModeOnline {
		room, err = ctx.Manager.CreateOnlineGame(c.Request.Context(), id, req.Name, req.Visibility)
	} else {
		room, err = ctx.Manager.CreateGame(c.Request.Context(), id, req.Name)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	setPlayerCookie(c, id)
	c.JSON(http.StatusCreated, gin.H{
		"game":     render.Game(room),
		"playerId": id,
		"joinUrl":  ctx.joinURL(room.Code),
	})
}

type joinRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

// HandleJoin seats the caller in the room
func (ctx *Context) HandleJoin(c *gin.Context) {
	var req joinRequest
	if !bind(c, &req) {
		return
	}
	id := playerID(c, req.PlayerID)
	if id == "" {
		id = uuid.NewString()
	}

	res, err := ctx.Manager.Join(c.Request.Context(), c.Param("code"), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	setPlayerCookie(c, id)
	c.JSON(http.StatusOK, gin.H{"playerId": id, "joined": res.Joined, "started": res.Started})
}

// HandleLeave removes the caller. Leaving twice is not an error.
func (ctx *Context) HandleLeave(c *gin.Context) {
	var req playerRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	res, err := ctx.Manager.Leave(c.Request.Context(), c.Param("code"), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": res.Removed, "hostId": res.NewHost, "closed": res.Empty})
}

type kickRequest struct {
	PlayerID string `json:"playerId"`
	TargetID string `json:"targetId"`
}

// HandleKick removes another player on the host's behalf
func (ctx *Context) HandleKick(c *gin.Context) {
	var req kickRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	if err := ctx.Manager.Kick(c.Request.Context(), c.Param("code"), id, req.TargetID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type readyRequest struct {
	PlayerID string `json:"playerId"`
	Ready    *bool  `json:"ready"`
}

// HandleReady sets the caller's ready flag. Omitting "ready" means true.
func (ctx *Context) HandleReady(c *gin.Context) {
	var req readyRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	ready := req.Ready == nil || *req.Ready
	started, err := ctx.Manager.SetReady(c.Request.Context(), c.Param("code"), id, ready)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": ready, "started": started})
}

type categoryRequest struct {
	PlayerID string          `json:"playerId"`
	Category models.Category `json:"category"`
}

// HandleCategory sets the category preference for the next start
func (ctx *Context) HandleCategory(c *gin.Context) {
	var req categoryRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	if err := ctx.Manager.SetCategoryPreference(c.Request.Context(), c.Param("code"), id, req.Category); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type imposterCountRequest struct {
	PlayerID string `json:"playerId"`
	Count    int    `json:"count"`
}

// HandleImposterCount sets the preferred number of imposters
func (ctx *Context) HandleImposterCount(c *gin.Context) {
	var req imposterCountRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	if err := ctx.Manager.SetImposterCount(c.Request.Context(), c.Param("code"), id, req.Count); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandlePlayers returns the roster in join order
func (ctx *Context) HandlePlayers(c *gin.Context) {
	players, err := ctx.Manager.GetPlayers(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// HandleImposterOptions returns the valid imposter count range
func (ctx *Context) HandleImposterOptions(c *gin.Context) {
	opts, err := ctx.Manager.GetImposterCountOptions(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

type messageRequest struct {
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

// HandleSendMessage posts a lobby chat line
func (ctx *Context) HandleSendMessage(c *gin.Context) {
	var req messageRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	msg, err := ctx.Manager.SendMessage(c.Request.Context(), c.Param("code"), id, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// HandleMessages returns the lobby chat history
func (ctx *Context) HandleMessages(c *gin.Context) {
	msgs, err := ctx.Manager.GetMessages(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
