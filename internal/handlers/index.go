package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/aaronzipp/find-the-imposter/internal/render"
	"github.com/aaronzipp/find-the-imposter/internal/session"
)

// Context holds shared handler dependencies
type Context struct {
	Manager   *session.Manager
	PublicURL string // base for join links, without trailing slash
	Upgrader  websocket.Upgrader
}

// NewContext builds the handler dependencies
func NewContext(manager *session.Manager, publicURL string, origins []string) *Context {
	return &Context{
		Manager:   manager,
		PublicURL: strings.TrimRight(publicURL, "/"),
		Upgrader:  NewUpgrader(origins),
	}
}

// HandleHealth reports liveness
func (ctx *Context) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type publicGame struct {
	render.GameView
	HostName    string `json:"hostName"`
	PlayerCount int    `json:"playerCount"`
}

// HandlePublicGames lists open public lobbies, newest first
func (ctx *Context) HandlePublicGames(c *gin.Context) {
	games := ctx.Manager.GetPublicGames()
	out := make([]publicGame, 0, len(games))
	for _, g := range games {
		out = append(out, publicGame{
			GameView:    render.Game(g.Room),
			HostName:    g.HostName,
			PlayerCount: g.PlayerCount,
		})
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

// HandleGetGame returns the public room record
func (ctx *Context) HandleGetGame(c *gin.Context) {
	room, err := ctx.Manager.GetGame(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": render.Game(room)})
}

func (ctx *Context) joinURL(code string) string {
	return ctx.PublicURL + "/join?code=" + code
}
