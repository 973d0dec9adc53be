package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds the HTTP-layer settings
type RouterConfig struct {
	CORSOrigins []string
	Limiter     *RateLimiter // nil disables rate limiting
}

// NewRouter mounts every route on a new gin engine
func NewRouter(ctx *Context, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowCredentials: true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", PlayerHeader},
		}))
	}

	r.GET("/healthz", ctx.HandleHealth)

	api := r.Group("/api/games")
	api.GET("/public", ctx.HandlePublicGames)
	api.GET("/:code", ctx.HandleGetGame)
	api.GET("/:code/players", ctx.HandlePlayers)
	api.GET("/:code/word", ctx.HandlePlayerWord)
	api.GET("/:code/imposter-options", ctx.HandleImposterOptions)
	api.GET("/:code/clues", ctx.HandleClues)
	api.GET("/:code/votes", ctx.HandleVotes)
	api.GET("/:code/messages", ctx.HandleMessages)
	api.GET("/:code/events", ctx.HandleSSE)
	api.GET("/:code/ws", ctx.HandleWebSocket)
	api.GET("/:code/qr.png", ctx.HandleQR)

	commands := api.Group("")
	if cfg.Limiter != nil {
		commands.Use(cfg.Limiter.Middleware())
	}
	commands.POST("", ctx.HandleCreateGame)
	commands.POST("/:code/join", ctx.HandleJoin)
	commands.POST("/:code/leave", ctx.HandleLeave)
	commands.POST("/:code/kick", ctx.HandleKick)
	commands.POST("/:code/ready", ctx.HandleReady)
	commands.POST("/:code/start", ctx.HandleStartGame)
	commands.POST("/:code/words", ctx.HandleSubmitWord)
	commands.POST("/:code/votes", ctx.HandleSubmitVote)
	commands.POST("/:code/guess", ctx.HandleImposterGuess)
	commands.POST("/:code/return-to-lobby", ctx.HandleReturnToLobby)
	commands.POST("/:code/restart", ctx.HandleRestart)
	commands.POST("/:code/category", ctx.HandleCategory)
	commands.POST("/:code/imposter-count", ctx.HandleImposterCount)
	commands.POST("/:code/messages", ctx.HandleSendMessage)
	return r
}
