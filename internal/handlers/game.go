package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type wordRequest struct {
	PlayerID string `json:"playerId"`
	Word     string `json:"word"`
}

// HandleSubmitWord records the caller's clue for the current turn
func (ctx *Context) HandleSubmitWord(c *gin.Context) {
	var req wordRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	entry, err := ctx.Manager.SubmitWord(c.Request.Context(), c.Param("code"), id, req.Word)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"clue": entry})
}

// HandlePlayerWord returns the caller's role card; "word" is null for
// imposters and the card is null outside play
func (ctx *Context) HandlePlayerWord(c *gin.Context) {
	id, ok := requirePlayer(c, c.Query("playerId"))
	if !ok {
		return
	}
	word, err := ctx.Manager.GetPlayerWord(c.Param("code"), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word})
}

// HandleClues returns the clue ledger of the current game
func (ctx *Context) HandleClues(c *gin.Context) {
	clues, err := ctx.Manager.GetChatMessages(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clues": clues})
}
