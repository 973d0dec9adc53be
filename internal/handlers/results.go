package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type voteRequest struct {
	PlayerID string `json:"playerId"`
	TargetID string `json:"targetId"`
}

// HandleSubmitVote casts the caller's ballot
func (ctx *Context) HandleSubmitVote(c *gin.Context) {
	var req voteRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	vote, err := ctx.Manager.SubmitVote(c.Request.Context(), c.Param("code"), id, req.TargetID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vote": vote})
}

// HandleVotes returns the ballots of the current voting phase
func (ctx *Context) HandleVotes(c *gin.Context) {
	votes, err := ctx.Manager.GetVotes(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"votes": votes})
}

type guessRequest struct {
	PlayerID string `json:"playerId"`
	Guess    string `json:"guess"`
}

// HandleImposterGuess takes the voted-out imposter's guess at the word
func (ctx *Context) HandleImposterGuess(c *gin.Context) {
	var req guessRequest
	if !bind(c, &req) {
		return
	}
	id, ok := requirePlayer(c, req.PlayerID)
	if !ok {
		return
	}
	correct, err := ctx.Manager.SubmitImposterGuess(c.Request.Context(), c.Param("code"), id, req.Guess)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"correct": correct})
}
