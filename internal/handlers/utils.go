package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/aaronzipp/find-the-imposter/internal/errors"
)

const (
	// PlayerHeader carries the caller's player token
	PlayerHeader = "X-Player-ID"
	playerCookie = "player_id"
	cookieMaxAge = 30 * 24 * 60 * 60
)

// errorBody is the JSON shape of every failed response
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code     apperrors.Code    `json:"code"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// writeError aborts with the status and body for err
func writeError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	body := errorBody{Error: errorDetail{Code: code, Message: apperrors.Public(err)}}
	var e *apperrors.Error
	if errors.As(err, &e) && code != apperrors.CodeInternal {
		body.Error.Metadata = e.Metadata
	}
	if code == apperrors.CodeInternal {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(code.HTTPStatus(), body)
}

// playerID resolves the caller: header, then cookie, then the fallback
// taken from the body or query
func playerID(c *gin.Context, fallback string) string {
	if id := strings.TrimSpace(c.GetHeader(PlayerHeader)); id != "" {
		return id
	}
	if cookie, err := c.Cookie(playerCookie); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}
	return strings.TrimSpace(fallback)
}

// requirePlayer is playerID that fails the request when no token is given
func requirePlayer(c *gin.Context, fallback string) (string, bool) {
	id := playerID(c, fallback)
	if id == "" {
		writeError(c, apperrors.New(apperrors.CodeValidation, "player id is required"))
		return "", false
	}
	return id, true
}

// bind decodes an optional JSON body into req. An empty body is allowed.
func bind(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, apperrors.Wrap(apperrors.CodeValidation, "invalid request body", err))
		return false
	}
	return true
}

// setPlayerCookie remembers the player token for cookie-based clients
func setPlayerCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(playerCookie, id, cookieMaxAge, "/", "", false, true)
}

// playerRequest is the body shared by simple commands
type playerRequest struct {
	PlayerID string `json:"playerId"`
}
