package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// qrSize is a phone-friendly edge length in pixels
const qrSize = 320

// HandleQR renders the room's join link as a PNG QR code
func (ctx *Context) HandleQR(c *gin.Context) {
	room, err := ctx.Manager.GetGame(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	png, err := qrcode.Encode(ctx.joinURL(room.Code), qrcode.Medium, qrSize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}
