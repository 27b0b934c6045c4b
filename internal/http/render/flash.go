package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/flash"
	"ihlutir.is/app/internal/http/middleware"
	"ihlutir.is/app/pkg/view"
)

// RedirectWithFlash sets a one-shot message and answers with a 303 so the
// browser follows a POST with a GET.
func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusSeeOther, location)
}
