package render

import (
	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/middleware"
	"ihlutir.is/app/templates/pages"
)

func ErrorPage(c *gin.Context, status int, msg string) {
	Component(c, status, pages.Error(status, msg, middleware.GetRequestID(c), middleware.GetFlash(c)))
}
