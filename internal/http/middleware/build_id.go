package middleware

import (
	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/buildcookie"
)

const CtxKeyBuildID = "build_id"

// BuildID exposes the visitor's current build id, if the cookie carries a
// valid one.
func BuildID(codec *buildcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := codec.BuildID(c); ok {
			c.Set(CtxKeyBuildID, id)
		}
		c.Next()
	}
}

func GetBuildID(c *gin.Context) string {
	return c.GetString(CtxKeyBuildID)
}
