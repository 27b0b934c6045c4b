// Package apphttp wires the HTTP surface: middleware chain, page routes and
// the JSON API.
package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/buildcookie"
	"ihlutir.is/app/internal/http/flash"
	"ihlutir.is/app/internal/http/handlers"
	"ihlutir.is/app/internal/http/middleware"
)

type Deps struct {
	Log         *slog.Logger
	Builds      handlers.BuildService
	Catalog     handlers.PartsCatalog
	Flash       *flash.Codec
	BuildCookie *buildcookie.Codec
	CORSOrigins []string
	ThumbWidth  int
	Checks      map[string]handlers.Check
	// Static maps URL prefixes to directories served as files, e.g. mirrored
	// component images kept on local disk.
	Static map[string]string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.ErrorHandler(d.Log),
		middleware.Recovery(d.Log),
		middleware.FlashMiddleware(d.Flash),
		middleware.BuildID(d.BuildCookie),
	)

	for prefix, dir := range d.Static {
		r.Static(prefix, dir)
	}

	health := handlers.NewHealthHandler(d.Checks, d.Log)
	r.GET("/healthz", health.Healthz)

	build := handlers.NewBuildHandler(d.Builds, d.Flash, d.BuildCookie, d.ThumbWidth)
	parts := handlers.NewPartsHandler(d.Catalog, d.ThumbWidth)

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/build") })
	r.GET("/build", build.Show)
	r.GET("/build/:id", build.Show)
	r.GET("/build/:id/compact", build.Show)
	r.POST("/build/clear", build.Clear)
	r.POST("/build/slots/:slot", build.SetSlot)
	r.POST("/build/slots/:slot/remove", build.RemoveSlot)
	r.POST("/build/slots/:slot/offering", build.SelectOffering)
	r.GET("/parts/:slot", parts.List)

	api := r.Group("/api", middleware.CORS(d.CORSOrigins))
	{
		h := handlers.NewAPIHandler(d.Builds)
		api.GET("/builds/:id", h.Build)
		api.OPTIONS("/builds/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, notFound())
	})

	return r
}
