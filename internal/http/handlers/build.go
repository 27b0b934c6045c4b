package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/buildcookie"
	"ihlutir.is/app/internal/http/flash"
	"ihlutir.is/app/internal/http/middleware"
	"ihlutir.is/app/internal/http/render"
	"ihlutir.is/app/internal/http/validation"
	"ihlutir.is/app/internal/modules/builds"
	"ihlutir.is/app/internal/shared/apperr"
	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/pages"
)

// BuildService is the part of builds.Service the build pages use.
type BuildService interface {
	Resolve(ctx context.Context, st *builds.State, routeID, storedID string) builds.Resolution
	Load(ctx context.Context, id string) (builds.Build, error)
	SetSlot(ctx context.Context, st *builds.State, slot, componentID, offeringID string) (builds.Build, error)
	RemoveSlot(ctx context.Context, st *builds.State, slot string) (builds.Build, error)
	SelectOffering(ctx context.Context, st *builds.State, slot, offeringID string) (builds.Build, error)
	Clear(ctx context.Context, st *builds.State) (builds.Build, error)
}

type BuildHandler struct {
	svc        BuildService
	flash      *flash.Codec
	cookie     *buildcookie.Codec
	thumbWidth int
}

func NewBuildHandler(svc BuildService, flashCodec *flash.Codec, ck *buildcookie.Codec, thumbWidth int) *BuildHandler {
	return &BuildHandler{svc: svc, flash: flashCodec, cookie: ck, thumbWidth: thumbWidth}
}

// buildForm is carried by every build mutation.
type buildForm struct {
	BuildID string `form:"build_id" binding:"omitempty,max=32,alphanum"`
	Compact string `form:"compact" binding:"omitempty,oneof=0 1"`
}

type setSlotForm struct {
	buildForm
	ComponentID string `form:"component_id" binding:"required,max=96"`
	OfferingID  string `form:"offering_id" binding:"required,max=36"`
}

type selectOfferingForm struct {
	buildForm
	OfferingID string `form:"offering_id" binding:"required,max=36"`
}

func BuildURL(id string, compact bool) string {
	if id == "" {
		return "/build"
	}
	u := "/build/" + id
	if compact {
		u += "/compact"
	}
	return u
}

// Show handles GET /build, /build/:id and /build/:id/compact. When the build
// was found under another id than the route's, the visitor is sent to the
// build's own URL.
func (h *BuildHandler) Show(c *gin.Context) {
	routeID := strings.TrimSpace(c.Param("id"))
	compact := strings.HasSuffix(c.FullPath(), "/compact")

	st := builds.NewState()
	res := h.svc.Resolve(c.Request.Context(), st, routeID, middleware.GetBuildID(c))
	b := res.Build

	if res.Redirect {
		c.Redirect(http.StatusFound, BuildURL(b.ID, compact))
		return
	}
	if b.ID != "" && !compact {
		h.cookie.Set(c, b.ID)
	}

	page := BuildPageFrom(b, compact, h.thumbWidth)
	if b.ID != "" {
		page.ShareURL = absoluteURL(c, BuildURL(b.ID, false))
	}
	render.Component(c, http.StatusOK, pages.Build(page, middleware.GetFlash(c)))
}

// SetSlot handles POST /build/slots/:slot.
func (h *BuildHandler) SetSlot(c *gin.Context) {
	var f setSlotForm
	if !h.bind(c, &f) {
		return
	}
	slot := c.Param("slot")
	h.mutate(c, f.buildForm, "Íhlut bætt við.", func(ctx context.Context, st *builds.State) (builds.Build, error) {
		return h.svc.SetSlot(ctx, st, slot, f.ComponentID, f.OfferingID)
	})
}

// RemoveSlot handles POST /build/slots/:slot/remove.
func (h *BuildHandler) RemoveSlot(c *gin.Context) {
	var f buildForm
	if !h.bind(c, &f) {
		return
	}
	slot := c.Param("slot")
	h.mutate(c, f, "Íhlutur fjarlægður.", func(ctx context.Context, st *builds.State) (builds.Build, error) {
		return h.svc.RemoveSlot(ctx, st, slot)
	})
}

// SelectOffering handles POST /build/slots/:slot/offering.
func (h *BuildHandler) SelectOffering(c *gin.Context) {
	var f selectOfferingForm
	if !h.bind(c, &f) {
		return
	}
	slot := c.Param("slot")
	h.mutate(c, f.buildForm, "Söluaðila breytt.", func(ctx context.Context, st *builds.State) (builds.Build, error) {
		return h.svc.SelectOffering(ctx, st, slot, f.OfferingID)
	})
}

// Clear handles POST /build/clear.
func (h *BuildHandler) Clear(c *gin.Context) {
	var f buildForm
	if !h.bind(c, &f) {
		return
	}
	h.mutate(c, f, "Ný samsetning hafin.", func(ctx context.Context, st *builds.State) (builds.Build, error) {
		return h.svc.Clear(ctx, st)
	})
}

func (h *BuildHandler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		fields := validation.FromBindError(err, dst)
		middleware.Fail(c, apperr.InvalidErr("Ógild beiðni.", fields).WithErr(err))
		return false
	}
	return true
}

// mutate loads the visitor's build, applies fn and stores the result, then
// redirects back to the build page.
func (h *BuildHandler) mutate(c *gin.Context, f buildForm, okMsg string, fn func(context.Context, *builds.State) (builds.Build, error)) {
	ctx := c.Request.Context()
	compact := f.Compact == "1"

	st := builds.NewState()
	current := h.svc.Resolve(ctx, st, f.BuildID, middleware.GetBuildID(c)).Build

	b, err := fn(ctx, st)
	if err != nil {
		if msg, ok := userError(err); ok {
			render.RedirectWithFlash(c, h.flash, BuildURL(current.ID, compact), view.FlashError, msg)
			return
		}
		if errors.Is(err, builds.ErrUnknownSlot) {
			middleware.Fail(c, apperr.NotFoundErr("Hólf fannst ekki.").WithErr(err))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.cookie.Set(c, b.ID)
	render.RedirectWithFlash(c, h.flash, BuildURL(b.ID, compact), view.FlashSuccess, okMsg)
}

// userError maps the build errors a visitor can cause by submitting a stale
// page to a message for the flash.
func userError(err error) (string, bool) {
	switch {
	case errors.Is(err, builds.ErrUnknownComponent):
		return "Íhlutur fannst ekki.", true
	case errors.Is(err, builds.ErrUnknownOffering):
		return "Tilboð fannst ekki.", true
	case errors.Is(err, builds.ErrOfferingUnavailable):
		return "Þetta tilboð er ekki lengur í boði.", true
	case errors.Is(err, builds.ErrSlotMismatch):
		return "Íhluturinn passar ekki í þetta hólf.", true
	case errors.Is(err, builds.ErrSlotEmpty):
		return "Ekkert er valið í þessu hólfi.", true
	}
	return "", false
}

func absoluteURL(c *gin.Context, path string) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + path
}
