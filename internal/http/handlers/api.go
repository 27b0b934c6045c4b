package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/middleware"
	"ihlutir.is/app/internal/modules/builds"
	"ihlutir.is/app/internal/modules/catalog"
	"ihlutir.is/app/internal/shared/apperr"
	"ihlutir.is/app/pkg/view"
)

type APIHandler struct {
	svc BuildService
}

func NewAPIHandler(svc BuildService) *APIHandler {
	return &APIHandler{svc: svc}
}

type buildSummary struct {
	ID             string        `json:"id"`
	Total          int64         `json:"total"`
	TotalFormatted string        `json:"totalFormatted"`
	Slots          []slotSummary `json:"slots"`
}

type slotSummary struct {
	Slot        string           `json:"slot"`
	Label       string           `json:"label"`
	ComponentID string           `json:"componentId"`
	Name        string           `json:"name"`
	Image       string           `json:"image,omitempty"`
	Offering    catalog.Offering `json:"offering"`
	Cheapest    bool             `json:"cheapest"`
}

// Build handles GET /api/builds/:id: the build's selected components as
// JSON, for embedding a build elsewhere.
func (h *APIHandler) Build(c *gin.Context) {
	b, err := h.svc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, builds.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Samsetning fannst ekki.").WithErr(err))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := buildSummary{
		ID:             b.ID,
		Total:          b.TotalPrice(),
		TotalFormatted: view.FormatCurrency(b.TotalPrice()),
		Slots:          []slotSummary{},
	}
	for _, sl := range catalog.Slots() {
		comp := b.Component(sl.Key)
		if comp == nil {
			continue
		}
		out.Slots = append(out.Slots, slotSummary{
			Slot:        sl.Key,
			Label:       sl.Label,
			ComponentID: comp.ID,
			Name:        comp.Name,
			Image:       comp.Image,
			Offering:    comp.SelectedOffering,
			Cheapest:    comp.IsCheapest(),
		})
	}
	c.JSON(http.StatusOK, out)
}
