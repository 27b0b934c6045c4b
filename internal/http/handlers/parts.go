package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/middleware"
	"ihlutir.is/app/internal/http/render"
	"ihlutir.is/app/internal/modules/catalog"
	"ihlutir.is/app/internal/shared/apperr"
	"ihlutir.is/app/internal/table"
	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/pages"
)

type PartsCatalog interface {
	ListSlot(ctx context.Context, slot string) (catalog.Slot, []catalog.Item, error)
}

type PartsHandler struct {
	catalog    PartsCatalog
	thumbWidth int
}

func NewPartsHandler(cat PartsCatalog, thumbWidth int) *PartsHandler {
	return &PartsHandler{catalog: cat, thumbWidth: thumbWidth}
}

// List handles GET /parts/:slot. Select columns filter through the query
// string, e.g. ?brand=AMD&brand=Intel&socket=AM5.
func (h *PartsHandler) List(c *gin.Context) {
	slot, items, err := h.catalog.ListSlot(c.Request.Context(), c.Param("slot"))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownSlot) {
			middleware.Fail(c, apperr.NotFoundErr("Hólf fannst ekki.").WithErr(err))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	buildID := strings.TrimSpace(c.Query("build_id"))
	if buildID == "" {
		buildID = middleware.GetBuildID(c)
	}
	page := PartsPageFrom(slot, items, table.FiltersFromQuery(c.Request.URL.Query(), slot.Headers), h.thumbWidth)
	page.BuildID = buildID
	page.Compact = c.Query("compact") == "1"

	render.Component(c, http.StatusOK, pages.Parts(page, middleware.GetFlash(c)))
}

// PartsPageFrom builds the listing of a slot. Parts nobody sells any more
// cannot be added and are left out.
func PartsPageFrom(slot catalog.Slot, items []catalog.Item, filters table.Filters, thumbWidth int) view.PartsPage {
	available := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if _, ok := it.Cheapest(); ok {
			available = append(available, it)
		}
	}

	t := table.Table[catalog.Item]{
		Headers:    slot.Headers,
		Items:      available,
		Attributes: slot.Attributes(),
		Filters:    filters,
	}

	p := view.PartsPage{
		Slot:          slot.Key,
		Label:         slot.Label,
		Cells:         t.HeaderCells(),
		Total:         len(available),
		FiltersActive: filters.Active(),
	}
	for _, hd := range slot.Headers {
		if hd.HideUnder > 0 {
			p.HideUnderWidth = append(p.HideUnderWidth, hd.HideUnder)
		}
	}
	for _, it := range t.Rows() {
		p.Rows = append(p.Rows, partRow(it, slot.Headers, t.Attributes, thumbWidth))
	}
	return p
}

func partRow(it catalog.Item, headers []table.Header, attrs table.Attributes[catalog.Item], thumbWidth int) view.PartRow {
	r := view.PartRow{
		ID:    it.ID,
		Name:  it.Name,
		Thumb: view.SmallImageURL(it.Image, thumbWidth),
	}
	for _, hd := range headers {
		if hd.Kind != table.KindSelect && hd.Kind != table.KindBasic {
			continue
		}
		col := view.Column{Center: hd.Kind == table.KindBasic, HideUnder: hd.HideUnder}
		if get, ok := attrs[hd.Attribute]; ok {
			col.Value, _ = get(it)
		}
		r.Columns = append(r.Columns, col)
	}

	cheapest, _ := it.Cheapest()
	r.PriceLabel = view.OfferingLabel(cheapest.RetailerName, cheapest.Price)
	for _, o := range it.Offerings {
		if o.Disabled {
			continue
		}
		r.Offerings = append(r.Offerings, view.OfferingOption{
			ID:       o.ID,
			Label:    view.OfferingLabel(o.RetailerName, o.Price),
			Selected: o.ID == cheapest.ID,
		})
	}
	return r
}
