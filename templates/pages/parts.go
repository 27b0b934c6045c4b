package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/components"
	"ihlutir.is/app/templates/shared"
)

func Parts(p view.PartsPage, flash *view.Flash) templ.Component {
	imageHideUnder := 0
	if len(p.Cells) > 0 && p.Cells[0].Thin {
		imageHideUnder = p.Cells[0].HideUnder
	}
	row := func(r view.PartRow) templ.Component {
		return components.PartRow(p.Slot, p.BuildID, p.Compact, imageHideUnder, r)
	}

	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<section class="parts-page"><h1>`)
		w.Text(p.Label)
		w.Raw(`</h1><p><a`)
		back := "/build"
		if p.BuildID != "" {
			back += "/" + p.BuildID
		}
		w.URLAttr("href", back)
		w.Raw(`>Til baka í samsetningu</a></p>`)

		w.Raw(`<form method="get"`)
		w.Attr("id", components.FiltersFormID)
		w.URLAttr("action", "/parts/"+p.Slot)
		w.Raw(`>`)
		w.Render(ctx, components.BuildFields(p.BuildID, p.Compact))
		w.Raw(`<button type="submit">Sía</button>`)
		if p.FiltersActive {
			w.Raw(` <a`)
			w.URLAttr("href", "/parts/"+p.Slot)
			w.Raw(`>Hreinsa síur</a>`)
		}
		w.Raw(`</form>`)

		w.Raw(`<p class="count">`)
		w.Text(strconv.Itoa(len(p.Rows)) + " af " + strconv.Itoa(p.Total))
		w.Raw(`</p>`)

		w.Render(ctx, components.Table(p.Cells, p.Rows, row))
		w.Raw(`</section>`)
		return w.Err()
	})
	return Layout(p.Label, flash, shared.HideUnderCSS(p.HideUnderWidth), body)
}
