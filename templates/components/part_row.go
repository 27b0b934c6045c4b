package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/shared"
)

// PartRow is one row of a parts listing: image, name, attribute columns,
// price and the form that puts the part into the build.
func PartRow(slot, buildID string, compact bool, imageHideUnder int, r view.PartRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw("<tr>")

		w.Raw("<td")
		w.Attr("class", shared.CellClass(true, false, false, imageHideUnder))
		w.Raw(">")
		if r.Thumb != "" {
			w.Raw(`<img loading="lazy" alt=""`)
			w.URLAttr("src", r.Thumb)
			w.Raw(">")
		}
		w.Raw("</td><td>")
		w.Text(r.Name)
		w.Raw("</td>")

		for _, c := range r.Columns {
			w.Raw("<td")
			if cls := shared.CellClass(false, c.Center, false, c.HideUnder); cls != "" {
				w.Attr("class", cls)
			}
			w.Raw(">")
			w.Text(c.Value)
			w.Raw("</td>")
		}

		w.Raw(`<td class="text-right">`)
		w.Text(r.PriceLabel)
		w.Raw(`</td><td class="thin">`)
		w.Raw(`<form method="post" class="add-form"`)
		w.URLAttr("action", "/build/slots/"+slot)
		w.Raw(">")
		w.Hidden("component_id", r.ID)
		w.Render(ctx, BuildFields(buildID, compact))
		w.Render(ctx, OfferingSelect("offering_id", r.Offerings))
		w.Raw(`<button type="submit">Velja</button></form></td>`)

		w.Raw("</tr>")
		return w.Err()
	})
}
