package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"ihlutir.is/app/internal/table"
	"ihlutir.is/app/templates/shared"
)

// FiltersFormID is the GET form every select header submits through.
const FiltersFormID = "filters"

// Table renders a header row from cells and one row per item through row.
func Table[T any](cells []table.Cell, rows []T, row func(T) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<table class="parts"><thead><tr>`)
		for _, c := range cells {
			w.Render(ctx, HeaderCell(c))
		}
		w.Raw(`</tr></thead><tbody>`)
		for _, r := range rows {
			w.Render(ctx, row(r))
		}
		w.Raw(`</tbody></table>`)
		return w.Err()
	})
}

func HeaderCell(c table.Cell) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw("<th")
		if cls := shared.CellClass(c.Thin, c.Center, c.Right, c.HideUnder); cls != "" {
			w.Attr("class", cls)
		}
		w.Raw(">")
		if c.Select != nil {
			w.Render(ctx, SelectHeader(*c.Select))
		} else {
			w.Text(c.Label)
		}
		w.Raw("</th>")
		return w.Err()
	})
}

// SelectHeader is a multi-select over the distinct values of a column. It
// belongs to the filters form and submits it on change.
func SelectHeader(s table.Select) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<label class="select-header"><span>`)
		w.Text(s.Label)
		w.Raw(`</span><select multiple`)
		w.Attr("name", s.Attribute)
		w.Attr("form", FiltersFormID)
		w.IntAttr("size", max(1, min(len(s.Options), 4)))
		w.Raw(` onchange="this.form.submit()">`)
		for _, o := range s.Options {
			w.Raw("<option")
			w.Attr("value", o.Value)
			if o.Selected {
				w.Raw(" selected")
			}
			w.Raw(">")
			w.Text(o.Value)
			w.Raw("</option>")
		}
		w.Raw("</select></label>")
		return w.Err()
	})
}
