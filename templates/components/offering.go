package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/shared"
)

// BuildFields are the hidden inputs every build mutation carries.
func BuildFields(buildID string, compact bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		if buildID != "" {
			w.Hidden("build_id", buildID)
		}
		if compact {
			w.Hidden("compact", "1")
		}
		return w.Err()
	})
}

// OfferingSelect lists the retailers of a part.
func OfferingSelect(name string, opts []view.OfferingOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw("<select")
		w.Attr("name", name)
		w.Raw(">")
		for _, o := range opts {
			w.Raw("<option")
			w.Attr("value", o.ID)
			if o.Selected {
				w.Raw(" selected")
			}
			w.Raw(">")
			w.Text(o.Label)
			w.Raw("</option>")
		}
		w.Raw("</select>")
		return w.Err()
	})
}

// OfferingForm switches the retailer of the component already in a slot.
func OfferingForm(slot, buildID string, compact bool, opts []view.OfferingOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<form method="post" class="offering-form"`)
		w.URLAttr("action", "/build/slots/"+slot+"/offering")
		w.Raw(">")
		w.Render(ctx, BuildFields(buildID, compact))
		w.Render(ctx, OfferingSelect("offering_id", opts))
		w.Raw(`<button type="submit">Skipta</button></form>`)
		return w.Err()
	})
}
