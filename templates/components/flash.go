package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/shared"
)

func Flash(f *view.Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if f == nil || f.Message == "" {
			return nil
		}
		w := shared.NewWriter(out)
		w.Raw(`<div`)
		w.Attr("role", f.Role())
		w.Attr("class", f.Class())
		w.Raw(">")
		w.Text(f.Message)
		w.Raw("</div>")
		return w.Err()
	})
}
