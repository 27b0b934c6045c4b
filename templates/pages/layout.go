package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/components"
	"ihlutir.is/app/templates/shared"
)

const baseCSS = `body{font-family:system-ui,sans-serif;margin:0 auto;max-width:1100px;padding:1rem}
table{border-collapse:collapse;width:100%}th,td{padding:.4rem;border-bottom:1px solid #ddd;vertical-align:middle}
.thin{width:1%;white-space:nowrap}.text-center{text-align:center}.text-right{text-align:right}
.flash{padding:.6rem;margin-bottom:1rem;border-radius:4px}.flash-success{background:#e6f4ea}.flash-error{background:#fce8e6}
.flash-info,.flash-warning{background:#fef7e0}.notice{color:#b06000;font-size:.9em}
.slot{display:flex;gap:1rem;align-items:center;border-bottom:1px solid #eee;padding:.6rem 0}
.slot h2{font-size:1rem;margin:0;min-width:9rem}.slot img{max-height:60px}
`

// Layout wraps a page body. css holds page-specific rules.
func Layout(title string, flash *view.Flash, css string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<!doctype html><html lang="is"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.Text(title)
		w.Raw(` | Íhlutir</title><style>`)
		w.Raw(baseCSS)
		w.Raw(css)
		w.Raw(`</style></head><body><header><a href="/build">Íhlutir</a></header><main>`)
		w.Render(ctx, components.Flash(flash))
		w.Render(ctx, body)
		w.Raw(`</main></body></html>`)
		return w.Err()
	})
}
