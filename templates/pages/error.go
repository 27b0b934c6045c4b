package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/shared"
)

func Error(status int, msg, requestID string, flash *view.Flash) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<section class="error"><h1>`)
		w.Text(strconv.Itoa(status))
		w.Raw(`</h1><p>`)
		w.Text(msg)
		w.Raw(`</p>`)
		if requestID != "" {
			w.Raw(`<p class="request-id">Beiðni: <code>`)
			w.Text(requestID)
			w.Raw(`</code></p>`)
		}
		w.Raw(`<p><a href="/build">Til baka</a></p></section>`)
		return w.Err()
	})
	return Layout("Villa", flash, "", body)
}
