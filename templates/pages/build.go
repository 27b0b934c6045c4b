package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"ihlutir.is/app/pkg/view"
	"ihlutir.is/app/templates/components"
	"ihlutir.is/app/templates/shared"
)

func Build(p view.BuildPage, flash *view.Flash) templ.Component {
	title := "Veldu íhluti"
	if p.Compact {
		title = "Íhlutir"
	}
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<section class="build"><h1>`)
		w.Text(title)
		w.Raw(`</h1>`)

		if !p.Compact {
			w.Raw(`<form method="post" action="/build/clear" class="clear-form">`)
			w.Render(ctx, components.BuildFields(p.BuildID, false))
			w.Raw(`<button type="submit">Byrja upp á nýtt</button></form>`)
		}
		if p.ShareURL != "" {
			w.Raw(`<p class="share">Tengill: <a`)
			w.URLAttr("href", p.ShareURL)
			w.Raw(`>`)
			w.Text(p.ShareURL)
			w.Raw(`</a></p>`)
		}

		for _, s := range p.Slots {
			if p.Compact && s.Component == nil {
				continue
			}
			w.Render(ctx, buildSlot(p, s))
		}

		w.Raw(`<p class="total"><strong>Samtals: `)
		w.Text(p.Total)
		w.Raw(`</strong></p></section>`)
		return w.Err()
	})
	return Layout(title, flash, "", body)
}

func buildSlot(p view.BuildPage, s view.BuildSlot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<div class="slot"`)
		w.Attr("id", "slot-"+s.Key)
		w.Raw(`>`)
		if !p.Compact {
			w.Raw(`<h2>`)
			w.Text(s.Label)
			w.Raw(`</h2>`)
		}

		if s.Component != nil {
			w.Render(ctx, buildComponent(p, s.Key, *s.Component))
		}

		if !p.Compact {
			label := "Bæta við"
			if s.Component != nil {
				label = "Breyta"
			}
			w.Raw(`<a class="edit"`)
			w.URLAttr("href", "/parts/"+s.Key)
			w.Raw(`>`)
			w.Text(label)
			w.Raw(`</a>`)

			if s.Component != nil {
				w.Raw(`<form method="post" class="remove-form"`)
				w.URLAttr("action", "/build/slots/"+s.Key+"/remove")
				w.Raw(`>`)
				w.Render(ctx, components.BuildFields(p.BuildID, false))
				w.Raw(`<button type="submit">Fjarlægja</button></form>`)
			}
		}
		w.Raw(`</div>`)
		return w.Err()
	})
}

func buildComponent(p view.BuildPage, slot string, c view.BuildComponent) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := shared.NewWriter(out)
		w.Raw(`<div class="component"><a target="_blank" rel="noopener"`)
		w.URLAttr("href", c.OfferingURL)
		w.Raw(`>`)
		if c.Thumb != "" {
			w.Raw(`<img alt=""`)
			w.URLAttr("src", c.Thumb)
			w.Raw(`>`)
		}
		w.Raw(`<span class="name">`)
		w.Text(c.Name)
		w.Raw(`</span></a> <span class="offering">`)
		w.Text(c.OfferingLabel)
		w.Raw(`</span>`)

		if c.Unavailable {
			w.Raw(`<p class="notice">Ekki lengur í boði hjá söluaðila</p>`)
		}
		if c.NotCheapest {
			w.Raw(`<p class="notice">Til ódýrara</p>`)
		}
		if len(c.Offerings) > 1 {
			w.Render(ctx, components.OfferingForm(slot, p.BuildID, p.Compact, c.Offerings))
		}
		w.Raw(`</div>`)
		return w.Err()
	})
}
