// Package shared holds the small helpers every template uses: an HTML writer
// that escapes through templ, and the layout classes of table cells.
package shared

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Writer collects the first write error so templates can emit markup
// without checking every call.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Raw writes trusted markup.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes escaped text content.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (w *Writer) Attr(name, value string) {
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// URLAttr writes an href/action attribute, dropping unsafe schemes.
func (w *Writer) URLAttr(name, u string) {
	w.Attr(name, string(templ.URL(u)))
}

func (w *Writer) IntAttr(name string, v int) {
	w.Attr(name, strconv.Itoa(v))
}

// Hidden writes a hidden form input.
func (w *Writer) Hidden(name, value string) {
	w.Raw(`<input type="hidden"`)
	w.Attr("name", name)
	w.Attr("value", value)
	w.Raw(">")
}

func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

func (w *Writer) Err() error { return w.err }
