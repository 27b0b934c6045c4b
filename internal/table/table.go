// Package table models the listing tables of the site: typed header
// descriptors, per-attribute filter sets and the filtering itself.
// Rendering lives in templates/components; nothing here knows about HTML.
package table

import (
	"net/url"
	"slices"
	"sort"
	"strings"
)

type Kind string

const (
	KindImage  Kind = "image"
	KindBasic  Kind = "basic"
	KindName   Kind = "name"
	KindPrice  Kind = "price"
	KindSelect Kind = "select"
)

const (
	NameLabel  = "Nafn"
	PriceLabel = "Verð"
)

// Header describes one column of the table. Attribute is only read for
// KindSelect. HideUnder > 0 hides the column below that viewport width (px).
type Header struct {
	Kind      Kind
	Label     string
	Attribute string
	HideUnder int
}

// Cell is a single rendered header cell. A price header expands to two.
type Cell struct {
	Label     string
	Thin      bool
	Center    bool
	Right     bool
	HideUnder int
	Select    *Select
}

type Select struct {
	Attribute string
	Label     string
	Options   []Option
}

type Option struct {
	Value    string
	Selected bool
}

// Accessor reads one attribute of an item. ok is false when the item has no
// value for the attribute.
type Accessor[T any] func(item T) (value string, ok bool)

type Attributes[T any] map[string]Accessor[T]

// Table is a header list plus the full item collection and the active filters.
type Table[T any] struct {
	Headers    []Header
	Items      []T
	Attributes Attributes[T]
	Filters    Filters
}

// Rows returns the filtered subset of Items in their original order.
func (t Table[T]) Rows() []T {
	return Apply(t.Items, t.Attributes, t.Filters)
}

// HeaderCells expands the header descriptors into the cells of the header row.
func (t Table[T]) HeaderCells() []Cell {
	cells := make([]Cell, 0, len(t.Headers)+1)
	for _, h := range t.Headers {
		switch h.Kind {
		case KindImage:
			cells = append(cells, Cell{Thin: true, HideUnder: h.HideUnder})
		case KindBasic:
			cells = append(cells, Cell{Label: h.Label, Center: true, HideUnder: h.HideUnder})
		case KindName:
			cells = append(cells, Cell{Label: NameLabel, HideUnder: h.HideUnder})
		case KindPrice:
			cells = append(cells,
				Cell{Label: PriceLabel, Right: true, HideUnder: h.HideUnder},
				Cell{Thin: true, HideUnder: h.HideUnder},
			)
		case KindSelect:
			sel := &Select{Attribute: h.Attribute, Label: h.Label}
			if get, ok := t.Attributes[h.Attribute]; ok {
				for _, v := range Options(t.Items, get) {
					sel.Options = append(sel.Options, Option{Value: v, Selected: t.Filters.Has(h.Attribute, v)})
				}
			}
			cells = append(cells, Cell{Select: sel, HideUnder: h.HideUnder})
		}
	}
	return cells
}

// Apply keeps the items that pass every non-empty filter set. Filters on
// different attributes combine with AND; an item without a value for a
// filtered attribute is dropped. items is never modified.
func Apply[T any](items []T, attrs Attributes[T], f Filters) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Match(it, attrs, f) {
			out = append(out, it)
		}
	}
	return out
}

func Match[T any](item T, attrs Attributes[T], f Filters) bool {
	for attr, accepted := range f {
		if len(accepted) == 0 {
			continue
		}
		get, ok := attrs[attr]
		if !ok {
			return false
		}
		v, ok := get(item)
		if !ok || !slices.Contains(accepted, v) {
			return false
		}
	}
	return true
}

// Options returns the distinct values of an attribute across items, sorted.
func Options[T any](items []T, get Accessor[T]) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, it := range items {
		v, ok := get(it)
		if !ok || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Filters maps an attribute to its accepted values. A missing or empty entry
// means no restriction on that attribute.
type Filters map[string][]string

// Set returns a copy of f with attr replaced by values.
func (f Filters) Set(attr string, values []string) Filters {
	out := make(Filters, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[attr] = append([]string(nil), values...)
	return out
}

func (f Filters) Has(attr, value string) bool {
	return slices.Contains(f[attr], value)
}

func (f Filters) Active() bool {
	for _, v := range f {
		if len(v) > 0 {
			return true
		}
	}
	return false
}

// Query encodes the active filters back into query parameters.
func (f Filters) Query() url.Values {
	q := url.Values{}
	for attr, values := range f {
		for _, v := range values {
			q.Add(attr, v)
		}
	}
	return q
}

// FiltersFromQuery reads the filter sets of the select headers from a query
// string (?brand=AMD&brand=Intel). Unknown parameters are ignored.
func FiltersFromQuery(q url.Values, headers []Header) Filters {
	f := Filters{}
	for _, h := range headers {
		if h.Kind != KindSelect || h.Attribute == "" {
			continue
		}
		var values []string
		for _, raw := range q[h.Attribute] {
			if v := strings.TrimSpace(raw); v != "" && !slices.Contains(values, v) {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			f[h.Attribute] = values
		}
	}
	return f
}
