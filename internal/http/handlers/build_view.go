package handlers

import (
	"ihlutir.is/app/internal/modules/builds"
	"ihlutir.is/app/internal/modules/catalog"
	"ihlutir.is/app/pkg/view"
)

// BuildPageFrom maps a build to the build page view model, slots in display
// order.
func BuildPageFrom(b builds.Build, compact bool, thumbWidth int) view.BuildPage {
	p := view.BuildPage{
		BuildID: b.ID,
		Compact: compact,
		Total:   view.FormatCurrency(b.TotalPrice()),
	}
	for _, sl := range catalog.Slots() {
		s := view.BuildSlot{Key: sl.Key, Label: sl.Label}
		if c := b.Component(sl.Key); c != nil {
			s.Component = buildComponentView(c, thumbWidth)
		}
		p.Slots = append(p.Slots, s)
	}
	return p
}

func buildComponentView(c *builds.Component, thumbWidth int) *view.BuildComponent {
	sel := c.SelectedOffering
	return &view.BuildComponent{
		ID:            c.ID,
		Name:          c.Name,
		Thumb:         view.SmallImageURL(c.Image, thumbWidth),
		OfferingID:    sel.ID,
		OfferingURL:   sel.URL,
		OfferingLabel: view.OfferingLabel(sel.RetailerName, sel.Price),
		Offerings:     offeringOptions(c.Offerings, sel.ID),
		NotCheapest:   !c.IsCheapest(),
		Unavailable:   sel.Disabled,
	}
}

// offeringOptions lists offerings for a retailer picker. An unavailable
// offering stays visible only while it is the selected one.
func offeringOptions(offerings []catalog.Offering, selectedID string) []view.OfferingOption {
	out := make([]view.OfferingOption, 0, len(offerings))
	for _, o := range offerings {
		selected := o.ID == selectedID
		if o.Disabled && !selected {
			continue
		}
		label := view.OfferingLabel(o.RetailerName, o.Price)
		if o.Disabled {
			label += " (ekki í boði)"
		}
		out = append(out, view.OfferingOption{ID: o.ID, Label: label, Selected: selected})
	}
	return out
}
