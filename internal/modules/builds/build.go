package builds

import (
	"ihlutir.is/app/internal/modules/catalog"
)

// Selection is what a build remembers for one slot.
type Selection struct {
	ComponentID string `json:"componentId"`
	OfferingID  string `json:"offeringId"`
}

// Record is the persisted form of a build.
type Record struct {
	ID    string               `json:"id"`
	Slots map[string]Selection `json:"slots"`
}

// Component is a selected component with its current offerings.
type Component struct {
	ID               string
	Name             string
	Image            string
	Offerings        []catalog.Offering
	SelectedOffering catalog.Offering
	MinPrice         *int64
}

// IsCheapest reports whether the selected offering is at the recorded
// minimum price. Without a recorded minimum nothing is flagged.
func (c *Component) IsCheapest() bool {
	if c.MinPrice == nil {
		return true
	}
	return c.SelectedOffering.Price == *c.MinPrice
}

func componentFromItem(it catalog.Item, selected catalog.Offering) *Component {
	return &Component{
		ID:               it.ID,
		Name:             it.Name,
		Image:            it.Image,
		Offerings:        append([]catalog.Offering(nil), it.Offerings...),
		SelectedOffering: selected,
		MinPrice:         it.MinPrice,
	}
}

// Build maps every slot to its selected component; nil means empty.
type Build struct {
	ID    string
	Slots map[string]*Component
}

// Default is the empty build: every slot present and absent, no id.
func Default() Build {
	b := Build{Slots: make(map[string]*Component)}
	for _, k := range catalog.SlotKeys() {
		b.Slots[k] = nil
	}
	return b
}

// Keys returns the slot keys in display order.
func (b Build) Keys() []string {
	return catalog.SlotKeys()
}

func (b Build) Component(slot string) *Component {
	return b.Slots[slot]
}

// TotalPrice sums the selected offering of every present slot.
func (b Build) TotalPrice() int64 {
	var total int64
	for _, c := range b.Slots {
		if c == nil {
			continue
		}
		total += c.SelectedOffering.Price
	}
	return total
}

func (b Build) IsEmpty() bool {
	for _, c := range b.Slots {
		if c != nil {
			return false
		}
	}
	return true
}

func (b Build) Record() Record {
	rec := Record{ID: b.ID, Slots: make(map[string]Selection)}
	for slot, c := range b.Slots {
		if c == nil {
			continue
		}
		rec.Slots[slot] = Selection{ComponentID: c.ID, OfferingID: c.SelectedOffering.ID}
	}
	return rec
}

func (b Build) clone() Build {
	out := Build{ID: b.ID, Slots: make(map[string]*Component, len(b.Slots))}
	for k, c := range b.Slots {
		if c == nil {
			out.Slots[k] = nil
			continue
		}
		cp := *c
		cp.Offerings = append([]catalog.Offering(nil), c.Offerings...)
		out.Slots[k] = &cp
	}
	return out
}
