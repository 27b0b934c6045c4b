package catalog

import "ihlutir.is/app/internal/table"

// Slot is a component category of a build together with the columns of its
// listing table.
type Slot struct {
	Key     string
	Label   string
	Headers []table.Header
}

func brand() table.Header {
	return table.Header{Kind: table.KindSelect, Label: "Framleiðandi", Attribute: "brand"}
}

func sel(label, attr string) table.Header {
	return table.Header{Kind: table.KindSelect, Label: label, Attribute: attr}
}

func basic(label, attr string, hideUnder int) table.Header {
	return table.Header{Kind: table.KindBasic, Label: label, Attribute: attr, HideUnder: hideUnder}
}

func columns(middle ...table.Header) []table.Header {
	hs := []table.Header{
		{Kind: table.KindImage, HideUnder: 576},
		{Kind: table.KindName},
		brand(),
	}
	hs = append(hs, middle...)
	return append(hs, table.Header{Kind: table.KindPrice})
}

// slots is in display order.
var slots = []Slot{
	{Key: "cpu", Label: "Örgjörvi", Headers: columns(sel("Sökkull", "socket"), basic("Kjarnar", "cores", 768))},
	{Key: "cpuCooler", Label: "Kæling", Headers: columns(sel("Gerð", "type"))},
	{Key: "motherboard", Label: "Móðurborð", Headers: columns(sel("Sökkull", "socket"), sel("Stærð", "formFactor"))},
	{Key: "memory", Label: "Vinnsluminni", Headers: columns(sel("Gerð", "type"), basic("Stærð", "capacity", 768))},
	{Key: "gpu", Label: "Skjákort", Headers: columns(sel("Kubbasett", "chipset"), basic("Minni", "memory", 768))},
	{Key: "ssd", Label: "SSD", Headers: columns(sel("Stærð", "capacity"), sel("Tengi", "interface"))},
	{Key: "hdd", Label: "HDD", Headers: columns(sel("Stærð", "capacity"), basic("Snúningshraði", "rpm", 768))},
	{Key: "case", Label: "Kassi", Headers: columns(sel("Stærð", "formFactor"))},
	{Key: "psu", Label: "Aflgjafi", Headers: columns(sel("Afl", "wattage"), basic("Nýtni", "efficiency", 768))},
	{Key: "monitor", Label: "Skjár", Headers: columns(sel("Stærð", "size"), sel("Upplausn", "resolution"), basic("Tíðni", "refreshRate", 992))},
}

func Slots() []Slot {
	return append([]Slot(nil), slots...)
}

func SlotKeys() []string {
	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = s.Key
	}
	return keys
}

func LookupSlot(key string) (Slot, bool) {
	for _, s := range slots {
		if s.Key == key {
			return s, true
		}
	}
	return Slot{}, false
}

// Attributes returns the typed accessors for every attribute the slot's
// headers refer to.
func (s Slot) Attributes() table.Attributes[Item] {
	attrs := table.Attributes[Item]{}
	for _, h := range s.Headers {
		if h.Attribute == "" {
			continue
		}
		name := h.Attribute
		attrs[name] = func(it Item) (string, bool) { return it.Attr(name) }
	}
	return attrs
}
