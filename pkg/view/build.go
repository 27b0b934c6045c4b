package view

// BuildPage is what the build page renders. In compact mode only the chosen
// components are shown, with no editing controls.
type BuildPage struct {
	BuildID  string
	Compact  bool
	Total    string
	ShareURL string
	Slots    []BuildSlot
}

func (p BuildPage) IsEmpty() bool {
	for _, s := range p.Slots {
		if s.Component != nil {
			return false
		}
	}
	return true
}

type BuildSlot struct {
	Key       string
	Label     string
	Component *BuildComponent
}

type BuildComponent struct {
	ID            string
	Name          string
	Thumb         string
	OfferingID    string
	OfferingURL   string
	OfferingLabel string
	Offerings     []OfferingOption
	// NotCheapest is set when another retailer sells the part for less.
	NotCheapest bool
	// Unavailable is set when the retailer no longer sells the selected offering.
	Unavailable bool
}

type OfferingOption struct {
	ID       string
	Label    string
	Selected bool
}
