package view

import "ihlutir.is/app/internal/table"

type PartsPage struct {
	Slot    string
	Label   string
	BuildID string
	Compact bool
	Cells   []table.Cell
	Rows    []PartRow
	// Total is the number of parts before filtering.
	Total          int
	FiltersActive  bool
	HideUnderWidth []int
}

type PartRow struct {
	ID         string
	Name       string
	Thumb      string
	Columns    []Column
	PriceLabel string
	Offerings  []OfferingOption
}

// Column is one attribute cell between the name and the price.
type Column struct {
	Value     string
	Center    bool
	HideUnder int
}
