package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Component is a part listed under one slot, e.g. a single CPU model.
type Component struct {
	ID         string            `gorm:"primaryKey;type:varchar(96)"`
	Slot       string            `gorm:"type:varchar(32);not null;index:ix_components_slot"`
	Name       string            `gorm:"type:varchar(255);not null"`
	Image      string            `gorm:"type:varchar(512);not null;default:''"`
	Attributes datatypes.JSONMap `gorm:"type:json"`
	Offerings  []Offering        `gorm:"foreignKey:ComponentID"`
	CreatedAt  time.Time         `gorm:"not null"`
	UpdatedAt  time.Time         `gorm:"not null"`
}

func (Component) TableName() string { return "components" }

// Offering is one retailer's listing of a component. Price is in whole krónur.
// Disabled offerings are no longer sold by the retailer but stay around so
// builds that selected them can still show them.
type Offering struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	ComponentID  string    `gorm:"type:varchar(96);not null;index:ix_offerings_component_id" json:"componentId"`
	RetailerName string    `gorm:"type:varchar(128);not null" json:"retailerName"`
	Price        int64     `gorm:"not null" json:"price"`
	URL          string    `gorm:"type:varchar(1024);not null" json:"url"`
	Disabled     bool      `gorm:"not null;default:false" json:"disabled"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}

func (Offering) TableName() string { return "offerings" }

// Item is a component as the listing and build pages see it.
type Item struct {
	ID         string
	Slot       string
	Name       string
	Image      string
	Attributes map[string]string
	// Offerings are sorted available-first, then by ascending price.
	Offerings []Offering
	// MinPrice is the lowest price over available offerings; nil when none is available.
	MinPrice *int64
}

func NewItem(c Component) Item {
	it := Item{
		ID:         c.ID,
		Slot:       c.Slot,
		Name:       c.Name,
		Image:      c.Image,
		Attributes: make(map[string]string, len(c.Attributes)),
		Offerings:  append([]Offering(nil), c.Offerings...),
	}
	for k, v := range c.Attributes {
		if v == nil {
			continue
		}
		it.Attributes[k] = attrString(v)
	}

	sort.SliceStable(it.Offerings, func(i, j int) bool {
		a, b := it.Offerings[i], it.Offerings[j]
		if a.Disabled != b.Disabled {
			return !a.Disabled
		}
		return a.Price < b.Price
	})
	for _, o := range it.Offerings {
		if o.Disabled {
			continue
		}
		p := o.Price
		it.MinPrice = &p
		break
	}
	return it
}

func (it Item) Attr(name string) (string, bool) {
	v, ok := it.Attributes[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (it Item) Offering(id string) (Offering, bool) {
	for _, o := range it.Offerings {
		if o.ID == id {
			return o, true
		}
	}
	return Offering{}, false
}

// Cheapest returns the first available offering.
func (it Item) Cheapest() (Offering, bool) {
	if len(it.Offerings) == 0 || it.Offerings[0].Disabled {
		return Offering{}, false
	}
	return it.Offerings[0], true
}

// attrString renders a decoded JSON attribute. Numbers keep plain notation so
// large capacities do not turn into exponents.
func attrString(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case json.Number:
		return x.String()
	case string:
		return strings.TrimSpace(x)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}
