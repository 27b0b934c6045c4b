package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/datatypes"

	"ihlutir.is/app/internal/shared/slug"
)

// FeedItem is one component in a catalog import feed.
type FeedItem struct {
	ID         string         `json:"id"`
	Slot       string         `json:"slot"`
	Name       string         `json:"name"`
	Image      string         `json:"image"`
	Attributes map[string]any `json:"attributes"`
	Offerings  []FeedOffering `json:"offerings"`
}

type FeedOffering struct {
	Retailer string `json:"retailer"`
	Price    int64  `json:"price"`
	URL      string `json:"url"`
}

// ParseFeed reads a JSON array of feed items.
func ParseFeed(r io.Reader) ([]FeedItem, error) {
	var items []FeedItem
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return items, nil
}

// Component converts a feed item into a component row. The id defaults to
// the slug of the name; offering ids are derived from component and
// retailer so re-imports update in place.
func (f FeedItem) Component() (Component, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Component{}, errors.New("feed item without name")
	}
	if _, ok := LookupSlot(f.Slot); !ok {
		return Component{}, fmt.Errorf("%s: %w %q", name, ErrUnknownSlot, f.Slot)
	}

	id := slug.FromName(f.ID)
	if strings.TrimSpace(f.ID) == "" {
		id = slug.FromName(name)
	}

	c := Component{
		ID:         id,
		Slot:       f.Slot,
		Name:       name,
		Image:      strings.TrimSpace(f.Image),
		Attributes: datatypes.JSONMap{},
	}
	for k, v := range f.Attributes {
		if v != nil {
			c.Attributes[k] = v
		}
	}

	seen := map[string]bool{}
	for _, o := range f.Offerings {
		retailer := strings.TrimSpace(o.Retailer)
		if retailer == "" || o.Price <= 0 {
			return Component{}, fmt.Errorf("%s: offering needs a retailer and a positive price", name)
		}
		if seen[retailer] {
			return Component{}, fmt.Errorf("%s: duplicate offering from %s", name, retailer)
		}
		seen[retailer] = true
		c.Offerings = append(c.Offerings, Offering{
			ID:           OfferingID(id, retailer),
			ComponentID:  id,
			RetailerName: retailer,
			Price:        o.Price,
			URL:          strings.TrimSpace(o.URL),
		})
	}
	return c, nil
}
