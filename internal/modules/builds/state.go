package builds

import (
	"ihlutir.is/app/internal/modules/catalog"
)

// State owns the build being viewed or edited during one request. All
// changes go through its methods; Get hands out copies.
type State struct {
	build  Build
	loaded bool
}

func NewState() *State {
	return &State{build: Default()}
}

// Loaded reports whether a build has been placed in the state.
func (s *State) Loaded() bool { return s.loaded }

func (s *State) Get() Build { return s.build.clone() }

func (s *State) Set(b Build) {
	next := Default()
	next.ID = b.ID
	for k, c := range b.clone().Slots {
		if _, ok := catalog.LookupSlot(k); ok {
			next.Slots[k] = c
		}
	}
	s.build = next
	s.loaded = true
}

// Merge lays b over the current build: b's id wins when set, and every slot
// b has a component for replaces the current one.
func (s *State) Merge(b Build) {
	next := s.build.clone()
	if b.ID != "" {
		next.ID = b.ID
	}
	for k, c := range b.clone().Slots {
		if c == nil {
			continue
		}
		if _, ok := catalog.LookupSlot(k); ok {
			next.Slots[k] = c
		}
	}
	s.build = next
	s.loaded = true
}

// Clear resets to the default empty build, dropping the id.
func (s *State) Clear() {
	s.build = Default()
	s.loaded = true
}

func (s *State) SetSlot(slot string, c *Component) error {
	if _, ok := catalog.LookupSlot(slot); !ok {
		return ErrUnknownSlot
	}
	if c == nil {
		return s.RemoveSlot(slot)
	}
	cp := *c
	s.build.Slots[slot] = &cp
	return nil
}

func (s *State) RemoveSlot(slot string) error {
	if _, ok := catalog.LookupSlot(slot); !ok {
		return ErrUnknownSlot
	}
	s.build.Slots[slot] = nil
	return nil
}

// SelectOffering switches the selected offering of one slot. Only the
// offerings the component already lists can be chosen.
func (s *State) SelectOffering(slot, offeringID string) error {
	if _, ok := catalog.LookupSlot(slot); !ok {
		return ErrUnknownSlot
	}
	c := s.build.Slots[slot]
	if c == nil {
		return ErrSlotEmpty
	}
	for _, o := range c.Offerings {
		if o.ID != offeringID {
			continue
		}
		if o.Disabled {
			return ErrOfferingUnavailable
		}
		cp := *c
		cp.SelectedOffering = o
		s.build.Slots[slot] = &cp
		return nil
	}
	return ErrUnknownOffering
}
