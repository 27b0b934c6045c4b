package builds

import (
	"context"
	"errors"
	"log/slog"

	"ihlutir.is/app/internal/modules/catalog"
)

// Catalog resolves component ids to their current catalog data.
type Catalog interface {
	Lookup(ctx context.Context, ids []string) (map[string]catalog.Item, error)
}

type Service struct {
	store   Store
	catalog Catalog
	log     *slog.Logger
}

func NewService(store Store, cat Catalog, l *slog.Logger) *Service {
	if l == nil {
		l = slog.Default()
	}
	return &Service{store: store, catalog: cat, log: l}
}

// Resolution is the outcome of loading the build for a page view.
type Resolution struct {
	Build Build
	// Redirect is set when the build was found under an id other than the
	// one in the route; the page should move to the build's own URL.
	Redirect bool
}

// Resolve fills st with the build to show. The id comes from the route,
// else from the stored current-build id. A missing or failing lookup falls
// back to the default empty build. A state that is already loaded is
// returned as is.
func (s *Service) Resolve(ctx context.Context, st *State, routeID, storedID string) Resolution {
	if st.Loaded() {
		return Resolution{Build: st.Get()}
	}

	id := routeID
	if id == "" {
		id = storedID
	}

	var fetched Build
	if id != "" {
		b, err := s.Load(ctx, id)
		switch {
		case err == nil:
			fetched = b
		case errors.Is(err, ErrNotFound):
			s.log.LogAttrs(ctx, slog.LevelWarn, "build_not_found", slog.String("build_id", id))
		default:
			s.log.LogAttrs(ctx, slog.LevelError, "build_load_failed", slog.String("build_id", id), slog.Any("err", err))
		}
	}

	st.Set(Default())
	st.Merge(fetched)

	return Resolution{
		Build:    st.Get(),
		Redirect: fetched.ID != "" && fetched.ID != routeID,
	}
}

// Load fetches a build and hydrates it from the catalog.
func (s *Service) Load(ctx context.Context, id string) (Build, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return Build{}, err
	}
	return s.hydrate(ctx, rec)
}

func (s *Service) hydrate(ctx context.Context, rec Record) (Build, error) {
	b := Default()
	b.ID = rec.ID
	if len(rec.Slots) == 0 {
		return b, nil
	}

	ids := make([]string, 0, len(rec.Slots))
	for _, sel := range rec.Slots {
		ids = append(ids, sel.ComponentID)
	}
	items, err := s.catalog.Lookup(ctx, ids)
	if err != nil {
		return Build{}, err
	}

	for slot, sel := range rec.Slots {
		if _, ok := b.Slots[slot]; !ok {
			continue
		}
		it, ok := items[sel.ComponentID]
		if !ok {
			s.log.LogAttrs(ctx, slog.LevelWarn, "build_component_missing",
				slog.String("build_id", rec.ID),
				slog.String("slot", slot),
				slog.String("component_id", sel.ComponentID),
			)
			continue
		}
		offering, ok := it.Offering(sel.OfferingID)
		if !ok {
			s.log.LogAttrs(ctx, slog.LevelWarn, "build_offering_missing",
				slog.String("build_id", rec.ID),
				slog.String("slot", slot),
				slog.String("offering_id", sel.OfferingID),
			)
			continue
		}
		b.Slots[slot] = componentFromItem(it, offering)
	}
	return b, nil
}

// SetSlot puts a catalog component with the chosen offering into a slot.
func (s *Service) SetSlot(ctx context.Context, st *State, slot, componentID, offeringID string) (Build, error) {
	if _, ok := catalog.LookupSlot(slot); !ok {
		return Build{}, ErrUnknownSlot
	}
	items, err := s.catalog.Lookup(ctx, []string{componentID})
	if err != nil {
		return Build{}, err
	}
	it, ok := items[componentID]
	if !ok {
		return Build{}, ErrUnknownComponent
	}
	if it.Slot != slot {
		return Build{}, ErrSlotMismatch
	}
	o, ok := it.Offering(offeringID)
	if !ok {
		return Build{}, ErrUnknownOffering
	}
	if o.Disabled {
		return Build{}, ErrOfferingUnavailable
	}

	return s.update(ctx, st, func(st *State) error {
		return st.SetSlot(slot, componentFromItem(it, o))
	})
}

func (s *Service) RemoveSlot(ctx context.Context, st *State, slot string) (Build, error) {
	return s.update(ctx, st, func(st *State) error {
		return st.RemoveSlot(slot)
	})
}

func (s *Service) SelectOffering(ctx context.Context, st *State, slot, offeringID string) (Build, error) {
	return s.update(ctx, st, func(st *State) error {
		return st.SelectOffering(slot, offeringID)
	})
}

// Clear starts over with an empty build. The reset build is stored under a
// new id; the old id keeps pointing at what was shared before.
func (s *Service) Clear(ctx context.Context, st *State) (Build, error) {
	return s.update(ctx, st, func(st *State) error {
		st.Clear()
		return nil
	})
}

func (s *Service) update(ctx context.Context, st *State, mutate func(*State) error) (Build, error) {
	if err := mutate(st); err != nil {
		return Build{}, err
	}

	b := st.Get()
	rec := b.Record()
	if rec.ID == "" {
		created, err := s.store.Create(ctx, rec)
		if err != nil {
			return Build{}, err
		}
		b.ID = created.ID
		st.Merge(Build{ID: created.ID})
		s.log.LogAttrs(ctx, slog.LevelInfo, "build_created", slog.String("build_id", created.ID))
		return b, nil
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return Build{}, err
	}
	return b, nil
}
