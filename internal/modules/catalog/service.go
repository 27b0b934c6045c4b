package catalog

import (
	"context"
	"log/slog"
)

type Service struct {
	store Store
	log   *slog.Logger
}

func NewService(store Store, l *slog.Logger) *Service {
	if l == nil {
		l = slog.Default()
	}
	return &Service{store: store, log: l}
}

// ListSlot returns the purchasable components of a slot. Components without
// any offering cannot be priced and are left out.
func (s *Service) ListSlot(ctx context.Context, slot string) (Slot, []Item, error) {
	sl, ok := LookupSlot(slot)
	if !ok {
		return Slot{}, nil, ErrUnknownSlot
	}
	rows, err := s.store.ListBySlot(ctx, sl.Key)
	if err != nil {
		return Slot{}, nil, err
	}
	items := make([]Item, 0, len(rows))
	for _, c := range rows {
		if len(c.Offerings) == 0 {
			continue
		}
		items = append(items, NewItem(c))
	}
	return sl, items, nil
}

func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	found, err := s.Lookup(ctx, []string{id})
	if err != nil {
		return Item{}, err
	}
	it, ok := found[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

// Lookup loads the given components keyed by id. Unknown ids are absent from
// the result.
func (s *Service) Lookup(ctx context.Context, ids []string) (map[string]Item, error) {
	rows, err := s.store.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Item, len(rows))
	for _, c := range rows {
		out[c.ID] = NewItem(c)
	}
	if len(out) < len(ids) {
		s.log.LogAttrs(ctx, slog.LevelDebug, "catalog_lookup_partial",
			slog.Int("requested", len(ids)),
			slog.Int("found", len(out)),
		)
	}
	return out, nil
}

// Import writes an imported catalog feed through the store.
func (s *Service) Import(ctx context.Context, items []Component) error {
	for _, c := range items {
		if _, ok := LookupSlot(c.Slot); !ok {
			return ErrUnknownSlot
		}
	}
	return s.store.Upsert(ctx, items)
}
