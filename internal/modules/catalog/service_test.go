package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"ihlutir.is/app/internal/table"
)

type memStore struct {
	items    []Component
	upserted []Component
	err      error
}

func (m *memStore) ListBySlot(_ context.Context, slot string) ([]Component, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []Component
	for _, c := range m.items {
		if c.Slot == slot {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) GetMany(_ context.Context, ids []string) ([]Component, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []Component
	for _, c := range m.items {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (m *memStore) Upsert(_ context.Context, items []Component) error {
	m.upserted = append(m.upserted, items...)
	return m.err
}

func cpus() []Component {
	return []Component{
		{
			ID: "ryzen-7-7700x", Slot: "cpu", Name: "AMD Ryzen 7 7700X",
			Attributes: datatypes.JSONMap{"brand": "AMD", "socket": "AM5", "cores": 8},
			Offerings: []Offering{
				{ID: "o1", RetailerName: "Tölvutek", Price: 52990},
				{ID: "o2", RetailerName: "Kísildalur", Price: 49990},
				{ID: "o3", RetailerName: "Elko", Price: 39990, Disabled: true},
			},
		},
		{
			ID: "core-i5-13600k", Slot: "cpu", Name: "Intel Core i5-13600K",
			Attributes: datatypes.JSONMap{"brand": "Intel", "socket": "LGA1700"},
			Offerings:  []Offering{{ID: "o4", RetailerName: "Att", Price: 45990}},
		},
		{ID: "no-offers", Slot: "cpu", Name: "Unpriced"},
		{ID: "rtx-4070", Slot: "gpu", Name: "RTX 4070", Offerings: []Offering{{ID: "o5", Price: 120000}}},
	}
}

func TestNewItemSortsOfferingsAndComputesMinPrice(t *testing.T) {
	it := NewItem(cpus()[0])

	require.Len(t, it.Offerings, 3)
	assert.Equal(t, []string{"o2", "o1", "o3"}, []string{it.Offerings[0].ID, it.Offerings[1].ID, it.Offerings[2].ID})
	require.NotNil(t, it.MinPrice)
	assert.EqualValues(t, 49990, *it.MinPrice)

	cheapest, ok := it.Cheapest()
	require.True(t, ok)
	assert.Equal(t, "Kísildalur", cheapest.RetailerName)

	v, ok := it.Attr("cores")
	assert.True(t, ok)
	assert.Equal(t, "8", v)
	_, ok = it.Attr("chipset")
	assert.False(t, ok)
}

func TestNewItemWithoutAvailableOfferings(t *testing.T) {
	it := NewItem(Component{ID: "x", Offerings: []Offering{{ID: "a", Price: 10, Disabled: true}}})

	assert.Nil(t, it.MinPrice)
	_, ok := it.Cheapest()
	assert.False(t, ok)
}

func TestNewItemNumericAttributesKeepPlainNotation(t *testing.T) {
	var attrs datatypes.JSONMap
	require.NoError(t, json.Unmarshal([]byte(`{"capacity":2000000,"memory":8,"clock":3.7,"brand":" AMD "}`), &attrs))

	it := NewItem(Component{ID: "ssd", Attributes: attrs})

	assert.Equal(t, "2000000", it.Attributes["capacity"])
	assert.Equal(t, "8", it.Attributes["memory"])
	assert.Equal(t, "3.7", it.Attributes["clock"])
	assert.Equal(t, "AMD", it.Attributes["brand"])
}

func TestListSlot(t *testing.T) {
	svc := NewService(&memStore{items: cpus()}, nil)

	sl, items, err := svc.ListSlot(context.Background(), "cpu")
	require.NoError(t, err)
	assert.Equal(t, "Örgjörvi", sl.Label)
	require.Len(t, items, 2)

	rows := table.Apply(items, sl.Attributes(), table.Filters{"socket": {"AM5"}})
	require.Len(t, rows, 1)
	assert.Equal(t, "ryzen-7-7700x", rows[0].ID)
}

func TestListSlotUnknown(t *testing.T) {
	svc := NewService(&memStore{}, nil)

	_, _, err := svc.ListSlot(context.Background(), "floppy")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestListSlotStoreError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&memStore{err: boom}, nil)

	_, _, err := svc.ListSlot(context.Background(), "cpu")
	assert.ErrorIs(t, err, boom)
}

func TestGetAndLookup(t *testing.T) {
	svc := NewService(&memStore{items: cpus()}, nil)
	ctx := context.Background()

	it, err := svc.Get(ctx, "rtx-4070")
	require.NoError(t, err)
	assert.Equal(t, "gpu", it.Slot)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := svc.Lookup(ctx, []string{"rtx-4070", "core-i5-13600k", "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestImportRejectsUnknownSlot(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil)

	err := svc.Import(context.Background(), []Component{{ID: "a", Slot: "cpu"}, {ID: "b", Slot: "floppy"}})
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.Empty(t, store.upserted)

	require.NoError(t, svc.Import(context.Background(), []Component{{ID: "a", Slot: "cpu"}}))
	assert.Len(t, store.upserted, 1)
}

func TestSlots(t *testing.T) {
	keys := SlotKeys()
	assert.Equal(t, []string{"cpu", "cpuCooler", "motherboard", "memory", "gpu", "ssd", "hdd", "case", "psu", "monitor"}, keys)

	sl, ok := LookupSlot("gpu")
	require.True(t, ok)
	assert.Equal(t, "Skjákort", sl.Label)
	assert.Equal(t, table.KindPrice, sl.Headers[len(sl.Headers)-1].Kind)

	attrs := sl.Attributes()
	assert.Contains(t, attrs, "brand")
	assert.Contains(t, attrs, "chipset")
}

func TestOfferingIDStable(t *testing.T) {
	assert.Equal(t, OfferingID("a", "Elko"), OfferingID("a", "Elko"))
	assert.NotEqual(t, OfferingID("a", "Elko"), OfferingID("b", "Elko"))
}
