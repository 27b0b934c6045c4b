package builds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ihlutir.is/app/internal/modules/catalog"
	"ihlutir.is/app/pkg/view"
)

func price(p int64) *int64 { return &p }

func cpuComponent() *Component {
	offers := []catalog.Offering{
		{ID: "cpu-a", RetailerName: "Kísildalur", Price: 50000},
		{ID: "cpu-b", RetailerName: "Tölvutek", Price: 52000},
		{ID: "cpu-c", RetailerName: "Elko", Price: 45000, Disabled: true},
	}
	return &Component{ID: "ryzen", Name: "Ryzen 7", Offerings: offers, SelectedOffering: offers[0], MinPrice: price(50000)}
}

func gpuComponent() *Component {
	offers := []catalog.Offering{{ID: "gpu-a", RetailerName: "Att", Price: 120000}}
	return &Component{ID: "rtx", Name: "RTX 4070", Offerings: offers, SelectedOffering: offers[0], MinPrice: price(120000)}
}

func TestDefaultBuild(t *testing.T) {
	b := Default()

	assert.Empty(t, b.ID)
	assert.Len(t, b.Slots, len(catalog.SlotKeys()))
	assert.True(t, b.IsEmpty())
	assert.EqualValues(t, 0, b.TotalPrice())
	assert.Equal(t, "0 kr.", view.FormatCurrency(b.TotalPrice()))
}

func TestTotalPriceAndRemove(t *testing.T) {
	st := NewState()
	require.NoError(t, st.SetSlot("cpu", cpuComponent()))
	require.NoError(t, st.SetSlot("gpu", gpuComponent()))

	b := st.Get()
	assert.EqualValues(t, 170000, b.TotalPrice())
	assert.Equal(t, "170.000 kr.", view.FormatCurrency(b.TotalPrice()))

	require.NoError(t, st.RemoveSlot("gpu"))
	b = st.Get()
	assert.Nil(t, b.Slots["gpu"])
	_, present := b.Slots["gpu"]
	assert.True(t, present)
	assert.Equal(t, "50.000 kr.", view.FormatCurrency(b.TotalPrice()))
}

func TestIsCheapest(t *testing.T) {
	c := cpuComponent()
	assert.True(t, c.IsCheapest())

	c.SelectedOffering = c.Offerings[1]
	assert.False(t, c.IsCheapest())

	c.MinPrice = nil
	assert.True(t, c.IsCheapest())
}

func TestSelectOffering(t *testing.T) {
	st := NewState()
	require.NoError(t, st.SetSlot("cpu", cpuComponent()))
	require.NoError(t, st.SetSlot("gpu", gpuComponent()))

	require.NoError(t, st.SelectOffering("cpu", "cpu-b"))

	b := st.Get()
	assert.Equal(t, "cpu-b", b.Slots["cpu"].SelectedOffering.ID)
	assert.False(t, b.Slots["cpu"].IsCheapest())
	assert.Equal(t, "gpu-a", b.Slots["gpu"].SelectedOffering.ID)
	assert.EqualValues(t, 172000, b.TotalPrice())

	assert.ErrorIs(t, st.SelectOffering("cpu", "nope"), ErrUnknownOffering)
	assert.ErrorIs(t, st.SelectOffering("cpu", "cpu-c"), ErrOfferingUnavailable)
	assert.ErrorIs(t, st.SelectOffering("memory", "x"), ErrSlotEmpty)
	assert.ErrorIs(t, st.SelectOffering("floppy", "x"), ErrUnknownSlot)
}

func TestUnknownSlot(t *testing.T) {
	st := NewState()

	assert.ErrorIs(t, st.SetSlot("floppy", cpuComponent()), ErrUnknownSlot)
	assert.ErrorIs(t, st.RemoveSlot("floppy"), ErrUnknownSlot)
}

func TestGetReturnsCopy(t *testing.T) {
	st := NewState()
	require.NoError(t, st.SetSlot("cpu", cpuComponent()))

	b := st.Get()
	b.Slots["cpu"].SelectedOffering.Price = 1
	b.Slots["gpu"] = gpuComponent()

	again := st.Get()
	assert.EqualValues(t, 50000, again.Slots["cpu"].SelectedOffering.Price)
	assert.Nil(t, again.Slots["gpu"])
}

func TestMergeAndClear(t *testing.T) {
	st := NewState()
	assert.False(t, st.Loaded())

	st.Set(Build{ID: "abc", Slots: map[string]*Component{"cpu": cpuComponent(), "floppy": gpuComponent()}})
	assert.True(t, st.Loaded())
	b := st.Get()
	assert.Equal(t, "abc", b.ID)
	assert.NotContains(t, b.Slots, "floppy")
	assert.Len(t, b.Slots, len(catalog.SlotKeys()))

	st.Merge(Build{Slots: map[string]*Component{"gpu": gpuComponent(), "cpu": nil}})
	b = st.Get()
	assert.Equal(t, "abc", b.ID)
	assert.NotNil(t, b.Slots["cpu"])
	assert.NotNil(t, b.Slots["gpu"])

	st.Merge(Build{ID: "def"})
	assert.Equal(t, "def", st.Get().ID)

	st.Clear()
	b = st.Get()
	assert.Empty(t, b.ID)
	assert.True(t, b.IsEmpty())
}

func TestRecord(t *testing.T) {
	st := NewState()
	require.NoError(t, st.SetSlot("cpu", cpuComponent()))

	rec := st.Get().Record()

	assert.Equal(t, map[string]Selection{"cpu": {ComponentID: "ryzen", OfferingID: "cpu-a"}}, rec.Slots)
}
