package table

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	Name   string
	Brand  string
	Socket string
}

var partAttrs = Attributes[part]{
	"brand": func(p part) (string, bool) { return p.Brand, p.Brand != "" },
	"socket": func(p part) (string, bool) {
		return p.Socket, p.Socket != ""
	},
}

func sampleParts() []part {
	return []part{
		{Name: "one", Brand: "A", Socket: "AM5"},
		{Name: "two", Brand: "A", Socket: "AM4"},
		{Name: "three", Brand: "B", Socket: "AM5"},
	}
}

func TestApplySingleAttribute(t *testing.T) {
	items := sampleParts()

	got := Apply(items, partAttrs, Filters{"brand": {"A"}})

	want := []part{items[0], items[1]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("filtered rows mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyEmptySetIsNoRestriction(t *testing.T) {
	items := sampleParts()

	assert.Equal(t, items, Apply(items, partAttrs, Filters{}))
	assert.Equal(t, items, Apply(items, partAttrs, Filters{"brand": {}}))
	assert.Equal(t, items, Apply(items, partAttrs, nil))
}

func TestApplyCombinesAttributesWithAnd(t *testing.T) {
	items := sampleParts()

	got := Apply(items, partAttrs, Filters{"brand": {"A", "B"}, "socket": {"AM5"}})

	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Name)
	assert.Equal(t, "three", got[1].Name)
}

func TestApplyMatchesExactlyTheAcceptedSubset(t *testing.T) {
	items := sampleParts()
	for _, accepted := range [][]string{{"A"}, {"B"}, {"A", "B"}, {"C"}} {
		got := Apply(items, partAttrs, Filters{"brand": accepted})
		var want []part
		for _, it := range items {
			for _, v := range accepted {
				if it.Brand == v {
					want = append(want, it)
				}
			}
		}
		assert.ElementsMatch(t, want, got, "accepted=%v", accepted)
	}
}

func TestApplyExcludesItemsMissingTheAttribute(t *testing.T) {
	items := append(sampleParts(), part{Name: "nobrand"})

	got := Apply(items, partAttrs, Filters{"brand": {"A", "B"}})
	for _, p := range got {
		assert.NotEqual(t, "nobrand", p.Name)
	}

	// without a brand filter the item stays
	assert.Len(t, Apply(items, partAttrs, Filters{"socket": {}}), 4)
}

func TestApplyUnknownAttributeExcludesEverything(t *testing.T) {
	assert.Empty(t, Apply(sampleParts(), partAttrs, Filters{"colour": {"red"}}))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := sampleParts()
	before := append([]part(nil), items...)

	_ = Apply(items, partAttrs, Filters{"brand": {"B"}})

	assert.Equal(t, before, items)
}

func TestOptionsDistinctSorted(t *testing.T) {
	items := append(sampleParts(), part{Name: "x", Brand: "0"}, part{Name: "y"})

	assert.Equal(t, []string{"0", "A", "B"}, Options(items, partAttrs["brand"]))
}

func TestHeaderCells(t *testing.T) {
	tbl := Table[part]{
		Headers: []Header{
			{Kind: KindImage},
			{Kind: KindName},
			{Kind: KindSelect, Label: "Framleiðandi", Attribute: "brand", HideUnder: 600},
			{Kind: KindBasic, Label: "Sökkull"},
			{Kind: KindPrice},
		},
		Items:      sampleParts(),
		Attributes: partAttrs,
		Filters:    Filters{"brand": {"B"}},
	}

	cells := tbl.HeaderCells()
	require.Len(t, cells, 6)

	assert.True(t, cells[0].Thin)
	assert.Empty(t, cells[0].Label)
	assert.Equal(t, NameLabel, cells[1].Label)

	sel := cells[2].Select
	require.NotNil(t, sel)
	assert.Equal(t, 600, cells[2].HideUnder)
	assert.Equal(t, "Framleiðandi", sel.Label)
	assert.Equal(t, []Option{{Value: "A"}, {Value: "B", Selected: true}}, sel.Options)

	assert.Equal(t, "Sökkull", cells[3].Label)
	assert.True(t, cells[3].Center)

	assert.Equal(t, PriceLabel, cells[4].Label)
	assert.True(t, cells[4].Right)
	assert.True(t, cells[5].Thin)
}

func TestRowsUsesFilters(t *testing.T) {
	tbl := Table[part]{Items: sampleParts(), Attributes: partAttrs, Filters: Filters{"socket": {"AM4"}}}

	rows := tbl.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "two", rows[0].Name)
	assert.Len(t, tbl.Items, 3)
}

func TestFiltersSetCopies(t *testing.T) {
	f := Filters{"brand": {"A"}}

	g := f.Set("socket", []string{"AM5"})

	assert.Equal(t, Filters{"brand": {"A"}}, f)
	assert.Equal(t, []string{"AM5"}, g["socket"])
	assert.True(t, g.Active())
	assert.False(t, Filters{"brand": nil}.Active())
}

func TestFiltersFromQuery(t *testing.T) {
	headers := []Header{
		{Kind: KindSelect, Attribute: "brand"},
		{Kind: KindBasic, Label: "Sökkull"},
	}
	q := url.Values{
		"brand":  {"A", " A ", "B", ""},
		"socket": {"AM5"},
	}

	f := FiltersFromQuery(q, headers)

	assert.Equal(t, Filters{"brand": {"A", "B"}}, f)
	assert.Equal(t, url.Values{"brand": {"A", "B"}}, f.Query())
}
