package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[int64]string{
		0:       "0 kr.",
		5:       "5 kr.",
		999:     "999 kr.",
		1000:    "1.000 kr.",
		50000:   "50.000 kr.",
		170000:  "170.000 kr.",
		1234567: "1.234.567 kr.",
		-5000:   "-5.000 kr.",

		math.MaxInt64: "9.223.372.036.854.775.807 kr.",
		math.MinInt64: "-9.223.372.036.854.775.808 kr.",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency(in), "amount %d", in)
	}
}

func TestSmallImageURL(t *testing.T) {
	assert.Equal(t, "https://img.example.is/cpu/r7.png?w=64", SmallImageURL("https://img.example.is/cpu/r7.png", 64))
	assert.Equal(t, "/uploads/a.png?v=2&w=64", SmallImageURL("/uploads/a.png?v=2", 64))
	assert.Equal(t, "", SmallImageURL("", 64))
	assert.Equal(t, "/uploads/a.png", SmallImageURL("/uploads/a.png", 0))
}

func TestOfferingLabel(t *testing.T) {
	assert.Equal(t, "Tölvutek - 49.990 kr.", OfferingLabel("Tölvutek", 49990))
}

func TestFlashClassAndRole(t *testing.T) {
	assert.Equal(t, "flash flash-success", Flash{Kind: FlashSuccess}.Class())
	assert.Equal(t, "flash flash-error", Flash{Kind: FlashError}.Class())
	assert.Equal(t, "flash flash-info", Flash{Kind: "warning"}.Class())
	assert.Equal(t, "alert", Flash{Kind: FlashError}.Role())
	assert.Equal(t, "status", Flash{Kind: FlashSuccess}.Role())
}
