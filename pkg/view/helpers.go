package view

import (
	"net/url"
	"strconv"
	"strings"
)

// FormatCurrency formats whole krónur the Icelandic way.
// E.g., 170000 -> "170.000 kr."
func FormatCurrency(amount int64) string {
	sign := ""
	abs := uint64(amount)
	if amount < 0 {
		sign = "-"
		abs = uint64(-(amount + 1)) + 1
	}
	digits := strconv.FormatUint(abs, 10)

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	b.WriteString(" kr.")
	return b.String()
}

// SmallImageURL asks the image host for a thumbnail of the given width.
// Empty or unparsable sources are returned unchanged.
func SmallImageURL(src string, width int) string {
	if src == "" || width <= 0 {
		return src
	}
	u, err := url.Parse(src)
	if err != nil {
		return src
	}
	q := u.Query()
	q.Set("w", strconv.Itoa(width))
	u.RawQuery = q.Encode()
	return u.String()
}

// OfferingLabel is the "retailer - price" text used in buttons and cells.
func OfferingLabel(retailer string, price int64) string {
	return retailer + " - " + FormatCurrency(price)
}
