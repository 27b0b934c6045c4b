package shared

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CellClass builds the class list of a table cell.
func CellClass(thin, center, right bool, hideUnder int) string {
	var cls []string
	if thin {
		cls = append(cls, "thin")
	}
	if center {
		cls = append(cls, "text-center")
	}
	if right {
		cls = append(cls, "text-right")
	}
	if hideUnder > 0 {
		cls = append(cls, HideUnderClass(hideUnder))
	}
	return strings.Join(cls, " ")
}

func HideUnderClass(width int) string {
	return "hide-under-" + strconv.Itoa(width)
}

// HideUnderCSS returns the media queries for the given breakpoints.
func HideUnderCSS(widths []int) string {
	seen := map[int]bool{}
	var ws []int
	for _, w := range widths {
		if w > 0 && !seen[w] {
			seen[w] = true
			ws = append(ws, w)
		}
	}
	sort.Ints(ws)

	var b strings.Builder
	for _, w := range ws {
		fmt.Fprintf(&b, "@media (max-width: %dpx) { .%s { display: none; } }\n", w-1, HideUnderClass(w))
	}
	return b.String()
}
