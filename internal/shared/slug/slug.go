// Package slug turns component names into stable ids for imported parts.
package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

var icelandic = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ý", "y",
	"þ", "th", "ð", "d", "æ", "ae", "ö", "o",
)

// MaxLen matches the width of the component id column.
const MaxLen = 96

func FromName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = icelandic.Replace(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLen {
		s = strings.TrimRight(s[:MaxLen], "-")
	}
	if s == "" {
		return "component"
	}
	return s
}
