package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	cases := map[string]string{
		"AMD Ryzen 7 7800X3D":          "amd-ryzen-7-7800x3d",
		"  Corsair RM850x (2021)  ":    "corsair-rm850x-2021",
		"Þráðlaus mús, Ægir Örn":       "thradlaus-mus-aegir-orn",
		"---":                          "component",
		"Samsung 990 PRO 2TB M.2 NVMe": "samsung-990-pro-2tb-m-2-nvme",
	}
	for in, want := range cases {
		assert.Equal(t, want, FromName(in), in)
	}
}

func TestFromNameTruncates(t *testing.T) {
	got := FromName(strings.Repeat("ab ", 60))

	assert.LessOrEqual(t, len(got), MaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
}
