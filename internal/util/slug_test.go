package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"基本轉換", "Vintage Leather Jacket", "vintage-leather-jacket"},
		{"特殊字元合併為單一連字號", "Gucci -- Marmont (2019)", "gucci-marmont-2019"},
		{"前後符號去除", "  !!Sale!!  ", "sale"},
		{"保留數字", "Air Max 97", "air-max-97"},
		{"空字串", "", ""},
		{"全符號", "!!!", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, Slugify(c.input))
		})
	}
}
