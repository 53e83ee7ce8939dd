package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProduct(t *testing.T) {
	p, ok := ParseProduct("P1 Widget gym 10.5 sale,new")
	require.True(t, ok)
	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, CategoryGym, p.Category)
	assert.Equal(t, 10.5, p.Price)
	assert.Equal(t, []string{"sale", "new"}, p.Labels)
}

func TestParseProductWithoutLabels(t *testing.T) {
	p, ok := ParseProduct("P2 Gadget technology 20")
	require.True(t, ok)
	assert.Empty(t, p.Labels)
	assert.Equal(t, 20.0, p.Price)
}

func TestParseProductTrailingWhitespaceYieldsNoLabels(t *testing.T) {
	// A line ending in whitespace has no labels field at all, not a single
	// empty-string label.
	p, ok := ParseProduct("P3 Thing none 5 ")
	require.True(t, ok)
	assert.Empty(t, p.Labels)
}

func TestParseProductLabelsAreLowercased(t *testing.T) {
	p, ok := ParseProduct("P4 Lamp tables 9.99 SALE,Clearance")
	require.True(t, ok)
	assert.Equal(t, []string{"sale", "clearance"}, p.Labels)
}

func TestParseProductRejectsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"blank line", "   "},
		{"one field", "P1"},
		{"two fields", "P1 Widget"},
		{"three fields", "P1 Widget gym"},
		{"non-numeric price", "P1 Widget gym abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseProduct(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParseProductUnknownCategoryMapsToNone(t *testing.T) {
	p, ok := ParseProduct("P5 Chair furniture 30")
	require.True(t, ok)
	assert.Equal(t, CategoryNone, p.Category)
}

func TestParseCategoryIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryGym, ParseCategory("GYM"))
	assert.Equal(t, CategoryTechnology, ParseCategory("Technology"))
	assert.Equal(t, CategoryVideogames, ParseCategory("videogames"))
	assert.Equal(t, CategoryNone, ParseCategory("nonsense"))
	assert.Equal(t, CategoryNone, ParseCategory(""))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "None", CategoryNone.String())
	assert.Equal(t, "Gym", CategoryGym.String())
	assert.Equal(t, "Tablegames", CategoryTablegames.String())
	assert.Equal(t, "Tables", CategoryTables.String())
}

func TestProductString(t *testing.T) {
	p, ok := ParseProduct("P1 Widget gym 10.5 sale,new")
	require.True(t, ok)
	assert.Equal(t,
		"Product with id: P1, name: Widget, category: Gym, and price: $10.5",
		p.String())
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "10.5", FormatPrice(10.5))
	assert.Equal(t, "20", FormatPrice(20))
	assert.Equal(t, "0", FormatPrice(0))
	assert.Equal(t, "31.5", FormatPrice(31.5))
}
