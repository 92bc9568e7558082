package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_GalleryIsComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 28)

	seen := map[string]bool{}
	for _, p := range all {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory("All"), 28)
	assert.Len(t, ByCategory("Lips"), 5)
	assert.Len(t, ByCategory("Sponges"), 6)
	assert.Len(t, ByCategory("Bags"), 3)
	assert.Empty(t, ByCategory("Nonexistent"))

	for _, p := range ByCategory("Skin Care") {
		assert.Equal(t, "Skin Care", p.Category)
	}
}

func TestByID(t *testing.T) {
	p, ok := ByID("lip-3")
	require.True(t, ok)
	assert.Equal(t, "MTF Lipstick", p.Name)

	_, ok = ByID("nope")
	assert.False(t, ok)
}

func TestEveryProductBelongsToAKnownCategory(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Categories {
		known[c] = true
	}
	for _, p := range All() {
		assert.True(t, known[p.Category], "product %s has unknown category %q", p.ID, p.Category)
	}
}

func TestPriceValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$12.50", 12.50},
		{"$7", 7},
		{" $3.99 ", 3.99},
		{"Coming Soon", 0},
		{"", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, PriceValue(tc.in), "PriceValue(%q)", tc.in)
	}
}
