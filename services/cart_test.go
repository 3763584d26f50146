package services

import (
	"testing"

	"food-storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = models.FoodItem{ID: "2", Name: "burger", Category: models.CategorySandwiches, Price: 45}
	shrimp = models.FoodItem{ID: "1", Name: "shrimp", Category: models.CategorySeafood, Price: 150,
		Reviews: []models.Review{{User: "a", Comment: "ok"}}}
)

func TestCartAddSameItemIncrementsQty(t *testing.T) {
	c := NewCart()
	assert.Equal(t, 1, c.Add(burger))
	assert.Equal(t, 2, c.Add(burger))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "2", lines[0].ID)
	assert.Equal(t, 2, lines[0].Qty)
}

func TestCartTotal(t *testing.T) {
	c := NewCart()
	assert.Equal(t, int64(0), c.Total())
	assert.True(t, c.IsEmpty())

	c.Add(burger)
	c.Add(burger)
	c.Add(shrimp)
	assert.Equal(t, int64(240), c.Total())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Quantity())
}

func TestCartTotalMatchesLines(t *testing.T) {
	items := []models.FoodItem{burger, shrimp, burger, {ID: "4", Price: 25}, shrimp, burger}
	c := NewCart()
	for i, it := range items {
		c.Add(it)
		var want int64
		for _, l := range c.Lines() {
			want += l.Price * int64(l.Qty)
		}
		assert.Equal(t, want, c.Total(), "after %d adds", i+1)
	}
	assert.Equal(t, int64(45*3+150*2+25), c.Total())
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	c := NewCart()
	c.Add(shrimp)
	c.Add(burger)
	c.Add(shrimp)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"1", "2"}, []string{lines[0].ID, lines[1].ID})
	assert.Nil(t, lines[0].Reviews)
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	c.Add(burger)
	c.Add(shrimp)
	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Total())

	assert.Equal(t, 1, c.Add(burger), "cleared cart starts a fresh line")
}

func TestCartLinesIsCopy(t *testing.T) {
	c := NewCart()
	c.Add(burger)
	lines := c.Lines()
	lines[0].Qty = 99
	assert.Equal(t, int64(45), c.Total())
}
