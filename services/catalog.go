package services

import (
	"errors"
	"fmt"

	"food-storefront/models"
)

var ErrItemNotFound = errors.New("item not found")

// Catalog is the fixed, read-only menu. Lookups hand out copies so callers
// cannot mutate shared entries.
type Catalog struct {
	items []models.FoodItem
	byID  map[string]int
}

func NewCatalog(items []models.FoodItem) *Catalog {
	c := &Catalog{
		items: make([]models.FoodItem, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range items {
		c.items[i] = cloneItem(it)
		c.byID[it.ID] = i
	}
	return c
}

// DefaultCatalog returns the restaurant's built-in menu.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultItems)
}

func (c *Catalog) Items() []models.FoodItem {
	out := make([]models.FoodItem, len(c.items))
	for i, it := range c.items {
		out[i] = cloneItem(it)
	}
	return out
}

func (c *Catalog) Item(id string) (models.FoodItem, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.FoodItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return cloneItem(c.items[i]), nil
}

// Filter is FilterByCategory over the whole catalog.
func (c *Catalog) Filter(category string) []models.FoodItem {
	return FilterByCategory(c.Items(), category)
}

// FilterByCategory returns the items whose category equals the selector,
// keeping source order. CategoryAll returns everything.
func FilterByCategory(items []models.FoodItem, category string) []models.FoodItem {
	if category == models.CategoryAll {
		out := make([]models.FoodItem, len(items))
		copy(out, items)
		return out
	}
	out := []models.FoodItem{}
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

func ValidCategory(category string) bool {
	for _, c := range models.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func cloneItem(it models.FoodItem) models.FoodItem {
	if it.Reviews != nil {
		reviews := make([]models.Review, len(it.Reviews))
		copy(reviews, it.Reviews)
		it.Reviews = reviews
	}
	return it
}

var defaultItems = []models.FoodItem{
	{
		ID:          "1",
		Name:        "جمبري مشوي",
		Category:    models.CategorySeafood,
		Price:       150,
		Description: "جمبري طازج مشوي مع صلصة الليمون والأعشاب.",
		Ingredients: "جمبري، ليمون، ثوم، بقدونس",
		Rating:      4.5,
		Reviews:     []models.Review{{User: "أحمد", Comment: "طعم رائع!"}},
	},
	{
		ID:          "2",
		Name:        "برجر دجاج",
		Category:    models.CategorySandwiches,
		Price:       45,
		Description: "ساندويش برجر دجاج مقرمش مع الجبنة.",
		Ingredients: "خبز، دجاج، خس، جبنة شيدر",
		Rating:      4.0,
	},
	{
		ID:          "3",
		Name:        "ستيك لحم",
		Category:    models.CategoryMains,
		Price:       200,
		Description: "قطعة ستيك ريب آي بصوص المشروم.",
		Ingredients: "لحم بقري، مشروم، كريمة",
		Rating:      4.8,
	},
	{
		ID:          "4",
		Name:        "شوربة عدس",
		Category:    models.CategorySoups,
		Price:       25,
		Description: "شوربة عدس ساخنة مع الخبز المحمص.",
		Ingredients: "عدس، جزر، بصل",
		Rating:      4.2,
	},
}
