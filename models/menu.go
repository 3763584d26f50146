package models

type Review struct {
	User    string
	Comment string
	Stars   int // 0 when no stars were picked
}

// FoodItem is a catalog entry. Items are built once at startup and treated as read-only.
type FoodItem struct {
	ID          string
	Name        string
	Category    string
	Price       int64
	Description string
	Ingredients string
	Rating      float64
	Reviews     []Review
}

const (
	CategoryAll        = "all" // sentinel: no filtering
	CategorySeafood    = "seafood"
	CategorySandwiches = "sandwiches"
	CategoryMains      = "mains"
	CategorySoups      = "soups"
	CategoryAppetizers = "appetizers"
	CategoryDrinks     = "drinks"
)

// Categories lists every selectable category in display order, sentinel first.
var Categories = []string{
	CategoryAll,
	CategorySeafood,
	CategorySandwiches,
	CategoryMains,
	CategorySoups,
	CategoryAppetizers,
	CategoryDrinks,
}
