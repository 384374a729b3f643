// Package menu holds the hardcoded cake demo menu and its browsing logic.
// Real shippable products are priced live and handled by the catalog and
// pricing usecases instead.
package menu

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const ItemsPerPage = 5

// Item is a single purchasable entry within a category.
type Item struct {
	ID        string
	Name      string
	Available bool
	PriceBCH  decimal.Decimal
}

// Category groups items under a browsable id.
type Category struct {
	ID    string
	Name  string
	Items []Item
}

func bch(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var flavors = []Item{
	{ID: "chocolate", Name: "Chocolate Fudge", Available: true, PriceBCH: bch("0.010")},
	{ID: "vanilla", Name: "Classic Vanilla", Available: true, PriceBCH: bch("0.009")},
	{ID: "red_velvet", Name: "Red Velvet", Available: true, PriceBCH: bch("0.011")},
	{ID: "lemon", Name: "Lemon Zest", Available: true, PriceBCH: bch("0.010")},
	{ID: "carrot", Name: "Carrot Cake", Available: true, PriceBCH: bch("0.010")},
}

var sizes = []Item{
	{ID: "small", Name: "Small (6 inch)", Available: true, PriceBCH: bch("0.000")},
	{ID: "medium", Name: "Medium (8 inch)", Available: true, PriceBCH: bch("0.005")},
	{ID: "large", Name: "Large (10 inch)", Available: true, PriceBCH: bch("0.010")},
}

var toppings = []Item{
	{ID: "sprinkles", Name: "Rainbow Sprinkles", Available: true, PriceBCH: bch("0.001")},
	{ID: "caramel_drizzle", Name: "Caramel Drizzle", Available: true, PriceBCH: bch("0.002")},
	{ID: "fresh_berries", Name: "Fresh Berries", Available: true, PriceBCH: bch("0.003")},
	{ID: "chocolate_shavings", Name: "Chocolate Shavings", Available: true, PriceBCH: bch("0.002")},
	{ID: "whipped_cream", Name: "Whipped Cream", Available: true, PriceBCH: bch("0.001")},
	{ID: "fondant_flowers", Name: "Fondant Flowers", Available: true, PriceBCH: bch("0.004")},
	{ID: "edible_gold", Name: "Edible Gold Leaf", Available: true, PriceBCH: bch("0.008")},
	{ID: "custom_text", Name: "Custom Text Topper", Available: true, PriceBCH: bch("0.002")},
}

var categories = []Category{
	{ID: "flavors", Name: "Cake Flavors", Items: flavors},
	{ID: "sizes", Name: "Cake Sizes", Items: sizes},
	{ID: "toppings", Name: "Toppings & Add-ons", Items: toppings},
}

// CakeCategories returns the cake category listing in display order.
func CakeCategories() []Category {
	return categories
}

// IsCakeCategory reports whether id names a cake category.
func IsCakeCategory(id string) bool {
	_, ok := findCategory(id)
	return ok
}

func findCategory(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Page is one page of a category listing.
type Page struct {
	Items      []Item
	Number     int
	TotalPages int
	HasNext    bool
}

// Paginate slices items into pages of size perPage, clamping page into the
// valid range instead of erroring past the end.
func Paginate(items []Item, page, perPage int) Page {
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

// CategoryPage returns one page of a cake category, or false for an unknown
// category.
func CategoryPage(id string, page int) (Page, bool) {
	c, ok := findCategory(id)
	if !ok {
		return Page{}, false
	}
	return Paginate(c.Items, page, ItemsPerPage), true
}

func itemPrice(items []Item, id string) (decimal.Decimal, bool) {
	for _, it := range items {
		if it.ID == id {
			return it.PriceBCH, true
		}
	}
	return decimal.Decimal{}, false
}

// CakeTotal sums flavor + size + toppings. On failure it returns the list of
// invalid selections, phrased so callers can point at the menu endpoint that
// lists valid ids.
func CakeTotal(flavor, size string, toppingIDs []string) (decimal.Decimal, []string) {
	var invalid []string
	total := decimal.Zero

	if p, ok := itemPrice(flavors, flavor); ok {
		total = total.Add(p)
	} else {
		invalid = append(invalid, fmt.Sprintf("flavor '%s' (see GET /menu/flavors)", flavor))
	}

	if p, ok := itemPrice(sizes, size); ok {
		total = total.Add(p)
	} else {
		invalid = append(invalid, fmt.Sprintf("size '%s' (see GET /menu/sizes)", size))
	}

	var badToppings []string
	for _, id := range toppingIDs {
		if p, ok := itemPrice(toppings, id); ok {
			total = total.Add(p)
		} else {
			badToppings = append(badToppings, id)
		}
	}
	if len(badToppings) > 0 {
		invalid = append(invalid, fmt.Sprintf("toppings %v (see GET /menu/toppings)", badToppings))
	}

	if len(invalid) > 0 {
		return decimal.Decimal{}, invalid
	}
	return total, nil
}
