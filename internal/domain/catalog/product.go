// Package catalog holds the static product definitions the shop sells.
//
// The definitions are the only manual part of the catalog: they say WHICH
// Gelato products we sell and HOW to present them. Available option values,
// concrete product UIDs and USD costs all come live from Gelato's catalog API.
package catalog

import "github.com/shopspring/decimal"

// ProductDefinition scopes an upstream Gelato catalog down to "our" variant of
// a product and maps agent-facing option names onto Gelato attribute keys.
type ProductDefinition struct {
	ID          string
	Name        string
	Description string

	// GelatoCatalog is the upstream catalog UID searched for this product.
	GelatoCatalog string

	// FixedFilters are applied to every search; they define our variant.
	FixedFilters map[string]string

	// AgentOptions maps option names callers use (size, color, ...) to the
	// Gelato attribute UID each one selects on.
	AgentOptions map[string]string

	// ReferenceVariant is the default option set used for menu "from" pricing.
	ReferenceVariant map[string]string

	// DesignURL is the artwork sent to Gelato for printing.
	DesignURL string

	// MarginPct is the markup applied over Gelato's cost price.
	MarginPct decimal.Decimal
}

var defaultMargin = decimal.NewFromInt(40)

// Definitions is the fixed product table, immutable for the process lifetime.
var Definitions = map[string]ProductDefinition{
	"t-shirt": {
		ID:            "t-shirt",
		Name:          "T-Shirt",
		Description:   "Unisex crewneck, printed front",
		GelatoCatalog: "t-shirts",
		FixedFilters: map[string]string{
			"GarmentCut":         "unisex",
			"GarmentSubcategory": "crewneck",
			"GarmentQuality":     "classic",
			"GarmentPrint":       "4-0",
			"ProductStatus":      "activated",
		},
		AgentOptions:     map[string]string{"size": "GarmentSize", "color": "GarmentColor"},
		ReferenceVariant: map[string]string{"size": "M", "color": "white"},
		DesignURL:        "https://placehold.co/4000x5000/png?text=Design+Placeholder",
		MarginPct:        defaultMargin,
	},
	"mug": {
		ID:            "mug",
		Name:          "Ceramic Mug",
		Description:   "White ceramic, printed wrap",
		GelatoCatalog: "mugs",
		FixedFilters: map[string]string{
			"MugMaterial":   "ceramic-white",
			"ProductStatus": "activated",
		},
		AgentOptions:     map[string]string{"size": "MugSize"},
		ReferenceVariant: map[string]string{"size": "11-oz"},
		DesignURL:        "https://placehold.co/4000x2000/png?text=Design+Placeholder",
		MarginPct:        defaultMargin,
	},
	"framed-print": {
		ID:            "framed-print",
		Name:          "Framed Print",
		Description:   "Black wood frame, plexiglass front",
		GelatoCatalog: "framed-posters",
		FixedFilters: map[string]string{
			"FrameColor":    "black",
			"FrameMaterial": "wood",
			"ProductStatus": "activated",
		},
		AgentOptions:     map[string]string{"size": "PaperFormat", "orientation": "Orientation"},
		ReferenceVariant: map[string]string{"size": "a3", "orientation": "ver"},
		DesignURL:        "https://placehold.co/3000x4000/png?text=Design+Placeholder",
		MarginPct:        defaultMargin,
	},
}

// DisplayOrder preserves menu ordering; map iteration is not stable.
var DisplayOrder = []string{"t-shirt", "mug", "framed-print"}

func Lookup(productID string) (ProductDefinition, bool) {
	def, ok := Definitions[productID]
	return def, ok
}
