package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/philmade/gather-shop/internal/domain/catalog"
	"github.com/philmade/gather-shop/internal/domain/menu"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

var ErrCategoryNotFound = errs.New("menu category not found")

// CategorySummary is one entry of the top-level menu listing.
type CategorySummary struct {
	ID    string
	Name  string
	Count int
	Href  string
}

// ProductDetail is the option sheet for one product: which options an order
// must choose and the values known to resolve.
type ProductDetail struct {
	ID          string
	Name        string
	Description string
	Options     map[string][]string
}

type MenuUseCase interface {
	// Categories lists every browsable menu category, cake sections first and
	// the shippable products section last.
	Categories(ctx context.Context) []CategorySummary

	// CategoryItems returns one page of a category. The products category is
	// priced live per item; cake categories page through static data.
	CategoryItems(ctx context.Context, categoryID string, page int) (menu.Page, error)

	// ProductOptions returns the option sheet for one product.
	ProductOptions(ctx context.Context, productID string) (*ProductDetail, error)
}

type menuUseCaseImpl struct {
	pricing    PricingUseCase
	catalog    CatalogUseCase
	haveAPIKey bool
}

func NewMenuUseCase(pricing PricingUseCase, catalogUC CatalogUseCase, gelatoAPIKey string) MenuUseCase {
	return &menuUseCaseImpl{
		pricing:    pricing,
		catalog:    catalogUC,
		haveAPIKey: gelatoAPIKey != "",
	}
}

const productsCategoryID = "products"

func (u *menuUseCaseImpl) Categories(_ context.Context) []CategorySummary {
	var out []CategorySummary
	for _, c := range menu.CakeCategories() {
		out = append(out, CategorySummary{
			ID:    c.ID,
			Name:  c.Name,
			Count: len(c.Items),
			Href:  "/menu/" + c.ID,
		})
	}
	out = append(out, CategorySummary{
		ID:    productsCategoryID,
		Name:  "Shippable Products",
		Count: len(catalog.DisplayOrder),
		Href:  "/menu/" + productsCategoryID,
	})
	return out
}

func (u *menuUseCaseImpl) CategoryItems(ctx context.Context, categoryID string, page int) (menu.Page, error) {
	if categoryID == productsCategoryID {
		return menu.Paginate(u.productItems(ctx), page, menu.ItemsPerPage), nil
	}

	p, ok := menu.CategoryPage(categoryID, page)
	if !ok {
		return menu.Page{}, errs.Mark(
			errs.Newf("Category '%s' not found. See GET /menu.", categoryID),
			ErrCategoryNotFound)
	}
	return p, nil
}

// productItems builds the shippable-product menu items with live indicative
// prices. Each product is priced independently; a product whose price cannot
// be fetched is listed as unavailable rather than failing the whole page.
func (u *menuUseCaseImpl) productItems(ctx context.Context) []menu.Item {
	items := make([]menu.Item, len(catalog.DisplayOrder))

	var wg sync.WaitGroup
	for i, id := range catalog.DisplayOrder {
		def, _ := catalog.Lookup(id)
		items[i] = menu.Item{
			ID:       def.ID,
			Name:     fmt.Sprintf("%s - %s", def.Name, def.Description),
			PriceBCH: decimal.Zero,
		}

		// Without credentials the upstream catalog cannot be queried, so the
		// shop lists products as unavailable instead of erroring per request.
		if !u.haveAPIKey {
			continue
		}

		i, def := i, def
		wg.Add(1)
		go func() {
			defer wg.Done()
			price, err := u.pricing.Quote(ctx, def.ID, nil)
			if err != nil {
				return
			}
			items[i].PriceBCH = price
			items[i].Available = true
		}()
	}
	wg.Wait()

	return items
}

func (u *menuUseCaseImpl) ProductOptions(ctx context.Context, productID string) (*ProductDetail, error) {
	def, ok := catalog.Lookup(productID)
	if !ok {
		return nil, errs.Mark(
			errs.Newf("Product '%s' not found. See GET /menu/products.", productID),
			ErrProductNotFound)
	}

	options := map[string][]string{}
	if u.haveAPIKey {
		fetched, err := u.catalog.ValidOptions(ctx, productID)
		if err != nil {
			return nil, err
		}
		options = fetched
	}

	return &ProductDetail{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Options:     options,
	}, nil
}
