package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/philmade/gather-shop/internal/domain/catalog"
	"github.com/philmade/gather-shop/internal/infra/gelato"
	"github.com/philmade/gather-shop/internal/pkg/cache"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidOptions  = errors.New("invalid options")
	ErrVariantNotFound = errors.New("no catalog item matches the chosen options")
)

// searchPageSize is the page size used when enumerating a product's variants.
const searchPageSize = 100

// CatalogGateway is the upstream product catalog boundary.
type CatalogGateway interface {
	SearchProducts(ctx context.Context, catalogUID string, filters map[string]string, limit, offset int) ([]gelato.CatalogProduct, error)
	ProductPrice(ctx context.Context, productUID string) (decimal.Decimal, error)
}

// CatalogUseCase resolves logical products plus option choices to concrete
// upstream catalog items.
type CatalogUseCase interface {
	// ValidOptions lists, per configured option, the values that demonstrably
	// resolve to a purchasable item under the product's fixed filters.
	ValidOptions(ctx context.Context, productID string) (map[string][]string, error)

	// ValidateOptionKeys checks the option key set structurally: every
	// configured option present exactly once, nothing extra. Values are not
	// checked here; only resolution can establish value validity.
	ValidateOptionKeys(productID string, options map[string]string) error

	// ResolveVariant returns the upstream catalog item UID for the chosen
	// options, or ErrVariantNotFound when the combination does not exist.
	ResolveVariant(ctx context.Context, productID string, options map[string]string) (string, error)
}

// Garment sizes in standard display order rather than lexicographic.
var apparelSizeOrder = map[string]int{
	"XS": 0, "S": 1, "M": 2, "L": 3, "XL": 4,
	"2XL": 5, "3XL": 6, "4XL": 7, "5XL": 8,
}

const garmentSizeAttr = "GarmentSize"

type catalogUseCaseImpl struct {
	gateway CatalogGateway
	cache   *cache.Store
	ttl     config.CacheConfig
}

func NewCatalogUseCase(gateway CatalogGateway, cacheStore *cache.Store, ttl config.CacheConfig) CatalogUseCase {
	return &catalogUseCaseImpl{
		gateway: gateway,
		cache:   cacheStore,
		ttl:     ttl,
	}
}

func (u *catalogUseCaseImpl) ValidOptions(ctx context.Context, productID string) (map[string][]string, error) {
	def, ok := catalog.Lookup(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	options, _, err := cache.GetOrRefresh(ctx, u.cache, "valid_options:"+productID, u.ttl.CatalogTTL,
		func(ctx context.Context) (map[string][]string, error) {
			return u.fetchValidOptions(ctx, def)
		})
	if err != nil {
		return nil, errs.Wrap(err, "failed to list valid options")
	}
	return options, nil
}

// fetchValidOptions pages through every variant matching the fixed filters
// and collects the distinct attribute values actually observed. Values that
// never appear in a search hit are not offered, even if the upstream
// attribute vocabulary lists them.
func (u *catalogUseCaseImpl) fetchValidOptions(ctx context.Context, def catalog.ProductDefinition) (map[string][]string, error) {
	var all []gelato.CatalogProduct
	offset := 0
	for {
		batch, err := u.gateway.SearchProducts(ctx, def.GelatoCatalog, def.FixedFilters, searchPageSize, offset)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
		offset += len(batch)
	}

	options := make(map[string][]string, len(def.AgentOptions))
	for optName, gelatoAttr := range def.AgentOptions {
		seen := map[string]bool{}
		var values []string
		for _, p := range all {
			v := p.Attributes[gelatoAttr]
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		if gelatoAttr == garmentSizeAttr {
			sort.Slice(values, func(i, j int) bool {
				return sizeRank(values[i]) < sizeRank(values[j])
			})
		} else {
			sort.Strings(values)
		}
		options[optName] = values
	}
	return options, nil
}

func sizeRank(v string) int {
	if r, ok := apparelSizeOrder[v]; ok {
		return r
	}
	return len(apparelSizeOrder) + 1
}

func (u *catalogUseCaseImpl) ValidateOptionKeys(productID string, options map[string]string) error {
	def, ok := catalog.Lookup(productID)
	if !ok {
		return ErrProductNotFound
	}

	for optName := range def.AgentOptions {
		if _, present := options[optName]; !present {
			return errs.Mark(errs.Newf("missing required option '%s'", optName), ErrInvalidOptions)
		}
	}
	for optName := range options {
		if _, known := def.AgentOptions[optName]; !known {
			return errs.Mark(
				errs.Newf("unknown option '%s'. Valid options: %v", optName, optionNames(def)),
				ErrInvalidOptions)
		}
	}
	return nil
}

func optionNames(def catalog.ProductDefinition) []string {
	names := make([]string, 0, len(def.AgentOptions))
	for name := range def.AgentOptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (u *catalogUseCaseImpl) ResolveVariant(ctx context.Context, productID string, options map[string]string) (string, error) {
	def, ok := catalog.Lookup(productID)
	if !ok {
		return "", ErrProductNotFound
	}

	// The fixed filters define "our" product; the caller's choices narrow it
	// down to one variant. Unknown option names are simply not translated.
	filters := make(map[string]string, len(def.FixedFilters)+len(options))
	for k, v := range def.FixedFilters {
		filters[k] = v
	}
	for optName, optValue := range options {
		if gelatoAttr, known := def.AgentOptions[optName]; known {
			filters[gelatoAttr] = optValue
		}
	}

	// A zero-result search is a valid (cacheable) answer, not an error.
	uid, _, err := cache.GetOrRefresh(ctx, u.cache, variantCacheKey(productID, options), u.ttl.CatalogTTL,
		func(ctx context.Context) (string, error) {
			hits, err := u.gateway.SearchProducts(ctx, def.GelatoCatalog, filters, 1, 0)
			if err != nil {
				return "", err
			}
			if len(hits) == 0 {
				return "", nil
			}
			return hits[0].UID, nil
		})
	if err != nil {
		return "", errs.Wrap(err, "failed to resolve catalog item")
	}
	if uid == "" {
		return "", ErrVariantNotFound
	}
	return uid, nil
}

func variantCacheKey(productID string, options map[string]string) string {
	pairs := make([]string, 0, len(options))
	for k, v := range options {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("uid:%s:%s", productID, strings.Join(pairs, "&"))
}
