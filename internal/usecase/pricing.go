package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/philmade/gather-shop/internal/domain/catalog"
	"github.com/philmade/gather-shop/internal/pkg/cache"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

// ErrPriceUnavailable means the price cannot be computed right now (upstream
// cost or exchange rate unreachable with no cached value). It is transient;
// callers surface it as retryable, never as an order-validation failure.
var ErrPriceUnavailable = errors.New("price unavailable")

// priceDecimals is the number of decimal places quoted for BCH amounts, the
// smallest practical unit for this shop.
const priceDecimals = 6

// RateGateway is the fiat/crypto exchange rate boundary (USD per BCH).
type RateGateway interface {
	Rate(ctx context.Context) (decimal.Decimal, error)
}

// PricingUseCase computes live BCH sell prices from upstream USD cost, the
// product margin and the current exchange rate.
type PricingUseCase interface {
	// Quote prices the variant selected by options; nil options price the
	// product's reference variant for indicative "from" listings. Fails with
	// ErrVariantNotFound for a nonexistent combination and
	// ErrPriceUnavailable for transient upstream trouble.
	Quote(ctx context.Context, productID string, options map[string]string) (decimal.Decimal, error)
}

type pricingUseCaseImpl struct {
	catalog CatalogUseCase
	gateway CatalogGateway
	rates   RateGateway
	cache   *cache.Store
	ttl     config.CacheConfig
}

func NewPricingUseCase(catalogUC CatalogUseCase, gateway CatalogGateway, rates RateGateway, cacheStore *cache.Store, ttl config.CacheConfig) PricingUseCase {
	return &pricingUseCaseImpl{
		catalog: catalogUC,
		gateway: gateway,
		rates:   rates,
		cache:   cacheStore,
		ttl:     ttl,
	}
}

func (u *pricingUseCaseImpl) Quote(ctx context.Context, productID string, options map[string]string) (decimal.Decimal, error) {
	def, ok := catalog.Lookup(productID)
	if !ok {
		return decimal.Decimal{}, ErrProductNotFound
	}

	choices := options
	if choices == nil {
		choices = def.ReferenceVariant
	}

	uid, err := u.catalog.ResolveVariant(ctx, productID, choices)
	if err != nil {
		if errors.Is(err, ErrVariantNotFound) {
			return decimal.Decimal{}, err
		}
		return decimal.Decimal{}, errs.Mark(err, ErrPriceUnavailable)
	}

	costUSD, _, err := cache.GetOrRefresh(ctx, u.cache, "price_usd:"+uid, u.ttl.PriceTTL,
		func(ctx context.Context) (decimal.Decimal, error) {
			return u.gateway.ProductPrice(ctx, uid)
		})
	if err != nil {
		return decimal.Decimal{}, errs.Mark(err, ErrPriceUnavailable)
	}

	rate, _, err := cache.GetOrRefresh(ctx, u.cache, "bch_rate", u.ttl.RateTTL,
		func(ctx context.Context) (decimal.Decimal, error) {
			return u.rates.Rate(ctx)
		})
	if err != nil {
		return decimal.Decimal{}, errs.Mark(err, ErrPriceUnavailable)
	}

	// sell = cost * (1 + margin/100) / rate, quoted to 6 decimal places.
	margin := decimal.NewFromInt(1).Add(def.MarginPct.Div(decimal.NewFromInt(100)))
	return costUSD.Mul(margin).DivRound(rate, priceDecimals), nil
}

// FormatBCH renders an amount the way the API quotes it: a fixed 6-decimal
// string.
func FormatBCH(amount decimal.Decimal) string {
	return amount.StringFixed(priceDecimals)
}
