//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/philmade/gather-shop/internal/infra/gelato"
	"github.com/philmade/gather-shop/internal/pkg/cache"
	"github.com/philmade/gather-shop/internal/pkg/clock"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/usecase"
	usecasemock "github.com/philmade/gather-shop/tests/mock/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPricingUseCase(t *testing.T) (usecase.PricingUseCase, *usecasemock.MockCatalogGateway, *usecasemock.MockRateGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := usecasemock.NewMockCatalogGateway(ctrl)
	rates := usecasemock.NewMockRateGateway(ctrl)
	ttl := config.NewTestConfig().Cache
	store := cache.NewStore(clock.NewMockClock(time.Now()))
	catalogUC := usecase.NewCatalogUseCase(gateway, store, ttl)
	return usecase.NewPricingUseCase(catalogUC, gateway, rates, store, ttl), gateway, rates
}

func TestPricingUseCase_Quote(t *testing.T) {
	ctx := context.Background()
	options := map[string]string{"size": "M", "color": "Black"}

	t.Run("sell price is cost plus margin converted at the live rate", func(t *testing.T) {
		uc, gateway, rates := newPricingUseCase(t)

		gateway.EXPECT().SearchProducts(ctx, gomock.Any(), gomock.Any(), 1, 0).
			Return([]gelato.CatalogProduct{{UID: "variant-42"}}, nil)
		gateway.EXPECT().ProductPrice(ctx, "variant-42").
			Return(decimal.RequireFromString("10"), nil)
		rates.EXPECT().Rate(ctx).Return(decimal.RequireFromString("500"), nil)

		price, err := uc.Quote(ctx, "t-shirt", options)
		require.NoError(t, err)

		// 10 USD cost, 40% margin, 500 USD/BCH: 14 / 500 = 0.028 BCH.
		assert.Equal(t, "0.028000", usecase.FormatBCH(price))
	})

	t.Run("quotes round to six decimal places", func(t *testing.T) {
		uc, gateway, rates := newPricingUseCase(t)

		gateway.EXPECT().SearchProducts(ctx, gomock.Any(), gomock.Any(), 1, 0).
			Return([]gelato.CatalogProduct{{UID: "variant-42"}}, nil)
		gateway.EXPECT().ProductPrice(ctx, "variant-42").
			Return(decimal.RequireFromString("9.99"), nil)
		rates.EXPECT().Rate(ctx).Return(decimal.RequireFromString("543.21"), nil)

		price, err := uc.Quote(ctx, "t-shirt", options)
		require.NoError(t, err)

		// 13.986 / 543.21 = 0.02574695... rounds to 0.025747.
		assert.Equal(t, "0.025747", usecase.FormatBCH(price))
	})

	t.Run("nil options price the reference variant", func(t *testing.T) {
		uc, gateway, rates := newPricingUseCase(t)

		gateway.EXPECT().SearchProducts(ctx, gomock.Any(), gomock.Any(), 1, 0).
			DoAndReturn(func(_ context.Context, _ string, filters map[string]string, _, _ int) ([]gelato.CatalogProduct, error) {
				assert.Equal(t, "M", filters["GarmentSize"])
				assert.Equal(t, "white", filters["GarmentColor"])
				return []gelato.CatalogProduct{{UID: "ref-variant"}}, nil
			})
		gateway.EXPECT().ProductPrice(ctx, "ref-variant").
			Return(decimal.RequireFromString("10"), nil)
		rates.EXPECT().Rate(ctx).Return(decimal.RequireFromString("700"), nil)

		_, err := uc.Quote(ctx, "t-shirt", nil)
		assert.NoError(t, err)
	})

	t.Run("nonexistent combination is not a pricing failure", func(t *testing.T) {
		uc, gateway, _ := newPricingUseCase(t)

		gateway.EXPECT().SearchProducts(ctx, gomock.Any(), gomock.Any(), 1, 0).Return(nil, nil)

		_, err := uc.Quote(ctx, "t-shirt", options)
		assert.ErrorIs(t, err, usecase.ErrVariantNotFound)
		assert.NotErrorIs(t, err, usecase.ErrPriceUnavailable)
	})

	t.Run("rate outage with empty cache is a transient failure", func(t *testing.T) {
		uc, gateway, rates := newPricingUseCase(t)

		gateway.EXPECT().SearchProducts(ctx, gomock.Any(), gomock.Any(), 1, 0).
			Return([]gelato.CatalogProduct{{UID: "variant-42"}}, nil)
		gateway.EXPECT().ProductPrice(ctx, "variant-42").
			Return(decimal.RequireFromString("10"), nil)
		rates.EXPECT().Rate(ctx).Return(decimal.Decimal{}, errors.New("rate limit"))

		_, err := uc.Quote(ctx, "t-shirt", options)
		assert.ErrorIs(t, err, usecase.ErrPriceUnavailable)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, _ := newPricingUseCase(t)
		_, err := uc.Quote(ctx, "hoverboard", nil)
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})
}
