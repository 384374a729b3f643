//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/philmade/gather-shop/internal/usecase"
	usecasemock "github.com/philmade/gather-shop/tests/mock/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMenuUseCase(t *testing.T, apiKey string) (usecase.MenuUseCase, *usecasemock.MockPricingUseCase, *usecasemock.MockCatalogUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pricing := usecasemock.NewMockPricingUseCase(ctrl)
	catalogUC := usecasemock.NewMockCatalogUseCase(ctrl)
	return usecase.NewMenuUseCase(pricing, catalogUC, apiKey), pricing, catalogUC
}

func TestMenuUseCase_Categories(t *testing.T) {
	uc, _, _ := newMenuUseCase(t, "key")

	categories := uc.Categories(context.Background())

	var ids []string
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"flavors", "sizes", "toppings", "products"}, ids)

	flavors := categories[0]
	assert.Equal(t, 5, flavors.Count)
	assert.Equal(t, "/menu/flavors", flavors.Href)

	products := categories[3]
	assert.Equal(t, 3, products.Count)
	assert.Equal(t, "/menu/products", products.Href)
}

func TestMenuUseCase_CategoryItems(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newMenuUseCase(t, "key")

	t.Run("first page of toppings", func(t *testing.T) {
		page, err := uc.CategoryItems(ctx, "toppings", 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 2, page.TotalPages)
		assert.True(t, page.HasNext)
	})

	t.Run("page past the end clamps to the last page", func(t *testing.T) {
		page, err := uc.CategoryItems(ctx, "toppings", 99)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Number)
		assert.False(t, page.HasNext)
		assert.Len(t, page.Items, 3)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := uc.CategoryItems(ctx, "drinks", 1)
		assert.ErrorIs(t, err, usecase.ErrCategoryNotFound)
	})
}

func TestMenuUseCase_ProductsCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("pages like any other category with each product priced independently", func(t *testing.T) {
		uc, pricing, _ := newMenuUseCase(t, "key")

		pricing.EXPECT().Quote(ctx, "t-shirt", nil).Return(decimal.RequireFromString("0.028"), nil)
		pricing.EXPECT().Quote(ctx, "mug", nil).Return(decimal.Decimal{}, usecase.ErrPriceUnavailable)
		pricing.EXPECT().Quote(ctx, "framed-print", nil).Return(decimal.RequireFromString("0.0392"), nil)

		page, err := uc.CategoryItems(ctx, "products", 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, 1, page.Number)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasNext)

		assert.Equal(t, "t-shirt", page.Items[0].ID)
		assert.True(t, page.Items[0].Available)
		assert.Equal(t, "0.028", page.Items[0].PriceBCH.String())

		assert.Equal(t, "mug", page.Items[1].ID)
		assert.False(t, page.Items[1].Available)
		assert.True(t, page.Items[1].PriceBCH.IsZero())

		assert.Equal(t, "framed-print", page.Items[2].ID)
		assert.True(t, page.Items[2].Available)
		assert.Equal(t, "0.0392", page.Items[2].PriceBCH.String())
	})

	t.Run("without credentials everything lists as unavailable", func(t *testing.T) {
		uc, _, _ := newMenuUseCase(t, "")

		page, err := uc.CategoryItems(ctx, "products", 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		for _, item := range page.Items {
			assert.False(t, item.Available)
			assert.True(t, item.PriceBCH.IsZero())
		}
	})
}

func TestMenuUseCase_ProductOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the option sheet", func(t *testing.T) {
		uc, _, catalogUC := newMenuUseCase(t, "key")
		catalogUC.EXPECT().ValidOptions(ctx, "t-shirt").
			Return(map[string][]string{"size": {"S", "M", "L"}, "color": {"Black", "White"}}, nil)

		detail, err := uc.ProductOptions(ctx, "t-shirt")
		require.NoError(t, err)
		assert.Equal(t, "T-Shirt", detail.Name)
		assert.Equal(t, []string{"S", "M", "L"}, detail.Options["size"])
	})

	t.Run("without credentials the sheet is empty rather than an error", func(t *testing.T) {
		uc, _, _ := newMenuUseCase(t, "")

		detail, err := uc.ProductOptions(ctx, "mug")
		require.NoError(t, err)
		assert.Empty(t, detail.Options)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, _ := newMenuUseCase(t, "key")
		_, err := uc.ProductOptions(ctx, "hoverboard")
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})
}
