//go:build e2e

package shop_test

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philmade/gather-shop/internal/handler"
	"github.com/philmade/gather-shop/internal/handler/api"
	resdto "github.com/philmade/gather-shop/internal/handler/dto/response"
	"github.com/philmade/gather-shop/internal/infra"
	"github.com/philmade/gather-shop/internal/infra/blockchair"
	"github.com/philmade/gather-shop/internal/infra/gelato"
	"github.com/philmade/gather-shop/internal/infra/store"
	"github.com/philmade/gather-shop/internal/pkg/cache"
	"github.com/philmade/gather-shop/internal/pkg/clock"
	"github.com/philmade/gather-shop/internal/pkg/config"
	"github.com/philmade/gather-shop/internal/usecase"
	"github.com/philmade/gather-shop/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeCatalog serves a small fixed variant table the way the upstream catalog
// search does: filters narrow, pagination slices.
type fakeCatalog struct {
	variants []gelato.CatalogProduct
	costUSD  decimal.Decimal
}

func (f *fakeCatalog) SearchProducts(_ context.Context, _ string, filters map[string]string, limit, offset int) ([]gelato.CatalogProduct, error) {
	var hits []gelato.CatalogProduct
	for _, v := range f.variants {
		match := true
		for k, want := range filters {
			if have, ok := v.Attributes[k]; ok && have != want {
				match = false
				break
			}
		}
		if match {
			hits = append(hits, v)
		}
	}
	if offset >= len(hits) {
		return nil, nil
	}
	end := offset + limit
	if end > len(hits) {
		end = len(hits)
	}
	return hits[offset:end], nil
}

func (f *fakeCatalog) ProductPrice(_ context.Context, _ string) (decimal.Decimal, error) {
	return f.costUSD, nil
}

type fakeRates struct {
	usdPerBCH decimal.Decimal
}

func (f *fakeRates) Rate(_ context.Context) (decimal.Decimal, error) {
	return f.usdPerBCH, nil
}

// fakeLedger is an in-memory blockchain: transactions are funded by tests.
type fakeLedger struct {
	mu  sync.Mutex
	txs map[string]*blockchair.Transaction
}

func (f *fakeLedger) fund(txID, recipient string, sats int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txs[txID] = &blockchair.Transaction{
		Outputs: []blockchair.Output{{Recipient: recipient, ValueSats: sats}},
	}
}

func (f *fakeLedger) Transaction(_ context.Context, txID string) (*blockchair.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tx, ok := f.txs[txID]; ok {
		return tx, nil
	}
	return nil, infra.WrapGatewayErr(infra.KindNotFound, "transaction not found", nil)
}

type fakeFulfillment struct {
	mu     sync.Mutex
	placed []gelato.PlaceOrderParams
}

func (f *fakeFulfillment) PlaceOrder(_ context.Context, p gelato.PlaceOrderParams) (string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed = append(f.placed, p)
	return "gelato-e2e-1", "Order sent to production."
}

func (f *fakeFulfillment) OrderStatus(_ context.Context, gelatoOrderID string) string {
	if gelatoOrderID == "gelato-e2e-1" {
		return "passed"
	}
	return ""
}

type ShopE2ETestSuite struct {
	suite.Suite
	router      *gin.Engine
	ledger      *fakeLedger
	fulfillment *fakeFulfillment
	shopAddress string
}

func (s *ShopE2ETestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	s.shopAddress = cfg.Shop.BCHAddress

	tshirt := func(uid, size, color string) gelato.CatalogProduct {
		return gelato.CatalogProduct{UID: uid, Attributes: map[string]string{"GarmentSize": size, "GarmentColor": color}}
	}
	catalog := &fakeCatalog{
		variants: []gelato.CatalogProduct{
			tshirt("tee-s-white", "S", "white"),
			tshirt("tee-m-white", "m", "white"),
			tshirt("tee-l-black", "L", "black"),
		},
		costUSD: decimal.RequireFromString("10"),
	}
	rates := &fakeRates{usdPerBCH: decimal.RequireFromString("500")}
	s.ledger = &fakeLedger{txs: map[string]*blockchair.Transaction{}}
	s.fulfillment = &fakeFulfillment{}

	cacheStore := cache.NewStore(clock.NewMockClock(time.Now()))
	orders := store.NewOrderStore()
	feedback := store.NewFeedbackStore()

	catalogUC := usecase.NewCatalogUseCase(catalog, cacheStore, cfg.Cache)
	pricingUC := usecase.NewPricingUseCase(catalogUC, catalog, rates, cacheStore, cfg.Cache)
	verifier := usecase.NewPaymentVerifier(s.ledger, s.shopAddress)
	orderUC := usecase.NewOrderUseCase(orders, catalogUC, pricingUC, verifier, s.fulfillment, s.shopAddress)
	menuUC := usecase.NewMenuUseCase(pricingUC, catalogUC, cfg.Gelato.APIKey)
	feedbackUC := usecase.NewFeedbackUseCase(feedback)

	s.router = gin.New()
	handler.NewRouter(s.router, cfg,
		api.NewHelpHandler(),
		api.NewMenuHandler(menuUC),
		api.NewOrderHandler(orderUC),
		api.NewFeedbackHandler(feedbackUC),
	)
}

func TestShopE2ETestSuite(t *testing.T) {
	suite.Run(t, new(ShopE2ETestSuite))
}

func (s *ShopE2ETestSuite) createTshirtOrder() resdto.OrderResponse {
	body := map[string]any{
		"product_id": "t-shirt",
		"options":    map[string]string{"size": "m", "color": "white"},
		"shipping_address": map[string]any{
			"first_name": "Ada", "last_name": "Lovelace",
			"address_line1": "12 Crescent", "city": "London",
			"post_code": "N1 7AA", "country": "GB", "email": "ada@example.com",
		},
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/order/product", body)

	var resp resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	return resp
}

func (s *ShopE2ETestSuite) TestBrowseMenu() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu", nil)
	var menuResp resdto.MenuResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &menuResp)

	var ids []string
	var hrefs []string
	for _, c := range menuResp.Categories {
		ids = append(ids, c.ID)
		hrefs = append(hrefs, c.Href)
	}
	s.Empty(cmp.Diff([]string{"flavors", "sizes", "toppings", "products"}, ids))
	s.Empty(cmp.Diff([]string{"/menu/flavors", "/menu/sizes", "/menu/toppings", "/menu/products"}, hrefs))
	s.Equal(3, menuResp.Categories[3].Count)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu/products", nil)
	var products resdto.CategoryItemsResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &products)

	s.Equal("products", products.Category)
	s.Require().Len(products.Items, 3)
	// 10 USD cost, 40% margin, 500 USD/BCH.
	s.Equal("0.028000", products.Items[0].PriceBCH)
	s.True(products.Items[0].Available)
	s.Equal(1, products.Page)
	s.Equal(1, products.TotalPages)
	s.Nil(products.Next)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/t-shirt/options", nil)
	var options resdto.ProductOptionsResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &options)
	s.Empty(cmp.Diff(map[string][]string{
		"size":  {"S", "L", "m"},
		"color": {"black", "white"},
	}, options.Options))
}

func (s *ShopE2ETestSuite) TestProductOrderLifecycle() {
	created := s.createTshirtOrder()
	s.Require().NotEmpty(created.OrderID)
	s.Equal("awaiting_payment", created.Status)
	s.Equal("0.028000", created.TotalBCH)
	s.Equal(s.shopAddress, created.PaymentAddress)

	txID := strings.Repeat("ab", 32)

	// Valid format, absent from the ledger: rejected, order stays unpaid.
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/order/"+created.OrderID+"/payment",
		map[string]any{"tx_id": txID})
	httptest.AssertErrorResponse(s.T(), w, http.StatusPaymentRequired, "not found on the BCH blockchain")

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/order/"+created.OrderID, nil)
	var fetched resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fetched)
	s.False(fetched.Paid)

	// Fund the exact amount and pay for real.
	recipient := strings.TrimPrefix(s.shopAddress, "bitcoincash:")
	s.ledger.fund(txID, recipient, 2_800_000)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/order/"+created.OrderID+"/payment",
		map[string]any{"tx_id": txID})
	var paid resdto.PaymentResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &paid)
	s.True(paid.Order.Paid)
	s.Equal("fulfilling", paid.Order.Status)
	s.Equal("Order sent to production.", paid.Fulfillment)

	s.Require().Len(s.fulfillment.placed, 1)
	s.Equal("tee-m-white", s.fulfillment.placed[0].ProductUID)
	s.Equal(created.OrderID, s.fulfillment.placed[0].ReferenceID)

	// Fetching the fulfilling order reports the upstream production status.
	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/order/"+created.OrderID, nil)
	var fulfilling resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &fulfilling)
	s.Equal("fulfilling", fulfilling.Status)
	s.Equal("passed", fulfilling.FulfillmentStatus)

	// Idempotency: same tx against the same order conflicts.
	w = httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/order/"+created.OrderID+"/payment",
		map[string]any{"tx_id": txID})
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already paid")

	// Uniqueness: same tx against a second order conflicts too.
	second := s.createTshirtOrder()
	w = httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/order/"+second.OrderID+"/payment",
		map[string]any{"tx_id": txID})
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already been used")
}

func (s *ShopE2ETestSuite) TestInsufficientPayment() {
	created := s.createTshirtOrder()
	txID := strings.Repeat("cd", 32)
	recipient := strings.TrimPrefix(s.shopAddress, "bitcoincash:")
	s.ledger.fund(txID, recipient, 2_799_999) // one sat short

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/order/"+created.OrderID+"/payment",
		map[string]any{"tx_id": txID})
	httptest.AssertErrorResponse(s.T(), w, http.StatusPaymentRequired, "insufficient")
}

func (s *ShopE2ETestSuite) TestNonexistentOptionCombination() {
	body := map[string]any{
		"product_id": "t-shirt",
		"options":    map[string]string{"size": "m", "color": "black"},
		"shipping_address": map[string]any{
			"first_name": "Ada", "last_name": "Lovelace",
			"address_line1": "12 Crescent", "city": "London",
			"post_code": "N1 7AA", "country": "GB", "email": "ada@example.com",
		},
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/order/product", body)
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Try different options")
}

func (s *ShopE2ETestSuite) TestCakeOrderAndFeedback() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/order",
		map[string]any{"flavor": "chocolate", "size": "large", "toppings": []string{"edible_gold"}})
	var cake resdto.OrderResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &cake)
	s.Equal("0.028000", cake.TotalBCH)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/feedback",
		map[string]any{"rating": 5, "message": "Lovely cake flow."})
	var fb resdto.FeedbackResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &fb)
	require.NotEmpty(s.T(), fb.FeedbackID)
}
