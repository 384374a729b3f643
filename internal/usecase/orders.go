package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/philmade/gather-shop/internal/domain/catalog"
	"github.com/philmade/gather-shop/internal/domain/menu"
	"github.com/philmade/gather-shop/internal/domain/order"
	"github.com/philmade/gather-shop/internal/infra/gelato"
	"github.com/philmade/gather-shop/internal/infra/store"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrAlreadyPaid   = errors.New("order is already paid")
	ErrTxAlreadyUsed = errors.New("transaction id already used for another order")

	// Error markers for categorization
	ErrInvalidSelection        = errors.New("invalid item selection")
	ErrPaymentRejected         = errors.New("payment rejected")
	ErrVerificationUnavailable = errors.New("payment verification unavailable")
)

// FulfillmentGateway places confirmed orders with the print-on-demand
// upstream. The returned id is empty on failure; the message is always safe
// to show to the caller. OrderStatus returns "" when the upstream status
// cannot be fetched.
type FulfillmentGateway interface {
	PlaceOrder(ctx context.Context, p gelato.PlaceOrderParams) (string, string)
	OrderStatus(ctx context.Context, gelatoOrderID string) string
}

type CakeOrderInput struct {
	Flavor   string
	Size     string
	Toppings []string
	Message  string
}

type ProductOrderInput struct {
	ProductID string
	Options   map[string]string
	Shipping  order.ShippingAddress
}

// PaymentResult is the outcome of a successful payment submission. The
// fulfillment message is informational and only set for product orders.
type PaymentResult struct {
	Order              *order.Order
	FulfillmentMessage string
}

// OrderDetail is an order snapshot enriched with the live upstream
// fulfillment status when one is available.
type OrderDetail struct {
	Order             *order.Order
	FulfillmentStatus string
}

type OrderUseCase interface {
	CreateCakeOrder(ctx context.Context, in CakeOrderInput) (*order.Order, error)
	CreateProductOrder(ctx context.Context, in ProductOrderInput) (*order.Order, error)
	GetOrder(ctx context.Context, orderID string) (*OrderDetail, error)
	SubmitPayment(ctx context.Context, orderID, txID string) (*PaymentResult, error)
}

type orderUseCaseImpl struct {
	orders      *store.OrderStore
	catalog     CatalogUseCase
	pricing     PricingUseCase
	verifier    PaymentVerifier
	fulfillment FulfillmentGateway
	shopAddress string
}

func NewOrderUseCase(
	orders *store.OrderStore,
	catalogUC CatalogUseCase,
	pricing PricingUseCase,
	verifier PaymentVerifier,
	fulfillment FulfillmentGateway,
	shopAddress string,
) OrderUseCase {
	return &orderUseCaseImpl{
		orders:      orders,
		catalog:     catalogUC,
		pricing:     pricing,
		verifier:    verifier,
		fulfillment: fulfillment,
		shopAddress: shopAddress,
	}
}

func (u *orderUseCaseImpl) CreateCakeOrder(ctx context.Context, in CakeOrderInput) (*order.Order, error) {
	total, invalid := menu.CakeTotal(in.Flavor, in.Size, in.Toppings)
	if len(invalid) > 0 {
		return nil, errs.Mark(errs.Newf("Invalid items: %s", strings.Join(invalid, ", ")), ErrInvalidSelection)
	}

	o := order.NewCakeOrder(in.Flavor, in.Size, in.Toppings, in.Message, total, u.shopAddress)
	return u.orders.Create(o)
}

func (u *orderUseCaseImpl) CreateProductOrder(ctx context.Context, in ProductOrderInput) (*order.Order, error) {
	def, ok := catalog.Lookup(in.ProductID)
	if !ok {
		return nil, errs.Mark(
			errs.Newf("Product '%s' not found. See GET /menu/products.", in.ProductID),
			ErrProductNotFound)
	}

	if err := u.catalog.ValidateOptionKeys(in.ProductID, in.Options); err != nil {
		return nil, err
	}

	uid, err := u.catalog.ResolveVariant(ctx, in.ProductID, in.Options)
	if err != nil {
		return nil, err
	}

	// Priced live at order time; may differ slightly from the menu listing.
	total, err := u.pricing.Quote(ctx, in.ProductID, in.Options)
	if err != nil {
		return nil, err
	}

	o := order.NewProductOrder(in.ProductID, in.Options, in.Shipping, total, u.shopAddress, def.DesignURL, uid)
	return u.orders.Create(o)
}

func (u *orderUseCaseImpl) GetOrder(ctx context.Context, orderID string) (*OrderDetail, error) {
	o, err := u.orders.FindByID(orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderNotFound)
	}

	detail := &OrderDetail{Order: o}
	if gelatoID := o.GelatoOrderID(); gelatoID != nil {
		detail.FulfillmentStatus = u.fulfillment.OrderStatus(ctx, *gelatoID)
	}
	return detail, nil
}

// SubmitPayment verifies the claimed transaction and commits it. The cheap
// pre-checks give fast conflict answers; the authoritative paid/tx-unique
// decision is the store's atomic MarkPaid, so two submissions racing through
// ledger verification cannot both land.
func (u *orderUseCaseImpl) SubmitPayment(ctx context.Context, orderID, txID string) (*PaymentResult, error) {
	o, err := u.orders.FindByID(orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrOrderNotFound)
	}
	if o.Paid() {
		return nil, ErrAlreadyPaid
	}
	if u.orders.IsTxUsed(txID) {
		return nil, ErrTxAlreadyUsed
	}

	res := u.verifier.Verify(ctx, txID, o.TotalBCH())
	if !res.OK {
		if res.Unavailable {
			return nil, errs.Mark(errs.New(res.Message), ErrVerificationUnavailable)
		}
		return nil, errs.Mark(errs.New(res.Message), ErrPaymentRejected)
	}

	updated, err := u.orders.MarkPaid(orderID, txID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTxUsed):
			return nil, errs.Mark(err, ErrTxAlreadyUsed)
		case errors.Is(err, order.ErrAlreadyPaid):
			return nil, errs.Mark(err, ErrAlreadyPaid)
		case errors.Is(err, store.ErrOrderNotFound):
			return nil, errs.Mark(err, ErrOrderNotFound)
		default:
			return nil, err
		}
	}

	result := &PaymentResult{Order: updated}
	if updated.OrderType() != order.TypeProduct {
		return result, nil
	}

	// Payment triggers the real fulfillment order. A failure here leaves the
	// order confirmed; the message tells the caller what happened.
	gelatoID, msg := u.fulfillment.PlaceOrder(ctx, gelato.PlaceOrderParams{
		ProductUID:  updated.GelatoProductUID(),
		DesignURL:   updated.DesignURL(),
		Shipping:    updated.ShippingAddress(),
		ReferenceID: updated.ID(),
	})
	result.FulfillmentMessage = msg
	if gelatoID != "" {
		if fulfilled, err := u.orders.RecordFulfillment(orderID, gelatoID); err == nil {
			result.Order = fulfilled
		}
	}
	return result, nil
}
