package order

import (
	"github.com/shopspring/decimal"

	"github.com/philmade/gather-shop/internal/pkg/errs"
)

var (
	ErrAlreadyPaid  = errs.New("order is already paid")
	ErrNotPaid      = errs.New("order has not been paid")
	ErrNotFulfilled = errs.New("order has no fulfillment reference")
)

// Order is owned exclusively by the order store; every mutation goes through
// an entity method so the status transitions stay in one place.
type Order struct {
	id             string
	orderType      Type
	status         Status
	totalBCH       decimal.Decimal
	paymentAddress string
	paid           bool
	txID           *string

	// cake orders
	flavor   string
	size     string
	toppings []string
	message  string

	// product orders
	productID        string
	productOptions   map[string]string
	shippingAddress  ShippingAddress
	designURL        string
	gelatoProductUID string
	gelatoOrderID    *string
	trackingURL      *string
}

// NewCakeOrder builds a demo cake order in awaiting_payment state. The id is
// assigned by the store on insert.
func NewCakeOrder(flavor, size string, toppings []string, message string, totalBCH decimal.Decimal, paymentAddress string) *Order {
	return &Order{
		orderType:      TypeCake,
		status:         StatusAwaitingPayment,
		totalBCH:       totalBCH,
		paymentAddress: paymentAddress,
		flavor:         flavor,
		size:           size,
		toppings:       append([]string(nil), toppings...),
		message:        message,
	}
}

// NewProductOrder builds a physically fulfilled order in awaiting_payment
// state, carrying the resolved Gelato product UID and the artwork to print.
func NewProductOrder(
	productID string,
	options map[string]string,
	shipping ShippingAddress,
	totalBCH decimal.Decimal,
	paymentAddress string,
	designURL string,
	gelatoProductUID string,
) *Order {
	opts := make(map[string]string, len(options))
	for k, v := range options {
		opts[k] = v
	}
	return &Order{
		orderType:        TypeProduct,
		status:           StatusAwaitingPayment,
		totalBCH:         totalBCH,
		paymentAddress:   paymentAddress,
		productID:        productID,
		productOptions:   opts,
		shippingAddress:  shipping,
		designURL:        designURL,
		gelatoProductUID: gelatoProductUID,
	}
}

// MarkPaid records a verified transaction and moves the order to confirmed.
// The tx id is set at most once; a second call fails with ErrAlreadyPaid.
// Global tx uniqueness across orders is the store's responsibility.
func (o *Order) MarkPaid(txID string) error {
	if o.paid {
		return ErrAlreadyPaid
	}
	o.txID = &txID
	o.paid = true
	o.status = StatusConfirmed
	return nil
}

// RecordFulfillment stores the upstream fulfillment order id and moves the
// order to fulfilling. Only meaningful for product orders.
func (o *Order) RecordFulfillment(gelatoOrderID string) error {
	if !o.paid {
		return ErrNotPaid
	}
	o.gelatoOrderID = &gelatoOrderID
	o.status = StatusFulfilling
	return nil
}

// MarkShipped sets the terminal product state and the carrier tracking URL.
func (o *Order) MarkShipped(trackingURL string) error {
	if o.gelatoOrderID == nil {
		return ErrNotFulfilled
	}
	o.trackingURL = &trackingURL
	o.status = StatusShipped
	return nil
}

// Clone returns a deep copy so callers can read order state without holding
// the store lock.
func (o *Order) Clone() *Order {
	cp := *o
	cp.toppings = append([]string(nil), o.toppings...)
	if o.productOptions != nil {
		cp.productOptions = make(map[string]string, len(o.productOptions))
		for k, v := range o.productOptions {
			cp.productOptions[k] = v
		}
	}
	if o.txID != nil {
		tx := *o.txID
		cp.txID = &tx
	}
	if o.gelatoOrderID != nil {
		id := *o.gelatoOrderID
		cp.gelatoOrderID = &id
	}
	if o.trackingURL != nil {
		u := *o.trackingURL
		cp.trackingURL = &u
	}
	return &cp
}

// AssignID is called once by the store on insert. Ids are never reassigned.
func (o *Order) AssignID(id string) error {
	if o.id != "" {
		return errs.Newf("order already has id %s", o.id)
	}
	o.id = id
	return nil
}

func (o *Order) ID() string                       { return o.id }
func (o *Order) OrderType() Type                  { return o.orderType }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) TotalBCH() decimal.Decimal        { return o.totalBCH }
func (o *Order) PaymentAddress() string           { return o.paymentAddress }
func (o *Order) Paid() bool                       { return o.paid }
func (o *Order) TxID() *string                    { return o.txID }
func (o *Order) Flavor() string                   { return o.flavor }
func (o *Order) Size() string                     { return o.size }
func (o *Order) Toppings() []string               { return o.toppings }
func (o *Order) Message() string                  { return o.message }
func (o *Order) ProductID() string                { return o.productID }
func (o *Order) ProductOptions() map[string]string { return o.productOptions }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) DesignURL() string                { return o.designURL }
func (o *Order) GelatoProductUID() string         { return o.gelatoProductUID }
func (o *Order) GelatoOrderID() *string           { return o.gelatoOrderID }
func (o *Order) TrackingURL() *string             { return o.trackingURL }
