package order

// Type distinguishes demo cake orders from physically fulfilled product orders.
type Type string

const (
	TypeCake    Type = "cake"
	TypeProduct Type = "product"
)

// Status is the order lifecycle state.
//
// Product orders progress awaiting_payment → confirmed → fulfilling → shipped.
// Cake orders stop at confirmed; baking and ready are reserved for the demo
// vocabulary and never set by the current flow.
type Status string

const (
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusConfirmed       Status = "confirmed"
	StatusFulfilling      Status = "fulfilling"
	StatusShipped         Status = "shipped"
	StatusBaking          Status = "baking"
	StatusReady           Status = "ready"
)

// ShippingAddress is the recipient address forwarded to the fulfillment
// upstream for product orders.
type ShippingAddress struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostCode     string
	Country      string
	Email        string
	Phone        string
}
