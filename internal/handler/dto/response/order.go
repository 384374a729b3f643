package response

import (
	"github.com/philmade/gather-shop/internal/domain/order"
	"github.com/philmade/gather-shop/internal/usecase"
)

type ShippingAddressResponse struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostCode     string `json:"post_code"`
	Country      string `json:"country"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
}

type OrderResponse struct {
	OrderID        string  `json:"order_id"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	TotalBCH       string  `json:"total_bch"`
	PaymentAddress string  `json:"payment_address"`
	Paid           bool    `json:"paid"`
	TxID           *string `json:"tx_id,omitempty"`

	// cake orders
	Flavor   string   `json:"flavor,omitempty"`
	Size     string   `json:"size,omitempty"`
	Toppings []string `json:"toppings,omitempty"`
	Message  string   `json:"message,omitempty"`

	// product orders
	ProductID       string                   `json:"product_id,omitempty"`
	Options         map[string]string        `json:"options,omitempty"`
	ShippingAddress *ShippingAddressResponse `json:"shipping_address,omitempty"`
	GelatoOrderID   *string                  `json:"gelato_order_id,omitempty"`
	TrackingURL     *string                  `json:"tracking_url,omitempty"`

	// Live status reported by the fulfillment upstream, when known.
	FulfillmentStatus string `json:"fulfillment_status,omitempty"`
}

type PaymentResponse struct {
	Order       *OrderResponse `json:"order"`
	Fulfillment string         `json:"fulfillment,omitempty"`
}

func FromOrder(o *order.Order) *OrderResponse {
	resp := &OrderResponse{
		OrderID:        o.ID(),
		Type:           string(o.OrderType()),
		Status:         string(o.Status()),
		TotalBCH:       usecase.FormatBCH(o.TotalBCH()),
		PaymentAddress: o.PaymentAddress(),
		Paid:           o.Paid(),
		TxID:           o.TxID(),
	}

	switch o.OrderType() {
	case order.TypeCake:
		resp.Flavor = o.Flavor()
		resp.Size = o.Size()
		resp.Toppings = o.Toppings()
		resp.Message = o.Message()
	case order.TypeProduct:
		resp.ProductID = o.ProductID()
		resp.Options = o.ProductOptions()
		resp.GelatoOrderID = o.GelatoOrderID()
		resp.TrackingURL = o.TrackingURL()

		addr := o.ShippingAddress()
		resp.ShippingAddress = &ShippingAddressResponse{
			FirstName:    addr.FirstName,
			LastName:     addr.LastName,
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			City:         addr.City,
			State:        addr.State,
			PostCode:     addr.PostCode,
			Country:      addr.Country,
			Email:        addr.Email,
			Phone:        addr.Phone,
		}
	}
	return resp
}

func FromOrderDetail(d *usecase.OrderDetail) *OrderResponse {
	resp := FromOrder(d.Order)
	resp.FulfillmentStatus = d.FulfillmentStatus
	return resp
}

func FromPaymentResult(res *usecase.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		Order:       FromOrder(res.Order),
		Fulfillment: res.FulfillmentMessage,
	}
}
