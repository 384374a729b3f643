package request

import (
	"github.com/philmade/gather-shop/internal/domain/order"
	"github.com/philmade/gather-shop/internal/usecase"
)

type CreateCakeOrderRequest struct {
	Flavor   string   `json:"flavor" binding:"required"`
	Size     string   `json:"size" binding:"required"`
	Toppings []string `json:"toppings"`
	Message  string   `json:"message"`
}

func (r CreateCakeOrderRequest) ToInput() usecase.CakeOrderInput {
	return usecase.CakeOrderInput{
		Flavor:   r.Flavor,
		Size:     r.Size,
		Toppings: r.Toppings,
		Message:  r.Message,
	}
}

type ShippingAddressRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state"`
	PostCode     string `json:"post_code" binding:"required"`
	Country      string `json:"country" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
}

type CreateProductOrderRequest struct {
	ProductID string                 `json:"product_id" binding:"required"`
	Options   map[string]string      `json:"options"`
	Shipping  ShippingAddressRequest `json:"shipping_address" binding:"required"`
}

func (r CreateProductOrderRequest) ToInput() usecase.ProductOrderInput {
	options := r.Options
	if options == nil {
		options = map[string]string{}
	}
	return usecase.ProductOrderInput{
		ProductID: r.ProductID,
		Options:   options,
		Shipping: order.ShippingAddress{
			FirstName:    r.Shipping.FirstName,
			LastName:     r.Shipping.LastName,
			AddressLine1: r.Shipping.AddressLine1,
			AddressLine2: r.Shipping.AddressLine2,
			City:         r.Shipping.City,
			State:        r.Shipping.State,
			PostCode:     r.Shipping.PostCode,
			Country:      r.Shipping.Country,
			Email:        r.Shipping.Email,
			Phone:        r.Shipping.Phone,
		},
	}
}

type SubmitPaymentRequest struct {
	TxID string `json:"tx_id" binding:"required"`
}
