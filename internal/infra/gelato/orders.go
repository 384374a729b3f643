package gelato

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/philmade/gather-shop/internal/domain/order"
	"github.com/philmade/gather-shop/internal/pkg/config"
)

// maxErrorBody bounds how much of an upstream error body is surfaced to the
// caller.
const maxErrorBody = 200

// PlaceOrderParams carries everything needed for a single-line-item
// fulfillment order. ReferenceID is our own order id; Gelato stores it as
// orderReferenceId so re-submission of the same order is idempotent upstream.
type PlaceOrderParams struct {
	ProductUID  string
	DesignURL   string
	Shipping    order.ShippingAddress
	ReferenceID string
}

type OrdersClient struct {
	ordersURL string
	apiKey    string
	http      *http.Client
}

func NewOrdersClient(cfg config.GelatoConfig) *OrdersClient {
	return &OrdersClient{
		ordersURL: cfg.OrdersURL,
		apiKey:    cfg.APIKey,
		http:      &http.Client{Timeout: cfg.Timeout},
	}
}

type orderItemFile struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type orderItem struct {
	ItemReferenceID string          `json:"itemReferenceId"`
	ProductUID      string          `json:"productUid"`
	Files           []orderItemFile `json:"files"`
	Quantity        int             `json:"quantity"`
}

type shippingAddress struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostCode     string `json:"postCode"`
	Country      string `json:"country"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
}

type createOrderRequest struct {
	OrderType           string          `json:"orderType"`
	OrderReferenceID    string          `json:"orderReferenceId"`
	CustomerReferenceID string          `json:"customerReferenceId"`
	Currency            string          `json:"currency"`
	Items               []orderItem     `json:"items"`
	ShippingAddress     shippingAddress `json:"shippingAddress"`
}

// PlaceOrder submits a fulfillment order and maps the outcome to a
// caller-facing message. The returned id is empty on failure; no retry is
// scheduled here, the "will be retried" message is informational only.
func (c *OrdersClient) PlaceOrder(ctx context.Context, p PlaceOrderParams) (string, string) {
	if c.apiKey == "" {
		return "", "Gelato API key not configured. Set GELATO_API_KEY to enable real order fulfillment."
	}

	payload := createOrderRequest{
		OrderType:           "order",
		OrderReferenceID:    p.ReferenceID,
		CustomerReferenceID: p.ReferenceID,
		Currency:            "USD",
		Items: []orderItem{
			{
				ItemReferenceID: p.ReferenceID + "-item-1",
				ProductUID:      p.ProductUID,
				Files:           []orderItemFile{{Type: "default", URL: p.DesignURL}},
				Quantity:        1,
			},
		},
		ShippingAddress: shippingAddress{
			FirstName:    p.Shipping.FirstName,
			LastName:     p.Shipping.LastName,
			AddressLine1: p.Shipping.AddressLine1,
			AddressLine2: p.Shipping.AddressLine2,
			City:         p.Shipping.City,
			State:        p.Shipping.State,
			PostCode:     p.Shipping.PostCode,
			Country:      p.Shipping.Country,
			Email:        p.Shipping.Email,
			Phone:        p.Shipping.Phone,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "Failed to build fulfillment order: " + err.Error()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ordersURL, bytes.NewReader(body))
	if err != nil {
		return "", "Failed to build fulfillment order: " + err.Error()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", "Gelato API unavailable. Order saved, fulfillment will be retried."
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		var parsed struct {
			ID      string `json:"id"`
			OrderID string `json:"orderId"`
		}
		if err := json.Unmarshal(respBody, &parsed); err != nil || (parsed.ID == "" && parsed.OrderID == "") {
			return "", "Gelato returned an unreadable response."
		}
		id := parsed.ID
		if id == "" {
			id = parsed.OrderID
		}
		return id, "Order placed with Gelato for fulfillment."
	}

	truncated := string(respBody)
	if len(truncated) > maxErrorBody {
		truncated = truncated[:maxErrorBody]
	}
	return "", fmt.Sprintf("Gelato API error (%d): %s", resp.StatusCode, truncated)
}

// OrderStatus looks up the upstream status of a previously placed order.
// Returns "" when the key is missing or the lookup fails.
func (c *OrdersClient) OrderStatus(ctx context.Context, gelatoOrderID string) string {
	if c.apiKey == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ordersURL+"/"+gelatoOrderID, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ""
	}
	return parsed.Status
}
