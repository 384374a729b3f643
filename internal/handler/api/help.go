package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

type setupStep struct {
	Action string `json:"action"`
	Code   string `json:"code,omitempty"`
	Note   string `json:"note,omitempty"`
}

type prerequisite struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Why   string      `json:"why"`
	Setup []setupStep `json:"setup"`
	Check string      `json:"check"`
}

type workflowStep struct {
	Step     int    `json:"step"`
	Action   string `json:"action"`
	Endpoint string `json:"endpoint,omitempty"`
	Detail   string `json:"detail"`
}

type endpointHelp struct {
	Method  string   `json:"method"`
	Path    string   `json:"path"`
	Purpose string   `json:"purpose"`
	Tips    []string `json:"tips"`
}

type helpResponse struct {
	Overview      string         `json:"overview"`
	Prerequisites []prerequisite `json:"prerequisites"`
	Workflow      []workflowStep `json:"workflow"`
	Endpoints     []endpointHelp `json:"endpoints"`
}

// @Summary API help
// @Description Complete guide for a programmatic caller: prerequisites, workflow, and per-endpoint tips
// @Tags help
// @Produce json
// @Success 200 {object} helpResponse
// @Router /help [get]
func (h *HelpHandler) Help(c *gin.Context) {
	c.JSON(http.StatusOK, helpResponse{
		Overview: "This shop sells custom cakes (demo) and real shippable products " +
			"(t-shirts, mugs, framed prints) fulfilled by Gelato print-on-demand. " +
			"All payments are in Bitcoin Cash (BCH), verified on the real blockchain. " +
			"Product options and BCH prices are live: they reflect Gelato's current catalog " +
			"and the real-time exchange rate. To place an order you need a funded BCH wallet. " +
			"IMPORTANT FOR AUTONOMOUS AGENTS: you cannot fund a wallet yourself. If your " +
			"wallet is empty, report back to your human operator and ask them to send BCH " +
			"to your wallet address before proceeding.",
		Prerequisites: []prerequisite{
			{
				ID:   "bch_wallet",
				Name: "BCH Wallet",
				Why: "Orders are paid in Bitcoin Cash. You need a wallet that can " +
					"send BCH and give you the transaction ID.",
				Setup: []setupStep{
					{
						Action: "Create a wallet and note its bitcoincash: address",
					},
					{
						Action: "Fund your wallet",
						Note: "YOU CANNOT DO THIS YOURSELF. Ask your human operator to send " +
							"BCH to your wallet address (typical orders cost 0.01-0.05 BCH) " +
							"and wait for them to confirm the transfer.",
					},
					{
						Action: "Send a payment after creating an order",
						Code:   "send(PAYMENT_ADDRESS, TOTAL_BCH)  # returns the tx id for PUT /order/{id}/payment",
					},
				},
				Check: "Your wallet shows a non-zero balance and its address starts with 'bitcoincash:'.",
			},
			{
				ID:   "shipping_address",
				Name: "Shipping Address (for real products only)",
				Why: "Real products (t-shirts, mugs, prints) are physically shipped. " +
					"You need a shipping address from your human operator.",
				Setup: []setupStep{
					{
						Action: "Ask your human operator for a shipping address",
						Note: "You need: first_name, last_name, address_line1, city, post_code, " +
							"country (ISO 2-letter code like 'US' or 'GB'), and email. " +
							"This is NOT needed for cake orders (demo only).",
					},
				},
				Check: "You have every required address field for POST /order/product.",
			},
		},
		Workflow: []workflowStep{
			{Step: 1, Action: "Read this help guide", Endpoint: "GET /help",
				Detail: "Understand prerequisites and the full flow before starting."},
			{Step: 2, Action: "Set up and fund a BCH wallet",
				Detail: "Follow the prerequisite steps above. Stop here if your wallet is empty: " +
					"ask your human operator to fund it and do not proceed until you have funds."},
			{Step: 3, Action: "Browse the menu", Endpoint: "GET /menu",
				Detail: "Lists every category with an item count and href. The 'products' category " +
					"contains real items that will be printed and shipped, priced live."},
			{Step: 4, Action: "Browse items and check product options", Endpoint: "GET /menu/{category}",
				Detail: "Item ids from this endpoint are what the order endpoints take. For real " +
					"products, also call GET /products/{id}/options for valid sizes and colors."},
			{Step: 5, Action: "Create an order",
				Detail: "For cakes: POST /order with flavor, size, toppings. For real products: " +
					"POST /order/product with product_id, options, and shipping_address. " +
					"Both return order_id, total_bch, and payment_address."},
			{Step: 6, Action: "Send BCH payment",
				Detail: "Send at least total_bch to the payment_address and save the transaction id " +
					"returned by your wallet."},
			{Step: 7, Action: "Submit transaction ID", Endpoint: "PUT /order/{order_id}/payment",
				Detail: "The server verifies the transaction on the BCH blockchain. For product " +
					"orders, payment places a real fulfillment order with Gelato."},
			{Step: 8, Action: "Check order status", Endpoint: "GET /order/{order_id}",
				Detail: "Product orders progress awaiting_payment, confirmed, fulfilling, shipped."},
			{Step: 9, Action: "Leave feedback (optional)", Endpoint: "POST /feedback",
				Detail: "No auth needed. Tell us if the flow was easy or where you got stuck."},
		},
		Endpoints: []endpointHelp{
			{Method: "GET", Path: "/help", Purpose: "This guide. Call first.",
				Tips: []string{"Returns structured JSON, not prose. Parse it programmatically."}},
			{Method: "GET", Path: "/menu", Purpose: "Top-level category listing",
				Tips: []string{
					"Follow the 'href' in each category to get items.",
					"The 'products' category contains real shippable items.",
					"Don't hardcode category names. Always read them from this response.",
				}},
			{Method: "GET", Path: "/menu/{category}", Purpose: "Paginated items within a category",
				Tips: []string{
					"Use the 'next' field to paginate. null means last page.",
					"Item 'id' values are what you pass to the order endpoints.",
					"For cakes: price_bch is per item. Total = flavor + size + sum(toppings).",
					"For products: price_bch is the full price for that product.",
				}},
			{Method: "GET", Path: "/products/{product_id}/options",
				Purpose: "Available options (sizes, colors) for a shippable product",
				Tips: []string{
					"Only applies to items from /menu/products.",
					"Options come live from Gelato's catalog and may change over time.",
					"You must include all required options when ordering.",
				}},
			{Method: "POST", Path: "/order", Purpose: "Create a cake order (demo)",
				Tips: []string{
					"Only flavor and size are required. Toppings and message are optional.",
					"The response includes payment_address and total_bch. You need both to pay.",
				}},
			{Method: "POST", Path: "/order/product",
				Purpose: "Order a real, shippable product (t-shirt, mug, print)",
				Tips: []string{
					"Requires product_id, options, and shipping_address.",
					"Get valid options from GET /products/{id}/options first.",
					"After payment, a real order is placed with Gelato for printing and shipping.",
					"The BCH price is calculated live at order time and may differ slightly from the menu listing.",
				}},
			{Method: "PUT", Path: "/order/{order_id}/payment",
				Purpose: "Submit a BCH transaction ID to complete payment",
				Tips: []string{
					"tx_id must be a valid BCH transaction hash (64 hex characters).",
					"The transaction must have an output to payment_address for at least total_bch.",
					"0-conf accepted. No need to wait for block confirmations.",
					"For product orders, payment triggers real fulfillment via Gelato.",
				}},
			{Method: "GET", Path: "/order/{order_id}", Purpose: "Check order status and payment details",
				Tips: []string{
					"If paid=false, you still need to send payment and submit tx_id.",
					"Product orders show gelato_order_id and fulfillment_status when available.",
				}},
			{Method: "POST", Path: "/feedback", Purpose: "Submit feedback on the experience",
				Tips: []string{
					"No auth required. Rating 1-5, message and agent fields optional.",
				}},
		},
	})
}
