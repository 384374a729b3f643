package api

import (
	"errors"
	"net/http"

	reqdto "github.com/philmade/gather-shop/internal/handler/dto/request"
	resdto "github.com/philmade/gather-shop/internal/handler/dto/response"
	"github.com/philmade/gather-shop/internal/handler/httperr"
	"github.com/philmade/gather-shop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Create cake order
// @Description Create a demo cake order from menu item ids
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCakeOrderRequest true "Cake order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 422 {object} httperr.Response
// @Router /order [post]
func (h *OrderHandler) CreateCakeOrder(c *gin.Context) {
	var req reqdto.CreateCakeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Invalid request format. Required fields: flavor, size.")
		return
	}

	o, err := h.orderUseCase.CreateCakeOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidSelection):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(o))
}

// @Summary Create product order
// @Description Create an order for a shippable product, resolving and pricing the chosen variant
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateProductOrderRequest true "Product order"
// @Success 201 {object} resdto.OrderResponse
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /order/product [post]
func (h *OrderHandler) CreateProductOrder(c *gin.Context) {
	var req reqdto.CreateProductOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Invalid request format. Required fields: product_id, shipping_address.")
		return
	}

	o, err := h.orderUseCase.CreateProductOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			// Unknown product id in the body is invalid input, not a missing resource.
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error())
		case errors.Is(err, usecase.ErrInvalidOptions):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error())
		case errors.Is(err, usecase.ErrVariantNotFound):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
				"No product matches the chosen options. Try different options; see GET /products/"+req.ProductID+"/options.")
		case errors.Is(err, usecase.ErrPriceUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
				"Pricing is temporarily unavailable. Please try again.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrder(o))
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /order/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	detail, err := h.orderUseCase.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderDetail(detail))
}

// @Summary Submit payment
// @Description Submit a BCH transaction id as payment for an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.SubmitPaymentRequest true "Payment"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /order/{id}/payment [put]
func (h *OrderHandler) SubmitPayment(c *gin.Context) {
	var req reqdto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Invalid request format. Required field: tx_id.")
		return
	}

	res, err := h.orderUseCase.SubmitPayment(c.Request.Context(), c.Param("id"), req.TxID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, usecase.ErrAlreadyPaid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order is already paid.")
		case errors.Is(err, usecase.ErrTxAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err,
				"This transaction ID has already been used for another order.")
		case errors.Is(err, usecase.ErrVerificationUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, err.Error())
		case errors.Is(err, usecase.ErrPaymentRejected):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentResult(res))
}
