package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "github.com/philmade/gather-shop/internal/handler/dto/response"
	"github.com/philmade/gather-shop/internal/handler/httperr"
	"github.com/philmade/gather-shop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuUseCase usecase.MenuUseCase
}

func NewMenuHandler(menuUseCase usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{
		menuUseCase: menuUseCase,
	}
}

// @Summary List menu categories
// @Description List all browsable menu categories with item counts and hrefs
// @Tags menu
// @Produce json
// @Success 200 {object} resdto.MenuResponse
// @Router /menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCategories(h.menuUseCase.Categories(c.Request.Context())))
}

// @Summary Browse a menu category
// @Description One page of a category listing; the products category lists shippable goods with live prices
// @Tags menu
// @Produce json
// @Param category path string true "Category ID"
// @Param page query int false "Page number (defaults to 1, clamped to the valid range)"
// @Success 200 {object} resdto.CategoryItemsResponse
// @Failure 404 {object} httperr.Response
// @Router /menu/{category} [get]
func (h *MenuHandler) GetCategory(c *gin.Context) {
	category := c.Param("category")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	p, err := h.menuUseCase.CategoryItems(c.Request.Context(), category, page)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryPage(category, p))
}

// @Summary List product options
// @Description The options an order for this product must choose, with the values known to resolve
// @Tags menu
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductOptionsResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /products/{id}/options [get]
func (h *MenuHandler) GetProductOptions(c *gin.Context) {
	detail, err := h.menuUseCase.ProductOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, err.Error())
		default:
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
				"Product options are temporarily unavailable. Please try again.")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductDetail(detail))
}
