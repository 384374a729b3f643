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

type FeedbackHandler struct {
	feedbackUseCase usecase.FeedbackUseCase
}

func NewFeedbackHandler(feedbackUseCase usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUseCase: feedbackUseCase,
	}
}

// @Summary Submit feedback
// @Description Leave a rating from 1 to 5 with an optional message
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} resdto.FeedbackResponse
// @Failure 422 {object} httperr.Response
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
			"Invalid request format. Required field: rating.")
		return
	}

	entry, err := h.feedbackUseCase.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidFeedback):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err,
				"Rating must be an integer between 1 and 5.")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromFeedback(entry))
}
