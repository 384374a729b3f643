package request

import "github.com/philmade/gather-shop/internal/usecase"

type SubmitFeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Message string `json:"message"`
	Agent   string `json:"agent"`
}

func (r SubmitFeedbackRequest) ToInput() usecase.FeedbackInput {
	return usecase.FeedbackInput{
		Rating:  r.Rating,
		Message: r.Message,
		Agent:   r.Agent,
	}
}
