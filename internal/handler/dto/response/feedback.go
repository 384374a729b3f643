package response

import "github.com/philmade/gather-shop/internal/domain/feedback"

type FeedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
	Rating     int    `json:"rating"`
	Message    string `json:"message,omitempty"`
	Agent      string `json:"agent,omitempty"`
}

func FromFeedback(e *feedback.Entry) *FeedbackResponse {
	return &FeedbackResponse{
		FeedbackID: e.ID(),
		Rating:     e.Rating(),
		Message:    e.Message(),
		Agent:      e.Agent(),
	}
}
