package usecase

import (
	"context"

	"github.com/philmade/gather-shop/internal/domain/feedback"
	"github.com/philmade/gather-shop/internal/infra/store"
	"github.com/philmade/gather-shop/internal/pkg/errs"
)

var ErrInvalidFeedback = errs.New("invalid feedback")

type FeedbackInput struct {
	Rating  int
	Message string
	Agent   string
}

type FeedbackUseCase interface {
	Submit(ctx context.Context, in FeedbackInput) (*feedback.Entry, error)
}

type feedbackUseCaseImpl struct {
	feedback *store.FeedbackStore
}

func NewFeedbackUseCase(feedbackStore *store.FeedbackStore) FeedbackUseCase {
	return &feedbackUseCaseImpl{feedback: feedbackStore}
}

func (u *feedbackUseCaseImpl) Submit(_ context.Context, in FeedbackInput) (*feedback.Entry, error) {
	e, err := feedback.NewEntry(in.Rating, in.Message, in.Agent)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidFeedback)
	}
	return u.feedback.Append(e)
}
