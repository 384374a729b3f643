package store

import (
	"sync"

	"github.com/philmade/gather-shop/internal/domain/feedback"
)

// FeedbackStore is append-only; entries are never mutated or deleted.
type FeedbackStore struct {
	mu      sync.Mutex
	entries []*feedback.Entry
}

func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{}
}

func (s *FeedbackStore) Append(e *feedback.Entry) (*feedback.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := genID("FB")
	if err != nil {
		return nil, err
	}
	if err := e.AssignID(id); err != nil {
		return nil, err
	}
	s.entries = append(s.entries, e)
	return e, nil
}

func (s *FeedbackStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
