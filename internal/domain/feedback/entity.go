// Package feedback models append-only feedback entries left by callers.
package feedback

import "github.com/philmade/gather-shop/internal/pkg/errs"

var ErrInvalidRating = errs.New("rating must be between 1 and 5")

type Entry struct {
	id      string
	rating  int
	message string
	agent   string
}

func NewEntry(rating int, message, agent string) (*Entry, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return &Entry{rating: rating, message: message, agent: agent}, nil
}

// AssignID is called once by the store on insert.
func (e *Entry) AssignID(id string) error {
	if e.id != "" {
		return errs.Newf("feedback entry already has id %s", e.id)
	}
	e.id = id
	return nil
}

func (e *Entry) ID() string      { return e.id }
func (e *Entry) Rating() int     { return e.rating }
func (e *Entry) Message() string { return e.message }
func (e *Entry) Agent() string   { return e.agent }
