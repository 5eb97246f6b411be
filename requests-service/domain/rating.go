package domain

import (
	"strings"
	"time"

	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating = models.NewInvalidInput("rating must be between 1 and 5")
	ErrNotRequester  = models.NewForbidden("only the requester can rate this request")
	ErrNotCompleted  = models.NewPreconditionFailed("request is not completed")
	ErrAlreadyRated  = models.NewPreconditionFailed("request has already been rated")
)

// Rating is the requester's score for a completed request. A request is
// rated at most once.
type Rating struct {
	ID          models.ID
	RequestID   models.ID
	RequesterID models.ID
	FulfillerID models.ID
	Rating      int
	Comment     string
	CreatedAt   time.Time
}

// Rate scores a completed request and records REQUEST_RATED. It does not
// change the request itself.
func (r *Request) Rate(actorID models.ID, rating int, comment string) (*Rating, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	if actorID.IsZero() || actorID != r.RequesterID {
		return nil, ErrNotRequester
	}
	if r.Status != RequestStatusCompleted {
		return nil, ErrNotCompleted
	}

	result := &Rating{
		ID:          models.GenerateUUID(),
		RequestID:   r.ID,
		RequesterID: r.RequesterID,
		FulfillerID: r.FulfillerID,
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
		CreatedAt:   time.Now().UTC(),
	}

	r.recordEvent(events.RequestRatedEvent, events.RequestRatedData{
		RequestID:   r.ID,
		RequesterID: r.RequesterID,
		FulfillerID: r.FulfillerID,
		Rating:      rating,
		Comment:     result.Comment,
	})
	return result, nil
}
