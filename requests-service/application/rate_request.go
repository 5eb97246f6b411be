package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// RateRequestCommand carries the requester's score for a completed request
type RateRequestCommand struct {
	RequestID string `json:"-"`
	ActorID   string `json:"-"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// RatingResponse is the external representation of a rating
type RatingResponse struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	FulfillerID string    `json:"fulfiller_id,omitempty"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RateRequest use case
type RateRequest struct {
	requestRepository domain.RequestRepository
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// NewRateRequest creates a new RateRequest use case
func NewRateRequest(requestRepository domain.RequestRepository, eventPublisher events.Publisher, logger *slog.Logger) *RateRequest {
	return &RateRequest{
		requestRepository: requestRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute stores the rating and announces it with REQUEST_RATED. A second
// rating of the same request fails with ErrAlreadyRated.
func (uc *RateRequest) Execute(ctx context.Context, cmd *RateRequestCommand) (*RatingResponse, error) {
	actorID, err := models.NewID(cmd.ActorID)
	if err != nil {
		return nil, err
	}

	request, err := loadRequest(ctx, uc.requestRepository, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	rating, err := request.Rate(actorID, cmd.Rating, cmd.Comment)
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepository.SaveRating(ctx, rating); err != nil {
		if errors.Is(err, domain.ErrAlreadyRated) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to save rating")
	}

	uc.logger.InfoContext(ctx, "request rated",
		slog.String("request_id", request.ID.String()),
		slog.String("fulfiller_id", request.FulfillerID.String()),
		slog.Int("rating", rating.Rating),
	)
	publishRecorded(ctx, uc.eventPublisher, uc.logger, request)

	return &RatingResponse{
		ID:          rating.ID.String(),
		RequestID:   rating.RequestID.String(),
		FulfillerID: rating.FulfillerID.String(),
		Rating:      rating.Rating,
		Comment:     rating.Comment,
		CreatedAt:   rating.CreatedAt,
	}, nil
}
