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

// CreateRequestCommand represents the command to create a request
type CreateRequestCommand struct {
	RequesterID string     `json:"-"`
	CategoryID  string     `json:"category_id"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Amount      string     `json:"amount"`
	Currency    string     `json:"currency"`
}

// CreateRequest use case
type CreateRequest struct {
	requestRepository domain.RequestRepository
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// NewCreateRequest creates a new CreateRequest use case
func NewCreateRequest(
	requestRepository domain.RequestRepository,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *CreateRequest {
	return &CreateRequest{
		requestRepository: requestRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute inserts a pending request and announces it with REQUEST_CREATED
func (uc *CreateRequest) Execute(ctx context.Context, cmd *CreateRequestCommand) (*RequestResponse, error) {
	requesterID, err := models.NewID(cmd.RequesterID)
	if err != nil {
		return nil, err
	}

	var categoryID models.ID
	if cmd.CategoryID != "" {
		if categoryID, err = models.NewID(cmd.CategoryID); err != nil {
			return nil, err
		}
	}

	amount, err := models.ParseAmount(cmd.Amount)
	if err != nil {
		return nil, err
	}

	request, err := domain.NewRequest(requesterID, categoryID, cmd.Description, cmd.Address, cmd.ScheduledAt, amount, cmd.Currency)
	if err != nil {
		return nil, err
	}

	if err := uc.requestRepository.Save(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to save request")
	}

	response := newRequestResponse(request)
	publishRecorded(ctx, uc.eventPublisher, uc.logger, request)

	return response, nil
}
