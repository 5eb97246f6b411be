package application

import (
	"context"

	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/models"
)

// GetRequestQuery represents the query to get a request
type GetRequestQuery struct {
	RequestID  string
	CallerID   string
	CallerRole string
}

// GetRequest use case
type GetRequest struct {
	requestRepository domain.RequestRepository
}

// NewGetRequest creates a new GetRequest use case
func NewGetRequest(requestRepository domain.RequestRepository) *GetRequest {
	return &GetRequest{requestRepository: requestRepository}
}

// Execute returns the request to its participants, to admins, and to
// providers while it is still open for assignment.
func (uc *GetRequest) Execute(ctx context.Context, query *GetRequestQuery) (*RequestResponse, error) {
	callerID, err := models.NewID(query.CallerID)
	if err != nil {
		return nil, err
	}

	request, err := loadRequest(ctx, uc.requestRepository, query.RequestID)
	if err != nil {
		return nil, err
	}

	openForProviders := query.CallerRole == RoleProvider &&
		request.Status == domain.RequestStatusPending && request.FulfillerID.IsZero()

	if !request.IsParticipant(callerID) && query.CallerRole != RoleAdmin && !openForProviders {
		return nil, domain.ErrNotParticipant
	}

	return newRequestResponse(request), nil
}
