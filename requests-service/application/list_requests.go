package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/models"
)

// ListScope selects which requests a caller lists
type ListScope string

const (
	ListScopeMine      ListScope = "mine"
	ListScopeAssigned  ListScope = "assigned"
	ListScopeAvailable ListScope = "available"
)

// ListRequestsQuery represents the query to list requests
type ListRequestsQuery struct {
	Scope      ListScope
	UserID     string
	CallerRole string
	Status     string
}

// ListRequestsResponse wraps a list of requests
type ListRequestsResponse struct {
	Requests []*RequestResponse `json:"requests"`
}

// ListRequests use case
type ListRequests struct {
	requestRepository domain.RequestRepository
}

// NewListRequests creates a new ListRequests use case
func NewListRequests(requestRepository domain.RequestRepository) *ListRequests {
	return &ListRequests{requestRepository: requestRepository}
}

// Execute lists requests of the given scope, optionally filtered by status.
// Only providers see the available requests.
func (uc *ListRequests) Execute(ctx context.Context, query *ListRequestsQuery) (*ListRequestsResponse, error) {
	status, err := parseStatusFilter(query.Status)
	if err != nil {
		return nil, err
	}

	var requests []*domain.Request
	switch query.Scope {
	case ListScopeAvailable:
		if query.CallerRole != RoleProvider {
			return nil, models.NewForbidden("only providers can browse available requests")
		}
		requests, err = uc.requestRepository.FindAvailable(ctx)
	case ListScopeMine, ListScopeAssigned:
		userID, idErr := models.NewID(query.UserID)
		if idErr != nil {
			return nil, idErr
		}
		if query.Scope == ListScopeMine {
			requests, err = uc.requestRepository.FindByRequester(ctx, userID, status)
		} else {
			requests, err = uc.requestRepository.FindByFulfiller(ctx, userID, status)
		}
	default:
		return nil, models.NewInvalidInput("unknown list scope " + string(query.Scope))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return &ListRequestsResponse{Requests: newRequestResponses(requests)}, nil
}

func parseStatusFilter(raw string) (domain.RequestStatus, error) {
	status := domain.RequestStatus(raw)
	switch status {
	case "", domain.RequestStatusPending, domain.RequestStatusAssigned, domain.RequestStatusInProgress,
		domain.RequestStatusCompleted, domain.RequestStatusCancelled:
		return status, nil
	}
	return "", models.NewInvalidInput("invalid status filter " + raw)
}
