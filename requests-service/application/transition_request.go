package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// TransitionCommand identifies the request, the caller and an optional reason
type TransitionCommand struct {
	RequestID string `json:"-"`
	ActorID   string `json:"-"`
	ActorRole string `json:"-"`
	Reason    string `json:"reason,omitempty"`
}

type transitioner struct {
	requestRepository domain.RequestRepository
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// apply loads the request, runs the transition on it and persists it as a
// conditional update. Events go out only after the update won.
func (t *transitioner) apply(
	ctx context.Context,
	cmd *TransitionCommand,
	transition func(request *domain.Request, actorID models.ID) error,
) (*RequestResponse, error) {
	actorID, err := models.NewID(cmd.ActorID)
	if err != nil {
		return nil, err
	}

	request, err := loadRequest(ctx, t.requestRepository, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	if err := transition(request, actorID); err != nil {
		return nil, err
	}

	if err := t.requestRepository.Save(ctx, request); err != nil {
		if errors.Is(err, domain.ErrConcurrentUpdate) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to save request")
	}

	response := newRequestResponse(request)
	publishRecorded(ctx, t.eventPublisher, t.logger, request)

	return response, nil
}

// AssignRequest lets a provider take a pending request
type AssignRequest struct {
	transitioner
}

// NewAssignRequest creates a new AssignRequest use case
func NewAssignRequest(requestRepository domain.RequestRepository, eventPublisher events.Publisher, logger *slog.Logger) *AssignRequest {
	return &AssignRequest{transitioner{requestRepository, eventPublisher, logger}}
}

// Execute assigns the request. Exactly one of several concurrent providers
// wins; the others get ErrProviderNotAvailable.
func (uc *AssignRequest) Execute(ctx context.Context, cmd *TransitionCommand) (*RequestResponse, error) {
	if cmd.ActorRole != RoleProvider {
		return nil, models.NewForbidden("only providers can accept requests")
	}

	response, err := uc.apply(ctx, cmd, func(request *domain.Request, actorID models.ID) error {
		return request.Assign(actorID)
	})
	if errors.Is(err, domain.ErrConcurrentUpdate) {
		return nil, domain.ErrProviderNotAvailable
	}
	return response, err
}

// StartRequest moves an assigned request to in_progress
type StartRequest struct {
	transitioner
}

// NewStartRequest creates a new StartRequest use case
func NewStartRequest(requestRepository domain.RequestRepository, eventPublisher events.Publisher, logger *slog.Logger) *StartRequest {
	return &StartRequest{transitioner{requestRepository, eventPublisher, logger}}
}

func (uc *StartRequest) Execute(ctx context.Context, cmd *TransitionCommand) (*RequestResponse, error) {
	return uc.apply(ctx, cmd, func(request *domain.Request, actorID models.ID) error {
		return request.Start(actorID)
	})
}

// CompleteRequest finishes an in-progress request, which triggers payment
type CompleteRequest struct {
	transitioner
}

// NewCompleteRequest creates a new CompleteRequest use case
func NewCompleteRequest(requestRepository domain.RequestRepository, eventPublisher events.Publisher, logger *slog.Logger) *CompleteRequest {
	return &CompleteRequest{transitioner{requestRepository, eventPublisher, logger}}
}

func (uc *CompleteRequest) Execute(ctx context.Context, cmd *TransitionCommand) (*RequestResponse, error) {
	return uc.apply(ctx, cmd, func(request *domain.Request, actorID models.ID) error {
		return request.Complete(actorID)
	})
}

// CancelRequest cancels a request on behalf of one of its participants
type CancelRequest struct {
	transitioner
}

// NewCancelRequest creates a new CancelRequest use case
func NewCancelRequest(requestRepository domain.RequestRepository, eventPublisher events.Publisher, logger *slog.Logger) *CancelRequest {
	return &CancelRequest{transitioner{requestRepository, eventPublisher, logger}}
}

func (uc *CancelRequest) Execute(ctx context.Context, cmd *TransitionCommand) (*RequestResponse, error) {
	return uc.apply(ctx, cmd, func(request *domain.Request, actorID models.ID) error {
		return request.Cancel(actorID, cmd.Reason)
	})
}
