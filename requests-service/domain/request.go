package domain

import (
	"context"
	"strings"
	"time"

	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
)

// RequestStatus is the lifecycle status of a service request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAssigned   RequestStatus = "assigned"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// PaymentStatus mirrors the payment service's status for the request
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

var (
	ErrRequestNotFound      = models.NewNotFound("request not found")
	ErrProviderNotAvailable = models.NewPreconditionFailed("provider not available")
	ErrNotAssigned          = models.NewPreconditionFailed("request is not assigned")
	ErrNotInProgress        = models.NewPreconditionFailed("request is not in progress")
	ErrNotCancellable       = models.NewPreconditionFailed("request can no longer be cancelled")
	ErrConcurrentUpdate     = models.NewPreconditionFailed("request was modified concurrently")
	ErrNotAssignedProvider  = models.NewForbidden("not the assigned provider")
	ErrNotParticipant       = models.NewForbidden("not a participant of this request")
)

// transitions is the lifecycle graph. Cancellation is the only edge that does
// not move forward along pending -> assigned -> in_progress -> completed.
var transitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:    {RequestStatusAssigned, RequestStatusCancelled},
	RequestStatusAssigned:   {RequestStatusInProgress, RequestStatusCancelled},
	RequestStatusInProgress: {RequestStatusCompleted, RequestStatusCancelled},
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph
func CanTransition(from, to RequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// Request is a bookable unit of work between a requester and a fulfiller
type Request struct {
	ID                 models.ID
	RequesterID        models.ID
	FulfillerID        models.ID
	CategoryID         models.ID
	Description        string
	Address            string
	ScheduledAt        *time.Time
	Status             RequestStatus
	PaymentStatus      PaymentStatus
	Amount             decimal.Decimal
	Currency           string
	CancellationReason string
	CancelledBy        models.ID
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	Timestamps         models.Timestamps

	// guard of the last transition, consumed by the repository's conditional update
	previousStatus    RequestStatus
	previousFulfiller models.ID

	events []*events.Event
}

// NewRequest creates a pending request and records REQUEST_CREATED
func NewRequest(
	requesterID models.ID,
	categoryID models.ID,
	description string,
	address string,
	scheduledAt *time.Time,
	amount decimal.Decimal,
	currency string,
) (*Request, error) {
	if requesterID.IsZero() {
		return nil, models.NewInvalidInput("requester ID is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, models.NewInvalidInput("description is required")
	}
	if !amount.IsPositive() {
		return nil, models.NewInvalidInput("amount must be positive")
	}
	if currency == "" {
		currency = models.DefaultCurrency
	}

	request := &Request{
		ID:            models.GenerateUUID(),
		RequesterID:   requesterID,
		CategoryID:    categoryID,
		Description:   strings.TrimSpace(description),
		Address:       strings.TrimSpace(address),
		ScheduledAt:   scheduledAt,
		Status:        RequestStatusPending,
		PaymentStatus: PaymentStatusPending,
		Amount:        amount,
		Currency:      strings.ToLower(currency),
		Timestamps:    models.NewTimestamps(),
	}

	request.recordEvent(events.RequestCreatedEvent, events.RequestCreatedData{
		RequestID:   request.ID,
		RequesterID: request.RequesterID,
		CategoryID:  request.CategoryID,
		Amount:      request.Amount,
		Currency:    request.Currency,
	})

	return request, nil
}

// Assign hands a pending, unassigned request to a fulfiller
func (r *Request) Assign(fulfillerID models.ID) error {
	if fulfillerID.IsZero() {
		return models.NewInvalidInput("provider ID is required")
	}
	if r.Status != RequestStatusPending || !r.FulfillerID.IsZero() {
		return ErrProviderNotAvailable
	}

	r.transition(RequestStatusAssigned)
	r.FulfillerID = fulfillerID

	r.recordEvent(events.RequestAssignedEvent, events.RequestAssignedData{
		RequestID:   r.ID,
		RequesterID: r.RequesterID,
		FulfillerID: r.FulfillerID,
	})
	return nil
}

// Start begins work on an assigned request
func (r *Request) Start(fulfillerID models.ID) error {
	if r.Status != RequestStatusAssigned {
		return ErrNotAssigned
	}
	if r.FulfillerID != fulfillerID {
		return ErrNotAssignedProvider
	}

	r.transition(RequestStatusInProgress)

	r.recordEvent(events.RequestStartedEvent, events.RequestStartedData{
		RequestID:   r.ID,
		RequesterID: r.RequesterID,
		FulfillerID: r.FulfillerID,
	})
	return nil
}

// Complete finishes an in-progress request; the event carries the amount due
func (r *Request) Complete(fulfillerID models.ID) error {
	if r.Status != RequestStatusInProgress {
		return ErrNotInProgress
	}
	if r.FulfillerID != fulfillerID {
		return ErrNotAssignedProvider
	}

	r.transition(RequestStatusCompleted)
	completedAt := r.Timestamps.UpdatedAt
	r.CompletedAt = &completedAt

	r.recordEvent(events.RequestCompletedEvent, events.RequestCompletedData{
		RequestID:   r.ID,
		RequesterID: r.RequesterID,
		FulfillerID: r.FulfillerID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		CompletedAt: completedAt,
	})
	return nil
}

// Cancel terminates a request that is not completed yet. Only the requester
// and the assigned fulfiller may cancel.
func (r *Request) Cancel(actorID models.ID, reason string) error {
	if actorID.IsZero() || (actorID != r.RequesterID && actorID != r.FulfillerID) {
		return ErrNotParticipant
	}
	if !CanTransition(r.Status, RequestStatusCancelled) {
		return ErrNotCancellable
	}

	previous := r.Status
	r.transition(RequestStatusCancelled)
	cancelledAt := r.Timestamps.UpdatedAt
	r.CancelledAt = &cancelledAt
	r.CancelledBy = actorID
	r.CancellationReason = strings.TrimSpace(reason)

	r.recordEvent(events.RequestCancelledEvent, events.RequestCancelledData{
		RequestID:      r.ID,
		RequesterID:    r.RequesterID,
		FulfillerID:    r.FulfillerID,
		Actor:          actorID,
		Reason:         r.CancellationReason,
		PreviousStatus: string(previous),
	})
	return nil
}

// ApplyPaymentStatus mirrors a payment outcome. It reports false, recording
// nothing, when the mirror already holds that status.
func (r *Request) ApplyPaymentStatus(status PaymentStatus, detail string) bool {
	if r.PaymentStatus == status {
		return false
	}

	r.PaymentStatus = status
	r.Timestamps = r.Timestamps.Update()

	data := events.RequestPaymentStatusData{
		RequestID:     r.ID,
		RequesterID:   r.RequesterID,
		FulfillerID:   r.FulfillerID,
		PaymentStatus: string(status),
		Error:         detail,
	}
	switch status {
	case PaymentStatusCompleted:
		r.recordEvent(events.RequestPaymentCompletedEvent, data)
	case PaymentStatusFailed:
		r.recordEvent(events.RequestPaymentFailedEvent, data)
	}
	return true
}

// IsParticipant reports whether userID is the requester or the fulfiller
func (r *Request) IsParticipant(userID models.ID) bool {
	return !userID.IsZero() && (userID == r.RequesterID || userID == r.FulfillerID)
}

// Guard returns the status and fulfiller the stored row must still hold for
// the pending transition to apply.
func (r *Request) Guard() (RequestStatus, models.ID) {
	return r.previousStatus, r.previousFulfiller
}

func (r *Request) transition(to RequestStatus) {
	r.previousStatus = r.Status
	r.previousFulfiller = r.FulfillerID
	r.Status = to
	r.Timestamps = r.Timestamps.Update()
}

func (r *Request) recordEvent(eventType string, data interface{}) {
	r.events = append(r.events, events.NewEvent(r.ID, eventType, data).WithCorrelationID(r.ID))
}

// Events returns the events recorded since the last ClearEvents
func (r *Request) Events() []*events.Event {
	return r.events
}

// ClearEvents drops recorded events once they are published
func (r *Request) ClearEvents() {
	r.events = nil
}

// RequestRepository persists requests. Save applies a recorded transition as a
// conditional update and fails with ErrConcurrentUpdate when the guard no
// longer holds.
type RequestRepository interface {
	Save(ctx context.Context, request *Request) error
	FindByID(ctx context.Context, id models.ID) (*Request, error)
	// An empty status lists every status.
	FindByRequester(ctx context.Context, requesterID models.ID, status RequestStatus) ([]*Request, error)
	FindByFulfiller(ctx context.Context, fulfillerID models.ID, status RequestStatus) ([]*Request, error)
	FindAvailable(ctx context.Context) ([]*Request, error)
	UpdatePaymentStatus(ctx context.Context, id models.ID, status PaymentStatus) (bool, error)
	// SaveRating fails with ErrAlreadyRated when the request holds a rating.
	SaveRating(ctx context.Context, rating *Rating) error
}
