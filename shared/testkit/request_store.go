package testkit

import (
	"context"
	"sort"
	"sync"

	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

var _ domain.RequestRepository = (*RequestStore)(nil)

// RequestStore keeps requests in memory with the conditional update semantics
// of the Postgres repository.
type RequestStore struct {
	mu       sync.Mutex
	requests map[models.ID]domain.Request
	ratings  map[models.ID]domain.Rating
}

// NewRequestStore creates an empty store
func NewRequestStore() *RequestStore {
	return &RequestStore{
		requests: make(map[models.ID]domain.Request),
		ratings:  make(map[models.ID]domain.Rating),
	}
}

// Save inserts a created request or applies its transition while the stored
// status and fulfiller still match its guard.
func (s *RequestStore) Save(ctx context.Context, request *domain.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range request.Events() {
		switch event.Type {
		case events.RequestCreatedEvent:
			s.put(request)
			return nil
		case events.RequestAssignedEvent, events.RequestStartedEvent,
			events.RequestCompletedEvent, events.RequestCancelledEvent:
			stored, ok := s.requests[request.ID]
			expectedStatus, expectedFulfiller := request.Guard()
			if !ok || stored.Status != expectedStatus || stored.FulfillerID != expectedFulfiller {
				return domain.ErrConcurrentUpdate
			}
			s.put(request)
			return nil
		}
	}
	return nil
}

// UpdatePaymentStatus writes the mirror unless it already holds status
func (s *RequestStore) UpdatePaymentStatus(ctx context.Context, id models.ID, status domain.PaymentStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.requests[id]
	if !ok || stored.PaymentStatus == status {
		return false, nil
	}
	stored.PaymentStatus = status
	stored.Timestamps = stored.Timestamps.Update()
	s.requests[id] = stored
	return true, nil
}

// SaveRating keeps one rating per request
func (s *RequestStore) SaveRating(ctx context.Context, rating *domain.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ratings[rating.RequestID]; ok {
		return domain.ErrAlreadyRated
	}
	s.ratings[rating.RequestID] = *rating
	return nil
}

// Rating returns the stored rating of a request
func (s *RequestStore) Rating(requestID models.ID) (domain.Rating, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rating, ok := s.ratings[requestID]
	return rating, ok
}

func (s *RequestStore) FindByID(ctx context.Context, id models.ID) (*domain.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (s *RequestStore) FindByRequester(ctx context.Context, requesterID models.ID, status domain.RequestStatus) ([]*domain.Request, error) {
	return s.filter(func(r *domain.Request) bool {
		return r.RequesterID == requesterID && (status == "" || r.Status == status)
	}), nil
}

func (s *RequestStore) FindByFulfiller(ctx context.Context, fulfillerID models.ID, status domain.RequestStatus) ([]*domain.Request, error) {
	return s.filter(func(r *domain.Request) bool {
		return r.FulfillerID == fulfillerID && (status == "" || r.Status == status)
	}), nil
}

func (s *RequestStore) FindAvailable(ctx context.Context) ([]*domain.Request, error) {
	return s.filter(func(r *domain.Request) bool {
		return r.Status == domain.RequestStatusPending && r.FulfillerID.IsZero()
	}), nil
}

func (s *RequestStore) put(request *domain.Request) {
	stored := *request
	stored.ClearEvents()
	s.requests[request.ID] = stored
}

func (s *RequestStore) filter(match func(*domain.Request) bool) []*domain.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Request
	for _, stored := range s.requests {
		request := stored
		if match(&request) {
			result = append(result, &request)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamps.CreatedAt.After(result[j].Timestamps.CreatedAt)
	})
	return result
}
