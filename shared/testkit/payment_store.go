package testkit

import (
	"context"
	"sort"
	"sync"

	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/models"
)

var (
	_ domain.PaymentRepository       = (*PaymentStore)(nil)
	_ domain.PaymentMethodRepository = (*PaymentMethodStore)(nil)
)

// PaymentStore keeps payments in memory, unique per request, with the
// conditional status update of the Postgres repository.
type PaymentStore struct {
	mu       sync.Mutex
	payments map[models.ID]domain.Payment
}

// NewPaymentStore creates an empty store
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{payments: make(map[models.ID]domain.Payment)}
}

func (s *PaymentStore) Register(ctx context.Context, payment *domain.Payment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stored := range s.payments {
		if stored.RequestID == payment.RequestID {
			return false, nil
		}
	}
	s.put(payment)
	return true, nil
}

func (s *PaymentStore) Save(ctx context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.payments[payment.ID]
	if !ok || stored.Status != payment.ExpectedStatus() {
		return domain.ErrConcurrentUpdate
	}
	s.put(payment)
	return nil
}

func (s *PaymentStore) FindByID(ctx context.Context, id models.ID) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.payments[id]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (s *PaymentStore) FindByRequestID(ctx context.Context, requestID models.ID) (*domain.Payment, error) {
	return s.first(func(p *domain.Payment) bool { return p.RequestID == requestID }), nil
}

func (s *PaymentStore) FindByGatewayRef(ctx context.Context, gatewayRef string) (*domain.Payment, error) {
	if gatewayRef == "" {
		return nil, nil
	}
	return s.first(func(p *domain.Payment) bool { return p.GatewayRef == gatewayRef }), nil
}

func (s *PaymentStore) FindByRequester(ctx context.Context, requesterID models.ID) ([]*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Payment
	for _, stored := range s.payments {
		payment := stored
		if payment.RequesterID == requesterID {
			result = append(result, &payment)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamps.CreatedAt.After(result[j].Timestamps.CreatedAt)
	})
	return result, nil
}

// Count returns the number of stored payments
func (s *PaymentStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func (s *PaymentStore) put(payment *domain.Payment) {
	stored := *payment
	stored.ClearEvents()
	s.payments[payment.ID] = stored
}

func (s *PaymentStore) first(match func(*domain.Payment) bool) *domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stored := range s.payments {
		payment := stored
		if match(&payment) {
			return &payment
		}
	}
	return nil
}

// PaymentMethodStore keeps saved methods and customer references in memory
type PaymentMethodStore struct {
	mu        sync.Mutex
	methods   map[models.ID]domain.PaymentMethod
	customers map[models.ID]string
}

// NewPaymentMethodStore creates an empty store
func NewPaymentMethodStore() *PaymentMethodStore {
	return &PaymentMethodStore{
		methods:   make(map[models.ID]domain.PaymentMethod),
		customers: make(map[models.ID]string),
	}
}

func (s *PaymentMethodStore) Create(ctx context.Context, method *domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if method.IsDefault {
		s.clearDefault(method.ClientID)
	}
	s.methods[method.ID] = *method
	return nil
}

func (s *PaymentMethodStore) FindByID(ctx context.Context, id, clientID models.ID) (*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.methods[id]
	if !ok || stored.ClientID != clientID {
		return nil, nil
	}
	return &stored, nil
}

// FindByClient lists the default first, then the most recent
func (s *PaymentMethodStore) FindByClient(ctx context.Context, clientID models.ID) ([]*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.PaymentMethod
	for _, stored := range s.methods {
		method := stored
		if method.ClientID == clientID {
			result = append(result, &method)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsDefault != result[j].IsDefault {
			return result[i].IsDefault
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *PaymentMethodStore) FindDefault(ctx context.Context, clientID models.ID) (*domain.PaymentMethod, error) {
	methods, err := s.FindByClient(ctx, clientID)
	if err != nil || len(methods) == 0 || !methods[0].IsDefault {
		return nil, err
	}
	return methods[0], nil
}

func (s *PaymentMethodStore) SetDefault(ctx context.Context, id, clientID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.methods[id]
	if !ok || stored.ClientID != clientID {
		return domain.ErrPaymentMethodNotFound
	}
	s.clearDefault(clientID)
	stored.IsDefault = true
	s.methods[id] = stored
	return nil
}

func (s *PaymentMethodStore) SetAutoPay(ctx context.Context, id, clientID models.ID, autoPay bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.methods[id]
	if !ok || stored.ClientID != clientID {
		return domain.ErrPaymentMethodNotFound
	}
	stored.AutoPay = autoPay
	s.methods[id] = stored
	return nil
}

func (s *PaymentMethodStore) Delete(ctx context.Context, id, clientID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.methods[id]
	if !ok || stored.ClientID != clientID {
		return domain.ErrPaymentMethodNotFound
	}
	delete(s.methods, id)
	return nil
}

func (s *PaymentMethodStore) FindCustomerRef(ctx context.Context, clientID models.ID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customers[clientID], nil
}

func (s *PaymentMethodStore) SaveCustomerRef(ctx context.Context, clientID models.ID, customerRef string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[clientID]; !ok {
		s.customers[clientID] = customerRef
	}
	return nil
}

func (s *PaymentMethodStore) clearDefault(clientID models.ID) {
	for id, stored := range s.methods {
		if stored.ClientID == clientID && stored.IsDefault {
			stored.IsDefault = false
			s.methods[id] = stored
		}
	}
}
