package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
)

// PaymentHistoryResponse lists a client's payments, newest first
type PaymentHistoryResponse struct {
	Payments []*PaymentResponse `json:"payments"`
}

// GetPaymentHistory use case
type GetPaymentHistory struct {
	paymentRepository domain.PaymentRepository
}

// NewGetPaymentHistory creates a new GetPaymentHistory use case
func NewGetPaymentHistory(paymentRepository domain.PaymentRepository) *GetPaymentHistory {
	return &GetPaymentHistory{paymentRepository: paymentRepository}
}

func (uc *GetPaymentHistory) Execute(ctx context.Context, clientID string) (*PaymentHistoryResponse, error) {
	id, err := parseID(clientID, "client ID")
	if err != nil {
		return nil, err
	}

	payments, err := uc.paymentRepository.FindByRequester(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	response := &PaymentHistoryResponse{Payments: make([]*PaymentResponse, 0, len(payments))}
	for _, payment := range payments {
		response.Payments = append(response.Payments, newPaymentResponse(payment))
	}
	return response, nil
}
