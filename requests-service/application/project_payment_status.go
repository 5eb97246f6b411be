package application

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
)

// ProjectPaymentStatusCommand carries a payment outcome for one request
type ProjectPaymentStatusCommand struct {
	RequestID models.ID
	Status    domain.PaymentStatus
	Error     string
}

// ProjectPaymentStatus mirrors payment outcomes onto the request row
type ProjectPaymentStatus struct {
	requestRepository domain.RequestRepository
	eventPublisher    events.Publisher
	logger            *slog.Logger
}

// NewProjectPaymentStatus creates a new ProjectPaymentStatus use case
func NewProjectPaymentStatus(
	requestRepository domain.RequestRepository,
	eventPublisher events.Publisher,
	logger *slog.Logger,
) *ProjectPaymentStatus {
	return &ProjectPaymentStatus{
		requestRepository: requestRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute writes the status keyed on request id. A redelivered outcome changes
// nothing and emits nothing; a missing request is logged and acknowledged.
func (uc *ProjectPaymentStatus) Execute(ctx context.Context, cmd *ProjectPaymentStatusCommand) error {
	request, err := uc.requestRepository.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return errors.Wrap(err, "failed to load request")
	}
	if request == nil {
		uc.logger.WarnContext(ctx, "payment outcome for unknown request",
			slog.String("request_id", cmd.RequestID.String()),
			slog.String("payment_status", string(cmd.Status)),
		)
		return nil
	}

	if !request.ApplyPaymentStatus(cmd.Status, cmd.Error) {
		return nil
	}

	changed, err := uc.requestRepository.UpdatePaymentStatus(ctx, request.ID, cmd.Status)
	if err != nil {
		return errors.Wrap(err, "failed to update payment status")
	}
	if !changed {
		request.ClearEvents()
		return nil
	}

	uc.logger.InfoContext(ctx, "payment status projected",
		slog.String("request_id", request.ID.String()),
		slog.String("payment_status", string(cmd.Status)),
	)

	publishRecorded(ctx, uc.eventPublisher, uc.logger, request)
	return nil
}
