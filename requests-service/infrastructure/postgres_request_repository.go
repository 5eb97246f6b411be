package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/events"
	sharedinfra "github.com/servicehub/booking-system/shared/infrastructure"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
)

var _ domain.RequestRepository = (*PostgresRequestRepository)(nil)

const requestColumns = `id, requester_id, fulfiller_id, category_id, description, address,
	scheduled_at, status, payment_status, amount, currency, cancellation_reason,
	cancelled_by, completed_at, cancelled_at, created_at, updated_at`

// PostgresRequestRepository implements RequestRepository using PostgreSQL
type PostgresRequestRepository struct {
	db *sqlx.DB
}

// NewPostgresRequestRepository creates a new PostgresRequestRepository
func NewPostgresRequestRepository(db *sqlx.DB) *PostgresRequestRepository {
	return &PostgresRequestRepository{db: db}
}

// postgresRequest represents a request row
type postgresRequest struct {
	ID                 string          `db:"id"`
	RequesterID        string          `db:"requester_id"`
	FulfillerID        *string         `db:"fulfiller_id"`
	CategoryID         *string         `db:"category_id"`
	Description        string          `db:"description"`
	Address            string          `db:"address"`
	ScheduledAt        *time.Time      `db:"scheduled_at"`
	Status             string          `db:"status"`
	PaymentStatus      string          `db:"payment_status"`
	Amount             decimal.Decimal `db:"amount"`
	Currency           string          `db:"currency"`
	CancellationReason string          `db:"cancellation_reason"`
	CancelledBy        *string         `db:"cancelled_by"`
	CompletedAt        *time.Time      `db:"completed_at"`
	CancelledAt        *time.Time      `db:"cancelled_at"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// Save inserts a new request or applies its recorded transition
func (r *PostgresRequestRepository) Save(ctx context.Context, request *domain.Request) error {
	for _, event := range request.Events() {
		switch event.Type {
		case events.RequestCreatedEvent:
			return r.insertRequest(ctx, request)
		case events.RequestAssignedEvent, events.RequestStartedEvent,
			events.RequestCompletedEvent, events.RequestCancelledEvent:
			return r.updateRequest(ctx, request)
		}
	}
	return nil
}

func (r *PostgresRequestRepository) insertRequest(ctx context.Context, request *domain.Request) error {
	query := `
		INSERT INTO requests (` + requestColumns + `)
		VALUES (
			:id, :requester_id, :fulfiller_id, :category_id, :description, :address,
			:scheduled_at, :status, :payment_status, :amount, :currency, :cancellation_reason,
			:cancelled_by, :completed_at, :cancelled_at, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, toPostgres(request)); err != nil {
		return errors.Wrap(err, "failed to insert request")
	}
	return nil
}

// updateRequest applies a transition only while the row still holds the
// status and fulfiller the transition started from.
func (r *PostgresRequestRepository) updateRequest(ctx context.Context, request *domain.Request) error {
	query := `
		UPDATE requests
		SET status = :status, fulfiller_id = :fulfiller_id,
			cancellation_reason = :cancellation_reason, cancelled_by = :cancelled_by,
			completed_at = :completed_at, cancelled_at = :cancelled_at, updated_at = :updated_at
		WHERE id = :id
			AND status = :expected_status
			AND fulfiller_id IS NOT DISTINCT FROM :expected_fulfiller`

	expectedStatus, expectedFulfiller := request.Guard()
	row := toPostgres(request)

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":                  row.ID,
		"status":              row.Status,
		"fulfiller_id":        row.FulfillerID,
		"cancellation_reason": row.CancellationReason,
		"cancelled_by":        row.CancelledBy,
		"completed_at":        row.CompletedAt,
		"cancelled_at":        row.CancelledAt,
		"updated_at":          row.UpdatedAt,
		"expected_status":     string(expectedStatus),
		"expected_fulfiller":  nullableID(expectedFulfiller),
	})
	if err != nil {
		return errors.Wrap(err, "failed to update request")
	}

	changed, err := sharedinfra.RowsChanged(result)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrConcurrentUpdate
	}
	return nil
}

// UpdatePaymentStatus writes the payment mirror, skipping the write when the
// value is already equal. It reports whether a row changed.
func (r *PostgresRequestRepository) UpdatePaymentStatus(ctx context.Context, id models.ID, status domain.PaymentStatus) (bool, error) {
	query := `
		UPDATE requests
		SET payment_status = $1, updated_at = $2
		WHERE id = $3 AND payment_status IS DISTINCT FROM $1`

	result, err := r.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id.String())
	if err != nil {
		return false, errors.Wrap(err, "failed to update payment status")
	}
	return sharedinfra.RowsChanged(result)
}

// SaveRating inserts the request's rating. The unique request_id turns a
// second rating into ErrAlreadyRated.
func (r *PostgresRequestRepository) SaveRating(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO request_ratings (id, request_id, requester_id, fulfiller_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (request_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query,
		rating.ID.String(),
		rating.RequestID.String(),
		rating.RequesterID.String(),
		nullableID(rating.FulfillerID),
		rating.Rating,
		rating.Comment,
		rating.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert rating")
	}

	inserted, err := sharedinfra.RowsChanged(result)
	if err != nil {
		return err
	}
	if !inserted {
		return domain.ErrAlreadyRated
	}
	return nil
}

// FindByID finds a request by ID
func (r *PostgresRequestRepository) FindByID(ctx context.Context, id models.ID) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	var row postgresRequest
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find request")
	}
	return toDomain(&row)
}

// FindByRequester lists the requests created by requesterID, newest first
func (r *PostgresRequestRepository) FindByRequester(ctx context.Context, requesterID models.ID, status domain.RequestStatus) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE requester_id = $1 AND ($2::text = '' OR status = $2::text)
		ORDER BY created_at DESC`

	return r.selectRequests(ctx, query, requesterID.String(), string(status))
}

// FindByFulfiller lists the requests assigned to fulfillerID, newest first
func (r *PostgresRequestRepository) FindByFulfiller(ctx context.Context, fulfillerID models.ID, status domain.RequestStatus) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE fulfiller_id = $1 AND ($2::text = '' OR status = $2::text)
		ORDER BY created_at DESC`

	return r.selectRequests(ctx, query, fulfillerID.String(), string(status))
}

// FindAvailable lists pending requests nobody took yet, oldest first
func (r *PostgresRequestRepository) FindAvailable(ctx context.Context) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE status = 'pending' AND fulfiller_id IS NULL
		ORDER BY created_at ASC`

	return r.selectRequests(ctx, query)
}

func (r *PostgresRequestRepository) selectRequests(ctx context.Context, query string, args ...interface{}) ([]*domain.Request, error) {
	var rows []postgresRequest
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	requests := make([]*domain.Request, len(rows))
	for i := range rows {
		request, err := toDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		requests[i] = request
	}
	return requests, nil
}

func nullableID(id models.ID) *string {
	if id.IsZero() {
		return nil
	}
	s := id.String()
	return &s
}

func idOrZero(s *string) models.ID {
	if s == nil {
		return ""
	}
	return models.ID(*s)
}

func toPostgres(request *domain.Request) *postgresRequest {
	return &postgresRequest{
		ID:                 request.ID.String(),
		RequesterID:        request.RequesterID.String(),
		FulfillerID:        nullableID(request.FulfillerID),
		CategoryID:         nullableID(request.CategoryID),
		Description:        request.Description,
		Address:            request.Address,
		ScheduledAt:        request.ScheduledAt,
		Status:             string(request.Status),
		PaymentStatus:      string(request.PaymentStatus),
		Amount:             request.Amount,
		Currency:           request.Currency,
		CancellationReason: request.CancellationReason,
		CancelledBy:        nullableID(request.CancelledBy),
		CompletedAt:        request.CompletedAt,
		CancelledAt:        request.CancelledAt,
		CreatedAt:          request.Timestamps.CreatedAt,
		UpdatedAt:          request.Timestamps.UpdatedAt,
	}
}

func toDomain(row *postgresRequest) (*domain.Request, error) {
	id, err := models.NewID(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid request ID")
	}

	requesterID, err := models.NewID(row.RequesterID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid requester ID")
	}

	return &domain.Request{
		ID:                 id,
		RequesterID:        requesterID,
		FulfillerID:        idOrZero(row.FulfillerID),
		CategoryID:         idOrZero(row.CategoryID),
		Description:        row.Description,
		Address:            row.Address,
		ScheduledAt:        row.ScheduledAt,
		Status:             domain.RequestStatus(row.Status),
		PaymentStatus:      domain.PaymentStatus(row.PaymentStatus),
		Amount:             row.Amount,
		Currency:           row.Currency,
		CancellationReason: row.CancellationReason,
		CancelledBy:        idOrZero(row.CancelledBy),
		CompletedAt:        row.CompletedAt,
		CancelledAt:        row.CancelledAt,
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}, nil
}
