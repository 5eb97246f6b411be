package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/payments-service/domain"
	sharedinfra "github.com/servicehub/booking-system/shared/infrastructure"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
)

var _ domain.PaymentRepository = (*PostgresPaymentRepository)(nil)

const paymentColumns = `id, request_id, requester_id, amount, currency, status,
	gateway_ref, error_message, processed_at, created_at, updated_at`

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL
type PostgresPaymentRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(db *sqlx.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// postgresPayment represents a payment row
type postgresPayment struct {
	ID           string          `db:"id"`
	RequestID    string          `db:"request_id"`
	RequesterID  string          `db:"requester_id"`
	Amount       decimal.Decimal `db:"amount"`
	Currency     string          `db:"currency"`
	Status       string          `db:"status"`
	GatewayRef   *string         `db:"gateway_ref"`
	ErrorMessage string          `db:"error_message"`
	ProcessedAt  *time.Time      `db:"processed_at"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Register inserts the payment unless one already exists for its request. It
// reports whether a row was inserted.
func (r *PostgresPaymentRepository) Register(ctx context.Context, payment *domain.Payment) (bool, error) {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES (
			:id, :request_id, :requester_id, :amount, :currency, :status,
			:gateway_ref, :error_message, :processed_at, :created_at, :updated_at
		)
		ON CONFLICT (request_id) DO NOTHING`

	result, err := r.db.NamedExecContext(ctx, query, toPostgresPayment(payment))
	if err != nil {
		return false, errors.Wrap(err, "failed to insert payment")
	}
	return sharedinfra.RowsChanged(result)
}

// Save applies the payment's pending transition while the row still holds
// the status the transition started from.
func (r *PostgresPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
		UPDATE payments
		SET status = :status, gateway_ref = :gateway_ref, error_message = :error_message,
			processed_at = :processed_at, updated_at = :updated_at
		WHERE id = :id AND status = :expected_status`

	row := toPostgresPayment(payment)
	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":              row.ID,
		"status":          row.Status,
		"gateway_ref":     row.GatewayRef,
		"error_message":   row.ErrorMessage,
		"processed_at":    row.ProcessedAt,
		"updated_at":      row.UpdatedAt,
		"expected_status": string(payment.ExpectedStatus()),
	})
	if err != nil {
		return errors.Wrap(err, "failed to update payment")
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

// FindByID finds a payment by ID
func (r *PostgresPaymentRepository) FindByID(ctx context.Context, id models.ID) (*domain.Payment, error) {
	return r.getPayment(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id.String())
}

// FindByRequestID finds the payment of a request
func (r *PostgresPaymentRepository) FindByRequestID(ctx context.Context, requestID models.ID) (*domain.Payment, error) {
	return r.getPayment(ctx, `SELECT `+paymentColumns+` FROM payments WHERE request_id = $1`, requestID.String())
}

// FindByGatewayRef finds the payment charged through a gateway intent
func (r *PostgresPaymentRepository) FindByGatewayRef(ctx context.Context, gatewayRef string) (*domain.Payment, error) {
	return r.getPayment(ctx, `SELECT `+paymentColumns+` FROM payments WHERE gateway_ref = $1`, gatewayRef)
}

// FindByRequester lists a client's payments, newest first
func (r *PostgresPaymentRepository) FindByRequester(ctx context.Context, requesterID models.ID) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE requester_id = $1
		ORDER BY created_at DESC`

	var rows []postgresPayment
	if err := r.db.SelectContext(ctx, &rows, query, requesterID.String()); err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*domain.Payment, len(rows))
	for i := range rows {
		payment, err := toDomainPayment(&rows[i])
		if err != nil {
			return nil, err
		}
		payments[i] = payment
	}
	return payments, nil
}

func (r *PostgresPaymentRepository) getPayment(ctx context.Context, query string, arg interface{}) (*domain.Payment, error) {
	var row postgresPayment
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find payment")
	}
	return toDomainPayment(&row)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toPostgresPayment(payment *domain.Payment) *postgresPayment {
	return &postgresPayment{
		ID:           payment.ID.String(),
		RequestID:    payment.RequestID.String(),
		RequesterID:  payment.RequesterID.String(),
		Amount:       payment.Amount,
		Currency:     payment.Currency,
		Status:       string(payment.Status),
		GatewayRef:   nullableString(payment.GatewayRef),
		ErrorMessage: payment.ErrorMessage,
		ProcessedAt:  payment.ProcessedAt,
		CreatedAt:    payment.Timestamps.CreatedAt,
		UpdatedAt:    payment.Timestamps.UpdatedAt,
	}
}

func toDomainPayment(row *postgresPayment) (*domain.Payment, error) {
	id, err := models.NewID(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid payment ID")
	}

	requestID, err := models.NewID(row.RequestID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid request ID")
	}

	payment := &domain.Payment{
		ID:           id,
		RequestID:    requestID,
		RequesterID:  models.ID(row.RequesterID),
		Amount:       row.Amount,
		Currency:     row.Currency,
		Status:       domain.PaymentStatus(row.Status),
		ErrorMessage: row.ErrorMessage,
		ProcessedAt:  row.ProcessedAt,
		Timestamps: models.Timestamps{
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
	}
	if row.GatewayRef != nil {
		payment.GatewayRef = *row.GatewayRef
	}
	return payment, nil
}
