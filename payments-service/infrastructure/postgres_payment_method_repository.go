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
)

var _ domain.PaymentMethodRepository = (*PostgresPaymentMethodRepository)(nil)

const paymentMethodColumns = `id, client_id, type, gateway_method_ref, gateway_customer_ref,
	card_brand, last_four, expiry_month, expiry_year, is_default, auto_pay, created_at`

// PostgresPaymentMethodRepository implements PaymentMethodRepository using PostgreSQL
type PostgresPaymentMethodRepository struct {
	db *sqlx.DB
}

// NewPostgresPaymentMethodRepository creates a new PostgresPaymentMethodRepository
func NewPostgresPaymentMethodRepository(db *sqlx.DB) *PostgresPaymentMethodRepository {
	return &PostgresPaymentMethodRepository{db: db}
}

type postgresPaymentMethod struct {
	ID                 string    `db:"id"`
	ClientID           string    `db:"client_id"`
	Type               string    `db:"type"`
	GatewayMethodRef   string    `db:"gateway_method_ref"`
	GatewayCustomerRef string    `db:"gateway_customer_ref"`
	CardBrand          string    `db:"card_brand"`
	LastFour           string    `db:"last_four"`
	ExpiryMonth        int       `db:"expiry_month"`
	ExpiryYear         int       `db:"expiry_year"`
	IsDefault          bool      `db:"is_default"`
	AutoPay            bool      `db:"auto_pay"`
	CreatedAt          time.Time `db:"created_at"`
}

// Create stores a new method. A default method first clears the client's
// previous default inside the same transaction.
func (r *PostgresPaymentMethodRepository) Create(ctx context.Context, method *domain.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES (
			:id, :client_id, :type, :gateway_method_ref, :gateway_customer_ref,
			:card_brand, :last_four, :expiry_month, :expiry_year, :is_default, :auto_pay, :created_at
		)`

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if method.IsDefault {
			if err := clearDefault(ctx, tx, method.ClientID); err != nil {
				return err
			}
		}
		if _, err := tx.NamedExecContext(ctx, query, toPostgresPaymentMethod(method)); err != nil {
			return errors.Wrap(err, "failed to insert payment method")
		}
		return nil
	})
}

// FindByID finds a method of the client
func (r *PostgresPaymentMethodRepository) FindByID(ctx context.Context, id, clientID models.ID) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE id = $1 AND client_id = $2`
	return r.getMethod(ctx, query, id.String(), clientID.String())
}

// FindDefault finds the client's default method
func (r *PostgresPaymentMethodRepository) FindDefault(ctx context.Context, clientID models.ID) (*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods WHERE client_id = $1 AND is_default LIMIT 1`
	return r.getMethod(ctx, query, clientID.String())
}

// FindByClient lists the client's methods, default first then newest first
func (r *PostgresPaymentMethodRepository) FindByClient(ctx context.Context, clientID models.ID) ([]*domain.PaymentMethod, error) {
	query := `SELECT ` + paymentMethodColumns + ` FROM payment_methods
		WHERE client_id = $1
		ORDER BY is_default DESC, created_at DESC`

	var rows []postgresPaymentMethod
	if err := r.db.SelectContext(ctx, &rows, query, clientID.String()); err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	methods := make([]*domain.PaymentMethod, len(rows))
	for i := range rows {
		methods[i] = toDomainPaymentMethod(&rows[i])
	}
	return methods, nil
}

// SetDefault makes id the client's only default method
func (r *PostgresPaymentMethodRepository) SetDefault(ctx context.Context, id, clientID models.ID) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := clearDefault(ctx, tx, clientID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE payment_methods SET is_default = TRUE WHERE id = $1 AND client_id = $2`,
			id.String(), clientID.String())
		if err != nil {
			return errors.Wrap(err, "failed to set default payment method")
		}
		changed, err := sharedinfra.RowsChanged(result)
		if err != nil {
			return err
		}
		if !changed {
			return domain.ErrPaymentMethodNotFound
		}
		return nil
	})
}

// SetAutoPay toggles automatic charging on a method of the client
func (r *PostgresPaymentMethodRepository) SetAutoPay(ctx context.Context, id, clientID models.ID, autoPay bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payment_methods SET auto_pay = $1 WHERE id = $2 AND client_id = $3`,
		autoPay, id.String(), clientID.String())
	if err != nil {
		return errors.Wrap(err, "failed to update auto-pay")
	}
	return notFoundUnlessChanged(result)
}

// Delete removes a method of the client
func (r *PostgresPaymentMethodRepository) Delete(ctx context.Context, id, clientID models.ID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM payment_methods WHERE id = $1 AND client_id = $2`,
		id.String(), clientID.String())
	if err != nil {
		return errors.Wrap(err, "failed to delete payment method")
	}
	return notFoundUnlessChanged(result)
}

// FindCustomerRef returns the client's gateway customer, empty when none exists
func (r *PostgresPaymentMethodRepository) FindCustomerRef(ctx context.Context, clientID models.ID) (string, error) {
	var customerRef string
	err := r.db.GetContext(ctx, &customerRef,
		`SELECT customer_ref FROM gateway_customers WHERE client_id = $1`, clientID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to find gateway customer")
	}
	return customerRef, nil
}

// SaveCustomerRef records the client's gateway customer; the first one wins
func (r *PostgresPaymentMethodRepository) SaveCustomerRef(ctx context.Context, clientID models.ID, customerRef string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gateway_customers (client_id, customer_ref) VALUES ($1, $2) ON CONFLICT (client_id) DO NOTHING`,
		clientID.String(), customerRef)
	if err != nil {
		return errors.Wrap(err, "failed to save gateway customer")
	}
	return nil
}

func (r *PostgresPaymentMethodRepository) getMethod(ctx context.Context, query string, args ...interface{}) (*domain.PaymentMethod, error) {
	var row postgresPaymentMethod
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find payment method")
	}
	return toDomainPaymentMethod(&row), nil
}

func (r *PostgresPaymentMethodRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "failed to commit transaction")
}

func clearDefault(ctx context.Context, tx *sqlx.Tx, clientID models.ID) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE payment_methods SET is_default = FALSE WHERE client_id = $1 AND is_default`,
		clientID.String())
	return errors.Wrap(err, "failed to clear default payment method")
}

func notFoundUnlessChanged(result sql.Result) error {
	changed, err := sharedinfra.RowsChanged(result)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrPaymentMethodNotFound
	}
	return nil
}

func toPostgresPaymentMethod(method *domain.PaymentMethod) *postgresPaymentMethod {
	return &postgresPaymentMethod{
		ID:                 method.ID.String(),
		ClientID:           method.ClientID.String(),
		Type:               method.Type.String(),
		GatewayMethodRef:   method.GatewayMethodRef,
		GatewayCustomerRef: method.GatewayCustomerRef,
		CardBrand:          method.CardBrand,
		LastFour:           method.LastFour,
		ExpiryMonth:        method.ExpiryMonth,
		ExpiryYear:         method.ExpiryYear,
		IsDefault:          method.IsDefault,
		AutoPay:            method.AutoPay,
		CreatedAt:          method.CreatedAt,
	}
}

func toDomainPaymentMethod(row *postgresPaymentMethod) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		ID:                 models.ID(row.ID),
		ClientID:           models.ID(row.ClientID),
		Type:               domain.PaymentMethodType(row.Type),
		GatewayMethodRef:   row.GatewayMethodRef,
		GatewayCustomerRef: row.GatewayCustomerRef,
		CardBrand:          row.CardBrand,
		LastFour:           row.LastFour,
		ExpiryMonth:        row.ExpiryMonth,
		ExpiryYear:         row.ExpiryYear,
		IsDefault:          row.IsDefault,
		AutoPay:            row.AutoPay,
		CreatedAt:          row.CreatedAt,
	}
}
