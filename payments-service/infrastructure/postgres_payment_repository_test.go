package infrastructure

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/servicehub/booking-system/payments-service/domain"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRequestID   = "550e8400-e29b-41d4-a716-446655440001"
	testRequesterID = "550e8400-e29b-41d4-a716-446655440010"
	testMethodID    = "550e8400-e29b-41d4-a716-446655440040"
)

var paymentRowColumns = []string{
	"id", "request_id", "requester_id", "amount", "currency", "status",
	"gateway_ref", "error_message", "processed_at", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func pendingPayment(t *testing.T) *domain.Payment {
	t.Helper()
	payment, err := domain.NewPendingPayment(models.ID(testRequestID), models.ID(testRequesterID), decimal.RequireFromString("49.99"), "EUR")
	require.NoError(t, err)
	return payment
}

func TestPostgresPaymentRepository_Register(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{name: "new payment", rowsAffected: 1, expected: true},
		{name: "payment already registered", rowsAffected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPostgresPaymentRepository(db)

			mock.ExpectExec("INSERT INTO payments (.+) ON CONFLICT \\(request_id\\) DO NOTHING").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			inserted, err := repo.Register(context.Background(), pendingPayment(t))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresPaymentRepository_SaveIsConditional(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{name: "status unchanged since read", rowsAffected: 1},
		{name: "concurrent transition", rowsAffected: 0, expectedError: domain.ErrConcurrentUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPostgresPaymentRepository(db)
			payment := pendingPayment(t)
			require.NoError(t, payment.Fail("pi_1", "Your card was declined."))

			mock.ExpectExec("UPDATE payments SET status = (.+) WHERE id = (.+) AND status = (.+)").
				WithArgs("failed", "pi_1", "Your card was declined.", nil, sqlmock.AnyArg(), payment.ID.String(), "pending").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.Save(context.Background(), payment)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresPaymentRepository_FindByGatewayRef(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPaymentRepository(db)
	now := time.Now().UTC()
	paymentID := models.GenerateUUID()

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE gateway_ref = \\$1").
		WithArgs("pi_1").
		WillReturnRows(sqlmock.NewRows(paymentRowColumns).AddRow(
			paymentID.String(), testRequestID, testRequesterID, "49.99", "eur", "pending",
			"pi_1", "", nil, now, now,
		))

	payment, err := repo.FindByGatewayRef(context.Background(), "pi_1")
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, paymentID, payment.ID)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, "pi_1", payment.GatewayRef)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("49.99")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPaymentRepository_FindByRequestIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPaymentRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE request_id = \\$1").
		WithArgs(testRequestID).
		WillReturnError(sql.ErrNoRows)

	payment, err := repo.FindByRequestID(context.Background(), models.ID(testRequestID))
	require.NoError(t, err)
	assert.Nil(t, payment)
}

func TestPostgresPaymentRepository_FindByRequester(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresPaymentRepository(db)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM payments WHERE requester_id = \\$1 ORDER BY created_at DESC").
		WithArgs(testRequesterID).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns).
			AddRow(models.GenerateUUID().String(), testRequestID, testRequesterID, "10.00", "eur", "completed", "pi_2", "", now, now, now).
			AddRow(models.GenerateUUID().String(), models.GenerateUUID().String(), testRequesterID, "20.00", "eur", "failed", nil, "declined", nil, now, now))

	payments, err := repo.FindByRequester(context.Background(), models.ID(testRequesterID))
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, domain.PaymentStatusCompleted, payments[0].Status)
	assert.NotNil(t, payments[0].ProcessedAt)
	assert.Empty(t, payments[1].GatewayRef)
	assert.Equal(t, "declined", payments[1].ErrorMessage)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	files, err := fs.Glob(Migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
