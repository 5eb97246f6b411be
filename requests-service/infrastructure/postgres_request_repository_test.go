package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRequestID   = "550e8400-e29b-41d4-a716-446655440001"
	testRequesterID = "550e8400-e29b-41d4-a716-446655440010"
	testFulfillerID = "550e8400-e29b-41d4-a716-446655440020"
)

var requestRowColumns = []string{
	"id", "requester_id", "fulfiller_id", "category_id", "description", "address",
	"scheduled_at", "status", "payment_status", "amount", "currency", "cancellation_reason",
	"cancelled_by", "completed_at", "cancelled_at", "created_at", "updated_at",
}

func newMockRepository(t *testing.T) (*PostgresRequestRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresRequestRepository(sqlx.NewDb(db, "postgres")), mock
}

func pendingRequest(t *testing.T) *domain.Request {
	t.Helper()
	request, err := domain.NewRequest(models.ID(testRequesterID), "", "fix the sink", "", nil, decimal.RequireFromString("80"), "EUR")
	require.NoError(t, err)
	return request
}

func TestPostgresRequestRepository_SaveInsertsNewRequest(t *testing.T) {
	repo, mock := newMockRepository(t)
	request := pendingRequest(t)

	mock.ExpectExec("INSERT INTO requests").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), request))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRequestRepository_SaveAppliesConditionalTransition(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{name: "guard holds", rowsAffected: 1},
		{name: "lost race", rowsAffected: 0, expectedError: domain.ErrConcurrentUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			request := pendingRequest(t)
			request.ClearEvents()
			require.NoError(t, request.Assign(models.ID(testFulfillerID)))

			mock.ExpectExec("UPDATE requests SET status = (.+) WHERE id = (.+) AND status = (.+) AND fulfiller_id IS NOT DISTINCT FROM").
				WithArgs(
					"assigned", testFulfillerID, "", nil, nil, nil, sqlmock.AnyArg(),
					request.ID.String(), "pending", nil,
				).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.Save(context.Background(), request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRequestRepository_SaveWithoutEventsIsNoop(t *testing.T) {
	repo, mock := newMockRepository(t)
	request := pendingRequest(t)
	request.ClearEvents()

	require.NoError(t, repo.Save(context.Background(), request))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRequestRepository_FindByID(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()
	fulfiller := testFulfillerID

	mock.ExpectQuery("SELECT (.+) FROM requests WHERE id = \\$1").
		WithArgs(testRequestID).
		WillReturnRows(sqlmock.NewRows(requestRowColumns).AddRow(
			testRequestID, testRequesterID, fulfiller, nil, "fix the sink", "Main St 1",
			nil, "in_progress", "pending", "80.50", "eur", "",
			nil, nil, nil, now, now,
		))

	request, err := repo.FindByID(context.Background(), models.ID(testRequestID))
	require.NoError(t, err)
	require.NotNil(t, request)

	assert.Equal(t, domain.RequestStatusInProgress, request.Status)
	assert.Equal(t, models.ID(testFulfillerID), request.FulfillerID)
	assert.True(t, request.CategoryID.IsZero())
	assert.True(t, decimal.RequireFromString("80.5").Equal(request.Amount))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRequestRepository_FindByIDMissing(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM requests WHERE id = \\$1").
		WithArgs(testRequestID).
		WillReturnError(sql.ErrNoRows)

	request, err := repo.FindByID(context.Background(), models.ID(testRequestID))
	assert.NoError(t, err)
	assert.Nil(t, request)
}

func TestPostgresRequestRepository_FindAvailable(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM requests WHERE status = 'pending' AND fulfiller_id IS NULL").
		WillReturnRows(sqlmock.NewRows(requestRowColumns).
			AddRow(testRequestID, testRequesterID, nil, nil, "a", "", nil, "pending", "pending", "10", "eur", "", nil, nil, nil, now, now).
			AddRow("550e8400-e29b-41d4-a716-446655440002", testRequesterID, nil, nil, "b", "", nil, "pending", "pending", "12", "eur", "", nil, nil, nil, now, now))

	requests, err := repo.FindAvailable(context.Background())
	require.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRequestRepository_FindByRequesterFiltersStatus(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM requests WHERE requester_id = \\$1").
		WithArgs(testRequesterID, "completed").
		WillReturnRows(sqlmock.NewRows(requestRowColumns))

	requests, err := repo.FindByRequester(context.Background(), models.ID(testRequesterID), domain.RequestStatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRequestRepository_UpdatePaymentStatus(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expected     bool
	}{
		{name: "status changed", rowsAffected: 1, expected: true},
		{name: "status already equal", rowsAffected: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			mock.ExpectExec("UPDATE requests SET payment_status = \\$1, updated_at = \\$2 WHERE id = \\$3 AND payment_status IS DISTINCT FROM \\$1").
				WithArgs("completed", sqlmock.AnyArg(), testRequestID).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			changed, err := repo.UpdatePaymentStatus(context.Background(), models.ID(testRequestID), domain.PaymentStatusCompleted)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, changed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRequestRepository_SaveRating(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{name: "first rating", rowsAffected: 1},
		{name: "request already rated", rowsAffected: 0, expectedError: domain.ErrAlreadyRated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			rating := &domain.Rating{
				ID:          models.GenerateUUID(),
				RequestID:   models.ID(testRequestID),
				RequesterID: models.ID(testRequesterID),
				FulfillerID: models.ID(testFulfillerID),
				Rating:      4,
				Comment:     "on time",
				CreatedAt:   time.Now().UTC(),
			}

			mock.ExpectExec("INSERT INTO request_ratings (.+) ON CONFLICT \\(request_id\\) DO NOTHING").
				WithArgs(rating.ID.String(), testRequestID, testRequesterID, testFulfillerID, 4, "on time", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.SaveRating(context.Background(), rating)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := Migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "00002_create_request_ratings.sql", entries[1].Name())
}
