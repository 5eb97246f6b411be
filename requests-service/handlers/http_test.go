package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/servicehub/booking-system/requests-service/application"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/requests-service/mocks"
	"github.com/servicehub/booking-system/shared/api"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/servicehub/booking-system/shared/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	clientID   = "550e8400-e29b-41d4-a716-446655440010"
	providerID = "550e8400-e29b-41d4-a716-446655440020"
)

func newRouter(repo *mocks.MockRequestRepository, publisher *mocks.MockPublisher) *chi.Mux {
	logger := telemetry.NopLogger()
	h := NewRequestHandlers(
		application.NewCreateRequest(repo, publisher, logger),
		application.NewGetRequest(repo),
		application.NewListRequests(repo),
		application.NewAssignRequest(repo, publisher, logger),
		application.NewStartRequest(repo, publisher, logger),
		application.NewCompleteRequest(repo, publisher, logger),
		application.NewCancelRequest(repo, publisher, logger),
		application.NewRateRequest(repo, publisher, logger),
		logger,
	)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func pendingRequest(t *testing.T) *domain.Request {
	t.Helper()
	request, err := domain.NewRequest(models.ID(clientID), "", "Paint the fence", "", nil, decimal.RequireFromString("80"), "")
	require.NoError(t, err)
	request.ClearEvents()
	return request
}

func completedRequest(t *testing.T) *domain.Request {
	t.Helper()
	request := pendingRequest(t)
	require.NoError(t, request.Assign(models.ID(providerID)))
	require.NoError(t, request.Start(models.ID(providerID)))
	require.NoError(t, request.Complete(models.ID(providerID)))
	request.ClearEvents()
	return request
}

func doRequest(router http.Handler, method, path, body, userID, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(api.UserIDHeader, userID)
	}
	req.Header.Set(api.UserRoleHeader, role)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestHandlers_Create(t *testing.T) {
	repo := mocks.NewMockRequestRepository(t)
	publisher := mocks.NewMockPublisher(t)
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.Request")).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	rec := doRequest(newRouter(repo, publisher), http.MethodPost, "/requests/",
		`{"description":"Paint the fence","amount":"80"}`, clientID, "client")

	require.Equal(t, http.StatusCreated, rec.Code)
	var body application.RequestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, clientID, body.RequesterID)
	assert.Equal(t, "80.00", body.Amount)
	assert.Equal(t, "pending", body.Status)
}

func TestRequestHandlers_MissingIdentity(t *testing.T) {
	rec := doRequest(newRouter(mocks.NewMockRequestRepository(t), mocks.NewMockPublisher(t)),
		http.MethodGet, "/requests/mine", "", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestHandlers_InvalidBody(t *testing.T) {
	rec := doRequest(newRouter(mocks.NewMockRequestRepository(t), mocks.NewMockPublisher(t)),
		http.MethodPost, "/requests/", `{"amount":`, clientID, "client")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestHandlers_Assign(t *testing.T) {
	t.Run("provider accepts", func(t *testing.T) {
		repo := mocks.NewMockRequestRepository(t)
		publisher := mocks.NewMockPublisher(t)
		stored := pendingRequest(t)
		repo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil).Once()
		repo.EXPECT().Save(mock.Anything, stored).Return(nil).Once()
		publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			return evt.Type == events.RequestAssignedEvent
		})).Return(nil).Once()

		rec := doRequest(newRouter(repo, publisher), http.MethodPost, "/requests/"+stored.ID.String()+"/assign", "", providerID, "Provider")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"assigned"`)
	})

	t.Run("lost race maps to bad request", func(t *testing.T) {
		repo := mocks.NewMockRequestRepository(t)
		publisher := mocks.NewMockPublisher(t)
		stored := pendingRequest(t)
		repo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil).Once()
		repo.EXPECT().Save(mock.Anything, stored).Return(domain.ErrConcurrentUpdate).Once()

		rec := doRequest(newRouter(repo, publisher), http.MethodPost, "/requests/"+stored.ID.String()+"/assign", "", providerID, "provider")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRequestHandlers_Get(t *testing.T) {
	t.Run("unknown request", func(t *testing.T) {
		repo := mocks.NewMockRequestRepository(t)
		id := models.GenerateUUID()
		repo.EXPECT().FindByID(mock.Anything, id).Return(nil, nil).Once()

		rec := doRequest(newRouter(repo, mocks.NewMockPublisher(t)), http.MethodGet, "/requests/"+id.String(), "", clientID, "client")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("storage failure is hidden", func(t *testing.T) {
		repo := mocks.NewMockRequestRepository(t)
		id := models.GenerateUUID()
		repo.EXPECT().FindByID(mock.Anything, id).Return(nil, assert.AnError).Once()

		rec := doRequest(newRouter(repo, mocks.NewMockPublisher(t)), http.MethodGet, "/requests/"+id.String(), "", clientID, "client")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestRequestHandlers_CancelWithReason(t *testing.T) {
	repo := mocks.NewMockRequestRepository(t)
	publisher := mocks.NewMockPublisher(t)
	stored := pendingRequest(t)
	repo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil).Once()
	repo.EXPECT().Save(mock.Anything, stored).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	rec := doRequest(newRouter(repo, publisher), http.MethodPost, "/requests/"+stored.ID.String()+"/cancel",
		`{"reason":"changed my mind"}`, clientID, "client")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancellation_reason":"changed my mind"`)
}

func TestRequestHandlers_Available(t *testing.T) {
	t.Run("provider browses", func(t *testing.T) {
		repo := mocks.NewMockRequestRepository(t)
		repo.EXPECT().FindAvailable(mock.Anything).Return([]*domain.Request{pendingRequest(t)}, nil).Once()

		rec := doRequest(newRouter(repo, mocks.NewMockPublisher(t)), http.MethodGet, "/requests/available", "", providerID, "provider")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		repo := mocks.NewMockRequestRepository(t)

		rec := doRequest(newRouter(repo, mocks.NewMockPublisher(t)), http.MethodGet, "/requests/available", "", clientID, "client")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestHandlers_Rate(t *testing.T) {
	tests := []struct {
		name         string
		userID       string
		body         string
		saveErr      error
		expectSave   bool
		expectedCode int
	}{
		{name: "requester rates", userID: clientID, body: `{"rating":5,"comment":"great work"}`, expectSave: true, expectedCode: http.StatusOK},
		{name: "fulfiller cannot rate", userID: providerID, body: `{"rating":5}`, expectedCode: http.StatusForbidden},
		{name: "score out of range", userID: clientID, body: `{"rating":6}`, expectedCode: http.StatusBadRequest},
		{name: "second rating", userID: clientID, body: `{"rating":3}`, saveErr: domain.ErrAlreadyRated, expectSave: true, expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRequestRepository(t)
			publisher := mocks.NewMockPublisher(t)
			stored := completedRequest(t)
			repo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil).Once()
			if tt.expectSave {
				repo.EXPECT().SaveRating(mock.Anything, mock.AnythingOfType("*domain.Rating")).Return(tt.saveErr).Once()
			}
			if tt.expectSave && tt.saveErr == nil {
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Type == events.RequestRatedEvent
				})).Return(nil).Once()
			}

			rec := doRequest(newRouter(repo, publisher), http.MethodPost, "/requests/"+stored.ID.String()+"/rate", tt.body, tt.userID, "client")

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var body application.RatingResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, 5, body.Rating)
				assert.Equal(t, "great work", body.Comment)
				assert.Equal(t, providerID, body.FulfillerID)
			}
		})
	}
}
