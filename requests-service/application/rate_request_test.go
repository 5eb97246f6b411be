package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/servicehub/booking-system/requests-service/domain"
	"github.com/servicehub/booking-system/requests-service/mocks"
	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/servicehub/booking-system/shared/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRateRequest_Execute(t *testing.T) {
	tests := []struct {
		name          string
		storedStatus  domain.RequestStatus
		actorID       string
		rating        int
		saveErr       error
		expectSave    bool
		expectPublish bool
		expectedError error
		expectedMsg   string
	}{
		{
			name:          "requester rates a completed request",
			storedStatus:  domain.RequestStatusCompleted,
			actorID:       testRequesterID,
			rating:        5,
			expectSave:    true,
			expectPublish: true,
		},
		{
			name:          "rating out of range",
			storedStatus:  domain.RequestStatusCompleted,
			actorID:       testRequesterID,
			rating:        9,
			expectedError: domain.ErrInvalidRating,
		},
		{
			name:          "only the requester rates",
			storedStatus:  domain.RequestStatusCompleted,
			actorID:       testFulfillerID,
			rating:        5,
			expectedError: domain.ErrNotRequester,
		},
		{
			name:          "request not completed",
			storedStatus:  domain.RequestStatusInProgress,
			actorID:       testRequesterID,
			rating:        5,
			expectedError: domain.ErrNotCompleted,
		},
		{
			name:          "rated once",
			storedStatus:  domain.RequestStatusCompleted,
			actorID:       testRequesterID,
			rating:        3,
			saveErr:       domain.ErrAlreadyRated,
			expectSave:    true,
			expectedError: domain.ErrAlreadyRated,
		},
		{
			name:         "storage failure",
			storedStatus: domain.RequestStatusCompleted,
			actorID:      testRequesterID,
			rating:       3,
			saveErr:      errors.New("connection reset"),
			expectSave:   true,
			expectedMsg:  "failed to save rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRequestRepository(t)
			publisher := mocks.NewMockPublisher(t)
			stored := storedRequest(t, tt.storedStatus)

			repo.EXPECT().FindByID(mock.Anything, stored.ID).Return(stored, nil).Once()
			if tt.expectSave {
				repo.EXPECT().SaveRating(mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
					return r.RequestID == stored.ID && r.Rating == tt.rating
				})).Return(tt.saveErr).Once()
			}
			if tt.expectPublish {
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					var data events.RequestRatedData
					return evt.Type == events.RequestRatedEvent &&
						evt.UnmarshalPayload(&data) == nil &&
						data.FulfillerID == models.ID(testFulfillerID) &&
						data.Rating == tt.rating
				})).Return(nil).Once()
			}

			result, err := NewRateRequest(repo, publisher, telemetry.NopLogger()).Execute(context.Background(), &RateRequestCommand{
				RequestID: stored.ID.String(),
				ActorID:   tt.actorID,
				Rating:    tt.rating,
				Comment:   "tidy work",
			})

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.expectedMsg != "":
				assert.ErrorContains(t, err, tt.expectedMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, stored.ID.String(), result.RequestID)
				assert.Equal(t, tt.rating, result.Rating)
				assert.Equal(t, "tidy work", result.Comment)
			}
		})
	}
}

func TestRateRequest_UnknownRequest(t *testing.T) {
	repo := mocks.NewMockRequestRepository(t)
	id := models.GenerateUUID()
	repo.EXPECT().FindByID(mock.Anything, id).Return(nil, nil).Once()

	_, err := NewRateRequest(repo, mocks.NewMockPublisher(t), telemetry.NopLogger()).Execute(context.Background(), &RateRequestCommand{
		RequestID: id.String(),
		ActorID:   testRequesterID,
		Rating:    4,
	})
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
