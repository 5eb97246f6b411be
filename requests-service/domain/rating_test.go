package domain

import (
	"testing"

	"github.com/servicehub/booking-system/shared/events"
	"github.com/servicehub/booking-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Rate(t *testing.T) {
	tests := []struct {
		name          string
		status        RequestStatus
		actor         models.ID
		rating        int
		expectedError error
	}{
		{name: "requester rates a completed request", status: RequestStatusCompleted, actor: requesterID, rating: 5},
		{name: "lowest score", status: RequestStatusCompleted, actor: requesterID, rating: MinRating},
		{name: "score below range", status: RequestStatusCompleted, actor: requesterID, rating: 0, expectedError: ErrInvalidRating},
		{name: "score above range", status: RequestStatusCompleted, actor: requesterID, rating: 6, expectedError: ErrInvalidRating},
		{name: "fulfiller cannot rate", status: RequestStatusCompleted, actor: fulfillerID, rating: 4, expectedError: ErrNotRequester},
		{name: "stranger cannot rate", status: RequestStatusCompleted, actor: strangerID, rating: 4, expectedError: ErrNotRequester},
		{name: "in progress", status: RequestStatusInProgress, actor: requesterID, rating: 4, expectedError: ErrNotCompleted},
		{name: "cancelled", status: RequestStatusCancelled, actor: requesterID, rating: 4, expectedError: ErrNotCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := requestIn(t, tt.status)

			rating, err := request.Rate(tt.actor, tt.rating, "  on time  ")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rating)
				assert.Empty(t, request.Events())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, request.ID, rating.RequestID)
			assert.Equal(t, fulfillerID, rating.FulfillerID)
			assert.Equal(t, tt.rating, rating.Rating)
			assert.Equal(t, "on time", rating.Comment)
			assert.Equal(t, tt.status, request.Status)

			require.Len(t, request.Events(), 1)
			assert.Equal(t, events.RequestRatedEvent, request.Events()[0].Type)
		})
	}
}
