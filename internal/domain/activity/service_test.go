package activity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remvana/nestmap/internal/domain/activity"
	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/repository"
	"github.com/remvana/nestmap/internal/repository/mocks"
)

func TestActivityService_Create_NormalizesFields(t *testing.T) {
	ctx := context.Background()
	activitiesRepo := &mocks.ActivityRepository{}
	tripsRepo := &mocks.TripRepository{}

	tripsRepo.On("Get", ctx, "tenant1", "trip1").Return(&trip.Trip{ID: "trip1"}, nil)
	activitiesRepo.On("Create", ctx, "tenant1", mock.Anything).Return(nil)

	svc := activity.NewService(activitiesRepo, tripsRepo, nil)
	created, err := svc.Create(ctx, "tenant1", activity.CreateRequest{
		TripID: "trip1",
		Title:  "Louvre",
		Date:   "2024-06-01",
		Time:   "9:30",
	})
	require.NoError(t, err)
	require.Equal(t, "09:30", created.Time, "time is stored zero-padded")
	require.Equal(t, activity.ModeWalking, created.Mode, "mode defaults to walking")
	require.Equal(t, activity.TagOther, created.Tag)
	require.NotEmpty(t, created.ID)
}

func TestActivityService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := activity.NewService(&mocks.ActivityRepository{}, &mocks.TripRepository{}, nil)

	_, err := svc.Create(ctx, "tenant1", activity.CreateRequest{
		TripID: "trip1", Title: "X", Date: "June 1", Time: "09:00",
	})
	require.ErrorIs(t, err, activity.ErrInvalidDate)

	_, err = svc.Create(ctx, "tenant1", activity.CreateRequest{
		TripID: "trip1", Title: "X", Date: "2024-06-01", Time: "25:00",
	})
	require.ErrorIs(t, err, activity.ErrInvalidClock)

	_, err = svc.Create(ctx, "tenant1", activity.CreateRequest{
		TripID: "trip1", Title: "X", Date: "2024-06-01", Time: "09:00", Mode: "rocket",
	})
	require.ErrorIs(t, err, activity.ErrInvalidMode)

	lat := 48.8566
	_, err = svc.Create(ctx, "tenant1", activity.CreateRequest{
		TripID: "trip1", Title: "X", Date: "2024-06-01", Time: "09:00", Latitude: &lat,
	})
	require.ErrorIs(t, err, activity.ErrInvalidCoordinates)

	_, err = svc.Create(ctx, "tenant1", activity.CreateRequest{
		TripID: "trip1", Title: "", Date: "2024-06-01", Time: "09:00",
	})
	require.ErrorIs(t, err, activity.ErrInvalidInput)
}

func TestActivityService_Create_TripNotFound(t *testing.T) {
	ctx := context.Background()
	activitiesRepo := &mocks.ActivityRepository{}
	tripsRepo := &mocks.TripRepository{}
	tripsRepo.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := activity.NewService(activitiesRepo, tripsRepo, nil)
	_, err := svc.Create(ctx, "tenant1", activity.CreateRequest{
		TripID: "missing", Title: "X", Date: "2024-06-01", Time: "09:00",
	})
	require.ErrorIs(t, err, trip.ErrTripNotFound)
}

func TestActivityService_Update(t *testing.T) {
	ctx := context.Background()
	activitiesRepo := &mocks.ActivityRepository{}
	tripsRepo := &mocks.TripRepository{}

	activitiesRepo.On("Get", ctx, "tenant1", "a1").Return(&activity.Activity{
		ID:     "a1",
		TripID: "trip1",
		Title:  "Louvre",
		Date:   "2024-06-01",
		Time:   "09:00",
		Mode:   activity.ModeWalking,
	}, nil)
	activitiesRepo.On("Update", ctx, "tenant1", mock.Anything).Return(nil)

	newTime := "14:5"
	newMode := "transit"
	svc := activity.NewService(activitiesRepo, tripsRepo, nil)
	updated, err := svc.Update(ctx, "tenant1", activity.UpdateRequest{
		ID:   "a1",
		Time: &newTime,
		Mode: &newMode,
	})
	require.NoError(t, err)
	require.Equal(t, "14:05", updated.Time)
	require.Equal(t, activity.ModeTransit, updated.Mode)
	require.Equal(t, "2024-06-01", updated.Date, "unchanged fields are kept")
}

func TestActivityService_Update_ClearCoordinates(t *testing.T) {
	ctx := context.Background()
	activitiesRepo := &mocks.ActivityRepository{}

	lat, lon := 48.8566, 2.3522
	activitiesRepo.On("Get", ctx, "tenant1", "a1").Return(&activity.Activity{
		ID:        "a1",
		Date:      "2024-06-01",
		Time:      "09:00",
		Latitude:  &lat,
		Longitude: &lon,
	}, nil)
	activitiesRepo.On("Update", ctx, "tenant1", mock.Anything).Return(nil)

	svc := activity.NewService(activitiesRepo, &mocks.TripRepository{}, nil)
	updated, err := svc.Update(ctx, "tenant1", activity.UpdateRequest{
		ID:               "a1",
		ClearCoordinates: true,
	})
	require.NoError(t, err)
	require.Nil(t, updated.Latitude)
	require.Nil(t, updated.Longitude)
}

func TestActivityService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	activitiesRepo := &mocks.ActivityRepository{}
	activitiesRepo.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := activity.NewService(activitiesRepo, &mocks.TripRepository{}, nil)
	_, err := svc.Get(ctx, "tenant1", "missing")
	require.ErrorIs(t, err, activity.ErrActivityNotFound)
}

func TestActivityService_ListByTrip_TripNotFound(t *testing.T) {
	ctx := context.Background()
	tripsRepo := &mocks.TripRepository{}
	tripsRepo.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := activity.NewService(&mocks.ActivityRepository{}, tripsRepo, nil)
	_, err := svc.ListByTrip(ctx, "tenant1", "missing", activity.ListOptions{})
	require.ErrorIs(t, err, trip.ErrTripNotFound)
}
