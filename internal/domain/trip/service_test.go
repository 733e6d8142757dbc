package trip_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remvana/nestmap/internal/domain/trip"
	"github.com/remvana/nestmap/internal/repository"
	"github.com/remvana/nestmap/internal/repository/mocks"
)

func TestTripService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TripRepository{}
	repo.On("Create", ctx, "tenant1", mock.Anything).Return(nil)

	svc := trip.NewService(repo, nil)
	created, err := svc.Create(ctx, "tenant1", trip.CreateRequest{
		Title:     "Paris long weekend",
		City:      "Paris",
		Country:   "France",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "tenant1", created.TenantID)
	require.Equal(t, "Paris long weekend", created.Title)
	repo.AssertExpectations(t)
}

func TestTripService_Create_EmptyTitle(t *testing.T) {
	svc := trip.NewService(&mocks.TripRepository{}, nil)
	_, err := svc.Create(context.Background(), "tenant1", trip.CreateRequest{
		Title:     "   ",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
	})
	require.ErrorIs(t, err, trip.ErrInvalidInput)
}

func TestTripService_Create_InvalidDateRange(t *testing.T) {
	svc := trip.NewService(&mocks.TripRepository{}, nil)

	_, err := svc.Create(context.Background(), "tenant1", trip.CreateRequest{
		Title:     "Backwards",
		StartDate: "2024-06-04",
		EndDate:   "2024-06-01",
	})
	require.ErrorIs(t, err, trip.ErrInvalidDateRange)

	_, err = svc.Create(context.Background(), "tenant1", trip.CreateRequest{
		Title:     "Garbage",
		StartDate: "June first",
		EndDate:   "2024-06-01",
	})
	require.ErrorIs(t, err, trip.ErrInvalidDateRange)
}

func TestTripService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TripRepository{}
	repo.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := trip.NewService(repo, nil)
	_, err := svc.Get(ctx, "tenant1", "missing")
	require.ErrorIs(t, err, trip.ErrTripNotFound)
}

func TestTripService_Update(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TripRepository{}
	repo.On("Get", ctx, "tenant1", "trip1").Return(&trip.Trip{
		ID:        "trip1",
		TenantID:  "tenant1",
		Title:     "Old title",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
	}, nil)
	repo.On("Update", ctx, "tenant1", mock.Anything).Return(nil)

	newTitle := "New title"
	svc := trip.NewService(repo, nil)
	updated, err := svc.Update(ctx, "tenant1", trip.UpdateRequest{ID: "trip1", Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "New title", updated.Title)
	require.Equal(t, "2024-06-01", updated.StartDate)
}

func TestTripService_Update_RevalidatesDateRange(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TripRepository{}
	repo.On("Get", ctx, "tenant1", "trip1").Return(&trip.Trip{
		ID:        "trip1",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-04",
	}, nil)

	badEnd := "2024-05-01"
	svc := trip.NewService(repo, nil)
	_, err := svc.Update(ctx, "tenant1", trip.UpdateRequest{ID: "trip1", EndDate: &badEnd})
	require.ErrorIs(t, err, trip.ErrInvalidDateRange)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.TripRepository{}
	repo.On("Delete", ctx, "tenant1", "missing").Return(repository.ErrNotFound)

	svc := trip.NewService(repo, nil)
	require.ErrorIs(t, svc.Delete(ctx, "tenant1", "missing"), trip.ErrTripNotFound)
}
