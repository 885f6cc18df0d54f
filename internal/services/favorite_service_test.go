package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tassili/internal/models/db_models"
	"tassili/pkg/utils"
)

type fakeFavoriteRepo struct {
	tripRepo  *fakeTripRepo
	favorites map[string]db_models.Favorite
}

func newFakeFavoriteRepo(tripRepo *fakeTripRepo) *fakeFavoriteRepo {
	return &fakeFavoriteRepo{tripRepo: tripRepo, favorites: make(map[string]db_models.Favorite)}
}

func favKey(accountId string, tripId string) string {
	return accountId + "/" + tripId
}

func (f *fakeFavoriteRepo) Find(ctx context.Context, accountId string, tripId string) (*db_models.Favorite, error) {
	fav, ok := f.favorites[favKey(accountId, tripId)]
	if !ok {
		return nil, nil
	}
	return &fav, nil
}

func (f *fakeFavoriteRepo) Insert(ctx context.Context, favorite *db_models.Favorite) error {
	f.favorites[favKey(favorite.AccountID.String(), favorite.TripID.String())] = *favorite
	return nil
}

func (f *fakeFavoriteRepo) Delete(ctx context.Context, accountId string, tripId string) error {
	delete(f.favorites, favKey(accountId, tripId))
	return nil
}

func (f *fakeFavoriteRepo) ListByAccount(ctx context.Context, accountId string) ([]db_models.Favorite, error) {
	out := make([]db_models.Favorite, 0)
	for _, fav := range f.favorites {
		if fav.AccountID.String() != accountId {
			continue
		}
		if trip, ok := f.tripRepo.trips[fav.TripID.String()]; ok {
			fav.Trip = trip
		}
		out = append(out, fav)
	}
	return out, nil
}

func newTestFavoriteService(trips ...db_models.Trip) FavoriteServiceInterface {
	tripRepo := newFakeTripRepo(trips...)
	return NewFavoriteService(newFakeFavoriteRepo(tripRepo), tripRepo)
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	trip := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	svc := newTestFavoriteService(trip)
	accountId := uuid.NewString()
	ctx := context.Background()

	on, err := svc.ToggleFavorite(ctx, accountId, trip.ID.String())
	require.NoError(t, err)
	assert.True(t, on.IsFavorite)

	trips, err := svc.ListFavorites(ctx, accountId)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Djanet Desert Magic", trips[0].Title)

	off, err := svc.ToggleFavorite(ctx, accountId, trip.ID.String())
	require.NoError(t, err)
	assert.False(t, off.IsFavorite)

	trips, err = svc.ListFavorites(ctx, accountId)
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestToggleFavoriteUnknownTrip(t *testing.T) {
	svc := newTestFavoriteService()

	_, err := svc.ToggleFavorite(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestFavoritesAreScopedToAccount(t *testing.T) {
	trip := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	svc := newTestFavoriteService(trip)
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, uuid.NewString(), trip.ID.String())
	require.NoError(t, err)

	trips, err := svc.ListFavorites(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestFavoritesSummary(t *testing.T) {
	desert := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	desert.Rating = 4.8
	beach := storedTrip("Bejaia Coastal Escape", "62,000 DA", 62000, db_models.CategoryBeach)
	beach.Rating = 4.9

	svc := newTestFavoriteService(desert, beach)
	accountId := uuid.NewString()
	ctx := context.Background()

	for _, trip := range []db_models.Trip{desert, beach} {
		_, err := svc.ToggleFavorite(ctx, accountId, trip.ID.String())
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx, accountId)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalTrips)
	assert.ElementsMatch(t, []string{"Desert", "Beach"}, summary.Categories)
	assert.Equal(t, int64(151000), summary.TotalPrice)
	assert.Equal(t, "151,000 DA", summary.TotalDisplay)
	assert.InDelta(t, 4.85, summary.AverageRating, 0.0001)
}

func TestFavoritesSummaryEmpty(t *testing.T) {
	svc := newTestFavoriteService()

	summary, err := svc.Summary(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalTrips)
	assert.Empty(t, summary.Categories)
	assert.Zero(t, summary.AverageRating)
}
