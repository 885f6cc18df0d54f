package services

import (
	"context"

	"github.com/google/uuid"
	"tassili/internal/models/db_models"
	"tassili/internal/models/response_models"
	"tassili/internal/repositories"
	"tassili/pkg/utils"
)

type FavoriteServiceInterface interface {
	ToggleFavorite(ctx context.Context, accountId string, tripId string) (*response_models.ToggleFavoriteResponse, error)
	ListFavorites(ctx context.Context, accountId string) ([]response_models.TripResponse, error)
	Summary(ctx context.Context, accountId string) (*response_models.FavoritesSummaryResponse, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	tripRepo     repositories.TripRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, tripRepo repositories.TripRepository) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		tripRepo:     tripRepo,
	}
}

func (f *FavoriteService) ToggleFavorite(ctx context.Context, accountId string, tripId string) (*response_models.ToggleFavoriteResponse, error) {

	trip, err := f.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	existing, err := f.favoriteRepo.Find(ctx, accountId, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := f.favoriteRepo.Delete(ctx, accountId, tripId); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.ToggleFavoriteResponse{TripID: tripId, IsFavorite: false}, nil
	}

	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	favorite := &db_models.Favorite{
		AccountID: accountUUID,
		TripID:    trip.ID,
	}
	if err := f.favoriteRepo.Insert(ctx, favorite); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.ToggleFavoriteResponse{TripID: tripId, IsFavorite: true}, nil
}

func (f *FavoriteService) ListFavorites(ctx context.Context, accountId string) ([]response_models.TripResponse, error) {

	favorites, err := f.favoriteRepo.ListByAccount(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(favorites))
	for _, favorite := range favorites {
		out = append(out, ToTripResponse(favorite.Trip))
	}
	return out, nil
}

// Summary computes the saved-trips header stats: count, distinct categories,
// summed display prices and the average rating.
func (f *FavoriteService) Summary(ctx context.Context, accountId string) (*response_models.FavoritesSummaryResponse, error) {

	favorites, err := f.favoriteRepo.ListByAccount(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summary := &response_models.FavoritesSummaryResponse{
		TotalTrips: len(favorites),
		Categories: []string{},
	}

	seen := make(map[string]bool)
	var ratingSum float64
	for _, favorite := range favorites {
		trip := favorite.Trip
		if cat := string(trip.Category); cat != "" && !seen[cat] {
			seen[cat] = true
			summary.Categories = append(summary.Categories, cat)
		}

		base := trip.PriceMinor
		if base == 0 {
			base = utils.ParseDisplayPrice(trip.DisplayPrice)
		}
		summary.TotalPrice += base
		ratingSum += trip.Rating
	}

	if len(favorites) > 0 {
		summary.AverageRating = ratingSum / float64(len(favorites))
	}
	summary.TotalDisplay = utils.FormatPriceDA(summary.TotalPrice)

	return summary, nil
}
