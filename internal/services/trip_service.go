package services

import (
	"context"

	"tassili/internal/models/db_models"
	"tassili/internal/models/response_models"
	"tassili/internal/repositories"
	"tassili/pkg/utils"
)

type TripServiceInterface interface {
	ListTrips(ctx context.Context, page int, pageSize int, category string) ([]response_models.TripResponse, error)
	ListAgencyPackages(ctx context.Context, page int, pageSize int) ([]response_models.TripResponse, error)
	GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) ListTrips(ctx context.Context, page int, pageSize int, category string) ([]response_models.TripResponse, error) {

	trips, err := t.tripRepo.ListTrips(ctx, page, pageSize, category)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, ToTripResponse(trip))
	}
	return out, nil
}

func (t *TripService) ListAgencyPackages(ctx context.Context, page int, pageSize int) ([]response_models.TripResponse, error) {

	trips, err := t.tripRepo.ListAgencyPackages(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, ToTripResponse(trip))
	}
	return out, nil
}

func (t *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error) {

	trip, err := t.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	out := ToTripResponse(*trip)
	return &out, nil
}

// ToTripResponse normalizes a catalog row into the shape every screen
// consumes; agency packages are indistinguishable apart from the flag.
func ToTripResponse(trip db_models.Trip) response_models.TripResponse {
	price := trip.DisplayPrice
	if price == "" && trip.PriceMinor > 0 {
		price = utils.FormatPriceDA(trip.PriceMinor)
	}
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Price:       price,
		PriceMinor:  trip.PriceMinor,
		Duration:    trip.Duration,
		Location:    trip.Location,
		Agency:      trip.Agency,
		Rating:      trip.Rating,
		Category:    string(trip.Category),
		Description: trip.Description,
		Images:      trip.Images,
		AgencyOffer: trip.IsAgencyPackage,
	}
}
