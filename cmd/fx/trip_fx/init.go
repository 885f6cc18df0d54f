package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tassili/internal/repositories"
	"tassili/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideTripRepo)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}
