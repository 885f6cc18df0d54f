package booking_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tassili/internal/repositories"
	"tassili/internal/services"
)

const defaultProcessingDelayMs = 1200

var Module = fx.Provide(
	provideBookingService, provideBookingRepo, provideDraftStore, provideVoucherService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideDraftStore() *services.DraftStore {
	return services.NewDraftStore(30 * time.Minute)
}

func provideVoucherService() services.VoucherServiceInterface {
	return services.NewVoucherService()
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	drafts *services.DraftStore,
	mailService services.IMailService,
) services.BookingServiceInterface {
	delayMs := defaultProcessingDelayMs
	if v, err := strconv.Atoi(os.Getenv("BOOKING_PROCESSING_DELAY_MS")); err == nil && v >= 0 {
		delayMs = v
	}
	return services.NewBookingService(bookingRepo, tripRepo, accountRepo, drafts, mailService, time.Duration(delayMs)*time.Millisecond)
}
