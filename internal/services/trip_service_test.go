package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tassili/internal/models/db_models"
	"tassili/internal/models/response_models"
	"tassili/pkg/utils"
)

func TestListTripsFiltersByCategory(t *testing.T) {
	desert := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	beach := storedTrip("Bejaia Coastal Escape", "62,000 DA", 62000, db_models.CategoryBeach)
	svc := NewTripService(newFakeTripRepo(desert, beach))
	ctx := context.Background()

	all, err := svc.ListTrips(ctx, 1, 20, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	desertOnly, err := svc.ListTrips(ctx, 1, 20, "Desert")
	require.NoError(t, err)
	require.Len(t, desertOnly, 1)
	assert.Equal(t, "Djanet Desert Magic", desertOnly[0].Title)
}

func TestListAgencyPackages(t *testing.T) {
	regular := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	agency := storedTrip("Sahara Sunset Camping", "55,000 DA", 55000, db_models.CategoryDesert)
	agency.IsAgencyPackage = true
	svc := NewTripService(newFakeTripRepo(regular, agency))

	packages, err := svc.ListAgencyPackages(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "Sahara Sunset Camping", packages[0].Title)
	assert.True(t, packages[0].AgencyOffer)
}

func TestGetTripById(t *testing.T) {
	trip := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	svc := NewTripService(newFakeTripRepo(trip))
	ctx := context.Background()

	got, err := svc.GetTripById(ctx, trip.ID.String())
	require.NoError(t, err)
	assert.Equal(t, trip.ID.String(), got.ID)
	assert.Equal(t, "89,000 DA", got.Price)
	assert.Equal(t, int64(89000), got.PriceMinor)

	_, err = svc.GetTripById(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGenerateVoucherProducesPDF(t *testing.T) {
	voucher := NewVoucherService()

	pdfBytes, err := voucher.GenerateVoucher(&response_models.BookingResponse{
		ID:        uuid.NewString(),
		Reference: "BK3F2A9C1D",
		Trip: response_models.TripResponse{
			Title:    "Djanet Desert Magic",
			Location: "Djanet, Illizi",
		},
		Travelers: []response_models.TravelerResponse{
			{ID: uuid.NewString(), FullName: "Amina Bensalem", Age: 34},
		},
		TotalPrice:    89000,
		TotalDisplay:  "89,000 DA",
		BookingDate:   "Aug 31, 2026",
		Status:        "confirmed",
		PaymentStatus: "paid",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
