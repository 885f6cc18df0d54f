package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"tassili/internal/models/db_models"
	"tassili/internal/models/request_models"
	"tassili/internal/models/response_models"
	"tassili/internal/repositories"
	"tassili/pkg/utils"
)

type BookingServiceInterface interface {
	StartDraft(ctx context.Context, accountId string, tripId string) (*response_models.DraftResponse, error)
	GetDraft(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, error)
	AddTraveler(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, error)
	RemoveTraveler(ctx context.Context, accountId string, draftId string, travelerId string) (*response_models.DraftResponse, error)
	UpdateTraveler(ctx context.Context, accountId string, draftId string, travelerId string, req request_models.UpdateTravelerRequest) (*response_models.DraftResponse, error)
	UpdateDetails(ctx context.Context, accountId string, draftId string, req request_models.UpdateDraftDetailsRequest) (*response_models.DraftResponse, error)
	NextStep(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, error)
	BackStep(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, bool, error)
	Confirm(ctx context.Context, accountId string, draftId string) (*response_models.BookingResponse, error)

	ListBookings(ctx context.Context, accountId string) (*response_models.GroupedBookingsResponse, error)
	GetBooking(ctx context.Context, accountId string, bookingId string) (*response_models.BookingResponse, error)
	CancelBooking(ctx context.Context, accountId string, bookingId string) (*response_models.BookingResponse, error)
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
	tripRepo    repositories.TripRepository
	accountRepo repositories.AccountRepository
	drafts      *DraftStore
	mailService IMailService

	// processingDelay models the payment-processing pause before a booking
	// resolves. Zero in tests.
	processingDelay time.Duration
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	tripRepo repositories.TripRepository,
	accountRepo repositories.AccountRepository,
	drafts *DraftStore,
	mailService IMailService,
	processingDelay time.Duration,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:     bookingRepo,
		tripRepo:        tripRepo,
		accountRepo:     accountRepo,
		drafts:          drafts,
		mailService:     mailService,
		processingDelay: processingDelay,
	}
}

func (b *BookingService) StartDraft(ctx context.Context, accountId string, tripId string) (*response_models.DraftResponse, error) {

	trip, err := b.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	draft := NewDraft(accountId, *trip)
	b.drafts.Put(draft)

	return buildDraftResponse(draft), nil
}

func (b *BookingService) GetDraft(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, err
	}
	return buildDraftResponse(draft), nil
}

func (b *BookingService) AddTraveler(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, err
	}

	if _, err := draft.AddTraveler(); err != nil {
		return nil, err
	}
	return buildDraftResponse(draft), nil
}

func (b *BookingService) RemoveTraveler(ctx context.Context, accountId string, draftId string, travelerId string) (*response_models.DraftResponse, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, err
	}

	if err := draft.RemoveTraveler(travelerId); err != nil {
		return nil, err
	}
	return buildDraftResponse(draft), nil
}

func (b *BookingService) UpdateTraveler(ctx context.Context, accountId string, draftId string, travelerId string, req request_models.UpdateTravelerRequest) (*response_models.DraftResponse, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, err
	}

	if err := draft.UpdateTraveler(travelerId, req.Field, req.Value); err != nil {
		return nil, err
	}
	return buildDraftResponse(draft), nil
}

func (b *BookingService) UpdateDetails(ctx context.Context, accountId string, draftId string, req request_models.UpdateDraftDetailsRequest) (*response_models.DraftResponse, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, err
	}

	if req.StartDate != "" {
		start, perr := time.Parse(time.RFC3339, req.StartDate)
		if perr != nil {
			return nil, utils.ErrInvalidTravelerField
		}
		draft.StartDate = start
	}
	if req.EndDate != "" {
		end, perr := time.Parse(time.RFC3339, req.EndDate)
		if perr != nil {
			return nil, utils.ErrInvalidTravelerField
		}
		draft.EndDate = end
	}
	if req.PaymentMethod != "" {
		draft.PaymentMethod = db_models.PaymentMethod(req.PaymentMethod)
	}
	if req.SpecialRequests != "" {
		draft.SpecialRequests = req.SpecialRequests
	}

	return buildDraftResponse(draft), nil
}

func (b *BookingService) NextStep(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, err
	}

	if err := draft.Next(); err != nil {
		return nil, err
	}
	return buildDraftResponse(draft), nil
}

// BackStep reports cancellation via its second return: backing out of step
// one discards the draft entirely.
func (b *BookingService) BackStep(ctx context.Context, accountId string, draftId string) (*response_models.DraftResponse, bool, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, false, err
	}

	if draft.Back() {
		b.drafts.Remove(draft.ID)
		return nil, true, nil
	}
	return buildDraftResponse(draft), false, nil
}

// Confirm finalizes the draft: snapshot, persist, drop the draft. When the
// write fails the draft stays at step three so the caller can retry.
func (b *BookingService) Confirm(ctx context.Context, accountId string, draftId string) (*response_models.BookingResponse, error) {
	draft, err := b.ownedDraft(accountId, draftId)
	if err != nil {
		return nil, err
	}

	if draft.Step != StepConfirmation {
		return nil, utils.ErrInvalidStep
	}

	if b.processingDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(b.processingDelay):
		}
	}

	accountUUID, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	tripSnap, err := json.Marshal(ToTripResponse(draft.Trip))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	travelerSnap, err := json.Marshal(draft.SnapshotTravelers())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	booking := &db_models.Booking{
		Reference:        newBookingReference(),
		AccountID:        accountUUID,
		TripID:           draft.Trip.ID,
		TripSnapshot:     datatypes.JSON(tripSnap),
		TravelerSnapshot: datatypes.JSON(travelerSnap),
		StartDate:        draft.StartDate.Unix(),
		EndDate:          draft.EndDate.Unix(),
		PaymentMethod:    draft.PaymentMethod,
		SpecialRequests:  draft.SpecialRequests,
		TotalPrice:       draft.Total(),
		BookedAt:         utils.NowUnixSeconds(),
		Status:           db_models.BookingStatusConfirmed,
		PaymentStatus:    db_models.PaymentStatusPaid,
	}

	if err := b.bookingRepo.Insert(ctx, booking); err != nil {
		log.Printf("Booking insert failed for draft %s: %v", draftId, err)
		return nil, utils.ErrPersistenceUnavailable
	}

	b.drafts.Remove(draft.ID)

	// Confirmation mail is best effort; the booking stands either way.
	if account, aerr := b.accountRepo.FindById(ctx, accountId); aerr == nil && account != nil {
		if merr := b.mailService.SendBookingConfirmation(account.Email, booking.Reference, draft.Trip.Title, utils.FormatPriceDA(booking.TotalPrice)); merr != nil {
			log.Printf("Failed to send confirmation mail for %s: %v", booking.Reference, merr)
		}
	}

	return buildBookingResponse(booking)
}

func (b *BookingService) ListBookings(ctx context.Context, accountId string) (*response_models.GroupedBookingsResponse, error) {

	bookings, err := b.bookingRepo.ListByAccount(ctx, accountId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.GroupedBookingsResponse{
		Upcoming:  []response_models.BookingResponse{},
		Completed: []response_models.BookingResponse{},
		Cancelled: []response_models.BookingResponse{},
	}

	now := time.Now().Unix()
	for i := range bookings {
		resp, berr := buildBookingResponse(&bookings[i])
		if berr != nil {
			return nil, berr
		}

		switch {
		case bookings[i].Status == db_models.BookingStatusCancelled:
			out.Cancelled = append(out.Cancelled, *resp)
		case bookings[i].Status == db_models.BookingStatusCompleted,
			bookings[i].EndDate > 0 && bookings[i].EndDate < now:
			out.Completed = append(out.Completed, *resp)
		default:
			out.Upcoming = append(out.Upcoming, *resp)
		}
	}
	return out, nil
}

func (b *BookingService) GetBooking(ctx context.Context, accountId string, bookingId string) (*response_models.BookingResponse, error) {
	booking, err := b.ownedBooking(ctx, accountId, bookingId)
	if err != nil {
		return nil, err
	}
	return buildBookingResponse(booking)
}

func (b *BookingService) CancelBooking(ctx context.Context, accountId string, bookingId string) (*response_models.BookingResponse, error) {
	booking, err := b.ownedBooking(ctx, accountId, bookingId)
	if err != nil {
		return nil, err
	}

	if booking.Status != db_models.BookingStatusConfirmed && booking.Status != db_models.BookingStatusPending {
		return nil, utils.ErrBookingNotCancellable
	}

	paymentStatus := booking.PaymentStatus
	if paymentStatus == db_models.PaymentStatusPaid {
		paymentStatus = db_models.PaymentStatusRefunded
	}

	if err := b.bookingRepo.UpdateStatus(ctx, bookingId, db_models.BookingStatusCancelled, paymentStatus); err != nil {
		return nil, utils.ErrDatabaseError
	}

	booking.Status = db_models.BookingStatusCancelled
	booking.PaymentStatus = paymentStatus
	return buildBookingResponse(booking)
}

func (b *BookingService) ownedDraft(accountId string, draftId string) (*Draft, error) {
	id, err := uuid.Parse(draftId)
	if err != nil {
		return nil, utils.ErrDraftNotFound
	}
	draft, ok := b.drafts.Get(id)
	if !ok {
		return nil, utils.ErrDraftNotFound
	}
	if draft.AccountID != accountId {
		return nil, utils.ErrDraftNotOwned
	}
	return draft, nil
}

func (b *BookingService) ownedBooking(ctx context.Context, accountId string, bookingId string) (*db_models.Booking, error) {
	booking, err := b.bookingRepo.GetById(ctx, bookingId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil || booking.AccountID.String() != accountId {
		return nil, utils.ErrBookingNotFound
	}
	return booking, nil
}

func newBookingReference() string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "BK" + frag[:8]
}

func buildDraftResponse(d *Draft) *response_models.DraftResponse {
	travelers := make([]response_models.TravelerResponse, 0, len(d.Travelers))
	for _, t := range d.Travelers {
		travelers = append(travelers, response_models.TravelerResponse{
			ID:             t.ID,
			FullName:       t.FullName,
			Age:            t.Age,
			PassportNumber: t.PassportNumber,
		})
	}

	total := d.Total()
	return &response_models.DraftResponse{
		ID:              d.ID.String(),
		Step:            d.Step,
		Trip:            ToTripResponse(d.Trip),
		StartDate:       utils.FormatRFC3339DZ(d.StartDate),
		EndDate:         utils.FormatRFC3339DZ(d.EndDate),
		Travelers:       travelers,
		PaymentMethod:   string(d.PaymentMethod),
		SpecialRequests: d.SpecialRequests,
		TotalPrice:      total,
		TotalDisplay:    utils.FormatPriceDA(total),
	}
}

func buildBookingResponse(b *db_models.Booking) (*response_models.BookingResponse, error) {
	var trip response_models.TripResponse
	if len(b.TripSnapshot) > 0 {
		if err := json.Unmarshal(b.TripSnapshot, &trip); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	var travelers []Traveler
	if len(b.TravelerSnapshot) > 0 {
		if err := json.Unmarshal(b.TravelerSnapshot, &travelers); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	travelerOut := make([]response_models.TravelerResponse, 0, len(travelers))
	for _, t := range travelers {
		travelerOut = append(travelerOut, response_models.TravelerResponse{
			ID:             t.ID,
			FullName:       t.FullName,
			Age:            t.Age,
			PassportNumber: t.PassportNumber,
		})
	}

	return &response_models.BookingResponse{
		ID:              b.ID.String(),
		Reference:       b.Reference,
		Trip:            trip,
		Travelers:       travelerOut,
		StartDate:       utils.FormatRFC3339DZ(utils.FromUnixSecondsDZ(b.StartDate)),
		EndDate:         utils.FormatRFC3339DZ(utils.FromUnixSecondsDZ(b.EndDate)),
		PaymentMethod:   string(b.PaymentMethod),
		SpecialRequests: b.SpecialRequests,
		TotalPrice:      b.TotalPrice,
		TotalDisplay:    utils.FormatPriceDA(b.TotalPrice),
		BookingDate:     utils.FormatBookingDate(utils.FromUnixSecondsDZ(b.BookedAt)),
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
	}, nil
}
