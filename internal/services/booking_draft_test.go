package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tassili/internal/models/db_models"
	"tassili/pkg/utils"
)

func catalogTrip(display string, priceMinor int64) db_models.Trip {
	return db_models.Trip{
		Title:        "Djanet Desert Magic",
		DisplayPrice: display,
		PriceMinor:   priceMinor,
		Category:     db_models.CategoryDesert,
		Rating:       4.8,
	}
}

func TestNewDraftStartsWithOneTraveler(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))

	assert.Equal(t, StepTravelerDetails, draft.Step)
	require.Len(t, draft.Travelers, 1)
	assert.Empty(t, draft.Travelers[0].FullName)
	assert.Equal(t, defaultAge, draft.Travelers[0].Age)
	assert.Equal(t, db_models.PaymentCash, draft.PaymentMethod)
}

func TestDraftTotalUsesCanonicalPrice(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	assert.Equal(t, int64(89000), draft.Total())
}

func TestDraftTotalParsesDisplayWhenNoCanonicalPrice(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("62,000 DA", 0))

	for i := 0; i < 2; i++ {
		_, err := draft.AddTraveler()
		require.NoError(t, err)
	}
	assert.Equal(t, int64(186000), draft.Total())
}

func TestDraftTotalFallsBackOnUnparsablePrice(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("Price on request", 0))
	assert.Equal(t, utils.FallbackBasePrice, draft.Total())
}

func TestAddTravelerRejectsAboveSix(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))

	for i := 0; i < 5; i++ {
		_, err := draft.AddTraveler()
		require.NoError(t, err)
	}
	require.Len(t, draft.Travelers, 6)

	_, err := draft.AddTraveler()
	assert.ErrorIs(t, err, utils.ErrRosterFull)
	assert.Len(t, draft.Travelers, 6)
	assert.Equal(t, int64(534000), draft.Total())
}

func TestRemoveTravelerRejectsBelowOne(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))

	err := draft.RemoveTraveler(draft.Travelers[0].ID)
	assert.ErrorIs(t, err, utils.ErrRosterMinimum)
	assert.Len(t, draft.Travelers, 1)
}

func TestRemoveTravelerUnknownId(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	_, err := draft.AddTraveler()
	require.NoError(t, err)

	err = draft.RemoveTraveler("no-such-traveler")
	assert.ErrorIs(t, err, utils.ErrTravelerNotFound)
	assert.Len(t, draft.Travelers, 2)
}

func TestUpdateTravelerFields(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	id := draft.Travelers[0].ID

	require.NoError(t, draft.UpdateTraveler(id, "full_name", "Amina Bensalem"))
	require.NoError(t, draft.UpdateTraveler(id, "age", "34"))
	require.NoError(t, draft.UpdateTraveler(id, "passport_number", "DZ1234567"))

	assert.Equal(t, "Amina Bensalem", draft.Travelers[0].FullName)
	assert.Equal(t, 34, draft.Travelers[0].Age)
	assert.Equal(t, "DZ1234567", draft.Travelers[0].PassportNumber)
}

func TestUpdateTravelerIsIdempotent(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	id := draft.Travelers[0].ID

	require.NoError(t, draft.UpdateTraveler(id, "full_name", "Amina Bensalem"))
	before := draft.Travelers[0]
	require.NoError(t, draft.UpdateTraveler(id, "full_name", "Amina Bensalem"))
	assert.Equal(t, before, draft.Travelers[0])
}

func TestUpdateTravelerRejectsBadInput(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	id := draft.Travelers[0].ID

	assert.ErrorIs(t, draft.UpdateTraveler(id, "shoe_size", "42"), utils.ErrInvalidTravelerField)
	assert.ErrorIs(t, draft.UpdateTraveler(id, "age", "abc"), utils.ErrInvalidTravelerField)
	assert.ErrorIs(t, draft.UpdateTraveler(id, "age", "-1"), utils.ErrInvalidTravelerField)
	assert.ErrorIs(t, draft.UpdateTraveler(id, "age", "121"), utils.ErrInvalidTravelerField)
	assert.ErrorIs(t, draft.UpdateTraveler("missing", "full_name", "X"), utils.ErrTravelerNotFound)
}

func TestNextRequiresNamedTravelers(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))

	err := draft.Next()
	assert.ErrorIs(t, err, utils.ErrTravelerNameEmpty)
	assert.Equal(t, StepTravelerDetails, draft.Step)

	require.NoError(t, draft.UpdateTraveler(draft.Travelers[0].ID, "full_name", "Amina Bensalem"))
	require.NoError(t, draft.Next())
	assert.Equal(t, StepPaymentMethod, draft.Step)
}

func TestNextStopsAtConfirmation(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	require.NoError(t, draft.UpdateTraveler(draft.Travelers[0].ID, "full_name", "Amina Bensalem"))

	require.NoError(t, draft.Next())
	require.NoError(t, draft.Next())
	assert.Equal(t, StepConfirmation, draft.Step)

	err := draft.Next()
	assert.ErrorIs(t, err, utils.ErrInvalidStep)
	assert.Equal(t, StepConfirmation, draft.Step)
}

func TestBackFromFirstStepCancels(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	assert.True(t, draft.Back())
	assert.Equal(t, StepTravelerDetails, draft.Step)
}

func TestBackWalksTheWizardDown(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	require.NoError(t, draft.UpdateTraveler(draft.Travelers[0].ID, "full_name", "Amina Bensalem"))
	require.NoError(t, draft.Next())
	require.NoError(t, draft.Next())

	assert.False(t, draft.Back())
	assert.Equal(t, StepPaymentMethod, draft.Step)
	assert.False(t, draft.Back())
	assert.Equal(t, StepTravelerDetails, draft.Step)
	assert.True(t, draft.Back())
}

func TestSnapshotTravelersIsACopy(t *testing.T) {
	draft := NewDraft("account-1", catalogTrip("89,000 DA", 89000))
	require.NoError(t, draft.UpdateTraveler(draft.Travelers[0].ID, "full_name", "Amina Bensalem"))

	snap := draft.SnapshotTravelers()
	require.NoError(t, draft.UpdateTraveler(draft.Travelers[0].ID, "full_name", "Someone Else"))

	assert.Equal(t, "Amina Bensalem", snap[0].FullName)
}
