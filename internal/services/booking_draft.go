package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"tassili/internal/models/db_models"
	"tassili/pkg/utils"
)

// Wizard steps. The funnel is strictly linear: traveler details, then
// payment method, then confirmation.
const (
	StepTravelerDetails = 1
	StepPaymentMethod   = 2
	StepConfirmation    = 3
)

const (
	minTravelers = 1
	maxTravelers = 6
	defaultAge   = 30
)

type Traveler struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Age            int    `json:"age"`
	PassportNumber string `json:"passport_number,omitempty"`
}

// Draft is one in-progress booking. It lives only in the draft store and is
// owned by a single session; nothing is persisted until Confirm succeeds.
type Draft struct {
	ID        uuid.UUID
	AccountID string
	Trip      db_models.Trip

	StartDate       time.Time
	EndDate         time.Time
	Travelers       []Traveler
	PaymentMethod   db_models.PaymentMethod
	SpecialRequests string

	Step int
}

// NewDraft opens the wizard at step one with the roster the screen starts
// with: exactly one unnamed traveler.
func NewDraft(accountID string, trip db_models.Trip) *Draft {
	start, end := utils.DefaultTravelWindow()
	return &Draft{
		ID:        uuid.New(),
		AccountID: accountID,
		Trip:      trip,
		StartDate: start,
		EndDate:   end,
		Travelers: []Traveler{{
			ID:  uuid.New().String(),
			Age: defaultAge,
		}},
		PaymentMethod: db_models.PaymentCash,
		Step:          StepTravelerDetails,
	}
}

// BasePrice prefers the canonical numeric price and only parses the display
// string for trips that never got one.
func (d *Draft) BasePrice() int64 {
	if d.Trip.PriceMinor > 0 {
		return d.Trip.PriceMinor
	}
	return utils.ParseDisplayPrice(d.Trip.DisplayPrice)
}

func (d *Draft) Total() int64 {
	return utils.ComputeTotal(d.BasePrice(), len(d.Travelers))
}

func (d *Draft) AddTraveler() (*Traveler, error) {
	if len(d.Travelers) >= maxTravelers {
		return nil, utils.ErrRosterFull
	}
	t := Traveler{
		ID:  uuid.New().String(),
		Age: defaultAge,
	}
	d.Travelers = append(d.Travelers, t)
	return &d.Travelers[len(d.Travelers)-1], nil
}

func (d *Draft) RemoveTraveler(id string) error {
	if len(d.Travelers) <= minTravelers {
		return utils.ErrRosterMinimum
	}
	for i, t := range d.Travelers {
		if t.ID == id {
			d.Travelers = append(d.Travelers[:i], d.Travelers[i+1:]...)
			return nil
		}
	}
	return utils.ErrTravelerNotFound
}

// UpdateTraveler replaces one field of the matching traveler. Equal arguments
// applied twice leave the roster in the same state as applying them once.
func (d *Draft) UpdateTraveler(id string, field string, value string) error {
	for i := range d.Travelers {
		if d.Travelers[i].ID != id {
			continue
		}
		switch field {
		case "full_name":
			d.Travelers[i].FullName = value
		case "age":
			age, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || age < 0 || age > 120 {
				return utils.ErrInvalidTravelerField
			}
			d.Travelers[i].Age = age
		case "passport_number":
			d.Travelers[i].PassportNumber = value
		default:
			return utils.ErrInvalidTravelerField
		}
		return nil
	}
	return utils.ErrTravelerNotFound
}

// Next advances the wizard. Leaving step one requires every traveler to be
// named; confirmation is the terminal action, not a further Next.
func (d *Draft) Next() error {
	if d.Step >= StepConfirmation {
		return utils.ErrInvalidStep
	}
	if d.Step == StepTravelerDetails {
		for _, t := range d.Travelers {
			if strings.TrimSpace(t.FullName) == "" {
				return utils.ErrTravelerNameEmpty
			}
		}
	}
	d.Step++
	return nil
}

// Back steps the wizard backwards. From step one it reports cancellation:
// the caller discards the draft entirely.
func (d *Draft) Back() (cancelled bool) {
	if d.Step <= StepTravelerDetails {
		return true
	}
	d.Step--
	return false
}

// SnapshotTravelers deep-copies the roster so a finalized booking is immune
// to later draft mutation.
func (d *Draft) SnapshotTravelers() []Traveler {
	out := make([]Traveler, len(d.Travelers))
	copy(out, d.Travelers)
	return out
}
