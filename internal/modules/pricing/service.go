// README: Pricing service computes quote breakdowns from the fixed rule set.
package pricing

import (
	"context"
	"errors"
	"math"
	"time"

	"rentbus/internal/types"
)

var (
	// ErrMissingField means a required field is absent; no breakdown is
	// produced and any previously displayed breakdown is left to the client.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidPassengers guards the per-person division.
	ErrInvalidPassengers = errors.New("invalid passenger count")
)

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// NewServiceWithClock pins "now" for deterministic quotes in tests.
func NewServiceWithClock(store *Store, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Quote computes a breakdown at the service clock's current instant and
// records it in the quote log when one is configured. Log failures never
// fail the quote.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*Breakdown, error) {
	b, err := ComputeAt(req, s.now())
	if err != nil {
		return nil, err
	}
	if s.store != nil {
		_ = s.store.LogQuote(ctx, req, b)
	}
	return b, nil
}

// ComputeAt is the pure pricing function: breakdown = f(request, now).
// Rules apply in fixed order and each percentage operates on the base
// price, not on the running total.
func ComputeAt(req QuoteRequest, now time.Time) (*Breakdown, error) {
	if req.Service == "" || req.Date.IsZero() {
		return nil, ErrMissingField
	}
	if req.Hour < 0 || req.Hour > 23 || req.Minute < 0 || req.Minute > 59 {
		return nil, ErrMissingField
	}
	if req.Passengers <= 0 || req.Passengers > maxPassengers {
		return nil, ErrInvalidPassengers
	}

	baseCents, known := basePrices[req.Service]
	if !known {
		baseCents = defaultBaseCents
	}
	base := types.EUR(baseCents)

	b := &Breakdown{
		Service:             req.Service,
		BasePrice:           base,
		PeakTimeSurcharge:   types.EUR(0),
		WeekendSurcharge:    types.EUR(0),
		DistanceFee:         types.EUR(0),
		ExtraPassengerFee:   types.EUR(0),
		LastMinuteSurcharge: types.EUR(0),
		Passengers:          req.Passengers,
		FallbackBase:        !known,
		ComputedAt:          now,
	}

	weekday := req.Date.Weekday()
	onWeekday := weekday >= time.Monday && weekday <= time.Friday

	// Peak hours are 7-9 and 17-19 on weekdays only.
	if onWeekday && ((req.Hour >= 7 && req.Hour < 9) || (req.Hour >= 17 && req.Hour < 19)) {
		b.PeakTimeSurcharge = base.Percent(peakPct)
	}
	if !onWeekday {
		b.WeekendSurcharge = base.Percent(weekendPct)
	}
	if fee, ok := distanceFees[req.Service]; ok {
		b.DistanceFee = types.EUR(fee)
	}
	if req.Passengers > includedPassengers {
		b.ExtraPassengerFee = types.EUR(int64(req.Passengers-includedPassengers) * extraPassengerFeeCents)
	}
	// Bookings under two whole days out, including past dates, pay the
	// last-minute surcharge.
	if wholeDaysUntil(now, req.Date) < 2 {
		b.LastMinuteSurcharge = base.Percent(lastMinutePct)
	}

	b.Total = b.BasePrice.
		Add(b.PeakTimeSurcharge).
		Add(b.WeekendSurcharge).
		Add(b.DistanceFee).
		Add(b.ExtraPassengerFee).
		Add(b.LastMinuteSurcharge)
	b.PerPerson = b.Total.DivideBy(int64(req.Passengers))

	return b, nil
}

// wholeDaysUntil floors the elapsed time from now to the travel date's
// midnight, so "tomorrow" is 0 days out until a full 24h separates them.
func wholeDaysUntil(now, date time.Time) int {
	return int(math.Floor(date.Sub(now).Hours() / 24))
}
