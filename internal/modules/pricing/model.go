// README: Quote request and price breakdown definitions.
package pricing

import (
	"time"

	"rentbus/internal/types"
)

type ServiceKey string

const (
	ServiceAirportZaventem  ServiceKey = "airport_zaventem"
	ServiceAirportCharleroi ServiceKey = "airport_charleroi"
	ServiceCityTour         ServiceKey = "city_tour"
	ServiceCorporate        ServiceKey = "corporate"
	ServicePrivate          ServiceKey = "private"
)

// ServiceKeys lists the supported offerings in display order.
var ServiceKeys = []ServiceKey{
	ServiceAirportZaventem,
	ServiceAirportCharleroi,
	ServiceCityTour,
	ServiceCorporate,
	ServicePrivate,
}

// Base prices in euro cents. An unrecognized key is priced at
// defaultBaseCents; the live site has always quoted that way, so the
// fallback is kept for compatibility with quotes already issued.
var basePrices = map[ServiceKey]int64{
	ServiceAirportZaventem:  4500,
	ServiceAirportCharleroi: 6500,
	ServiceCityTour:         8000,
	ServiceCorporate:        12000,
	ServicePrivate:          10000,
}

const defaultBaseCents = 5000

// Flat per-service distance fees in euro cents. Not geodistance-derived.
var distanceFees = map[ServiceKey]int64{
	ServiceAirportCharleroi: 2500,
	ServiceCityTour:         1500,
}

const (
	peakPct       = 20
	weekendPct    = 15
	lastMinutePct = 25

	includedPassengers     = 4
	extraPassengerFeeCents = 500

	maxPassengers = 60
)

// QuoteRequest carries the form fields driving one calculation.
// Pickup and Dropoff are informational only and never affect the price.
type QuoteRequest struct {
	Service    ServiceKey
	Passengers int
	Date       time.Time // calendar date at local midnight
	Hour       int
	Minute     int
	Pickup     string
	Dropoff    string
}

// Breakdown is the itemized quote. All surcharge fields are additions to
// BasePrice, never reductions, and Total is their exact sum.
type Breakdown struct {
	Service             ServiceKey  `json:"service"`
	BasePrice           types.Money `json:"base_price"`
	PeakTimeSurcharge   types.Money `json:"peak_time_surcharge"`
	WeekendSurcharge    types.Money `json:"weekend_surcharge"`
	DistanceFee         types.Money `json:"distance_fee"`
	ExtraPassengerFee   types.Money `json:"extra_passenger_fee"`
	LastMinuteSurcharge types.Money `json:"last_minute_surcharge"`
	Total               types.Money `json:"total"`
	PerPerson           types.Money `json:"per_person"`
	Passengers          int         `json:"passengers"`
	FallbackBase        bool        `json:"fallback_base"`
	ComputedAt          time.Time   `json:"computed_at"`
}
