// README: Static bilingual catalogs for the fleet and service offerings.
package content

import (
	"rentbus/internal/modules/pricing"
	"rentbus/internal/types"
)

// Vehicle describes one bus category offered for rental.
type Vehicle struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Capacity string   `json:"capacity"`
	MinSeats int      `json:"min_seats"`
	MaxSeats int      `json:"max_seats"`
	Features []string `json:"features"`
}

// Fleet returns the vehicle catalog in the requested language.
func Fleet(lang types.Language) []Vehicle {
	if lang == types.LangFR {
		return []Vehicle{
			{Key: "minibus", Name: "Minibus de Luxe", Capacity: "9-16 places", MinSeats: 9, MaxSeats: 16,
				Features: []string{"Sièges en cuir", "Climatisation", "WiFi", "Ports USB"}},
			{Key: "midi_coach", Name: "Autocar Moyen", Capacity: "17-35 places", MinSeats: 17, MaxSeats: 35,
				Features: []string{"Sièges inclinables", "Climatisation", "Système audio", "Grande soute à bagages"}},
			{Key: "full_size_coach", Name: "Autocar de Luxe Grand Format", Capacity: "36-60 places", MinSeats: 36, MaxSeats: 60,
				Features: []string{"Toilettes à bord", "WiFi", "Écrans vidéo", "Sièges inclinables", "Climatisation"}},
			{Key: "vip_coach", Name: "Autocar VIP Exécutif", Capacity: "20-30 places", MinSeats: 20, MaxSeats: 30,
				Features: []string{"Tables de conférence", "Minibar", "Sièges en cuir", "WiFi premium", "Prises 220V"}},
		}
	}
	return []Vehicle{
		{Key: "minibus", Name: "Luxury Minibus", Capacity: "9-16 seats", MinSeats: 9, MaxSeats: 16,
			Features: []string{"Leather seats", "Air conditioning", "WiFi", "USB ports"}},
		{Key: "midi_coach", Name: "Midi Coach", Capacity: "17-35 seats", MinSeats: 17, MaxSeats: 35,
			Features: []string{"Reclining seats", "Air conditioning", "Audio system", "Large luggage hold"}},
		{Key: "full_size_coach", Name: "Luxury Full-Size Coach", Capacity: "36-60 seats", MinSeats: 36, MaxSeats: 60,
			Features: []string{"Onboard toilet", "WiFi", "Video screens", "Reclining seats", "Air conditioning"}},
		{Key: "vip_coach", Name: "VIP Executive Coach", Capacity: "20-30 seats", MinSeats: 20, MaxSeats: 30,
			Features: []string{"Conference tables", "Minibar", "Leather seats", "Premium WiFi", "220V outlets"}},
	}
}

// ServiceOffering pairs a pricing service key with its display label.
type ServiceOffering struct {
	Key   pricing.ServiceKey `json:"key"`
	Label string             `json:"label"`
}

var serviceLabelsEN = map[pricing.ServiceKey]string{
	pricing.ServiceAirportZaventem:  "Brussels Airport (Zaventem)",
	pricing.ServiceAirportCharleroi: "Charleroi Airport",
	pricing.ServiceCityTour:         "City Tour",
	pricing.ServiceCorporate:        "Corporate Event",
	pricing.ServicePrivate:          "Private Transfer",
}

var serviceLabelsFR = map[pricing.ServiceKey]string{
	pricing.ServiceAirportZaventem:  "Aéroport de Bruxelles (Zaventem)",
	pricing.ServiceAirportCharleroi: "Aéroport de Charleroi",
	pricing.ServiceCityTour:         "Visite Guidée",
	pricing.ServiceCorporate:        "Événement d'Entreprise",
	pricing.ServicePrivate:          "Transfert Privé",
}

// Services returns the bookable service list in the requested language,
// in the same stable order the pricing engine defines.
func Services(lang types.Language) []ServiceOffering {
	labels := serviceLabelsEN
	if lang == types.LangFR {
		labels = serviceLabelsFR
	}
	out := make([]ServiceOffering, 0, len(pricing.ServiceKeys))
	for _, key := range pricing.ServiceKeys {
		out = append(out, ServiceOffering{Key: key, Label: labels[key]})
	}
	return out
}

// Labels holds the localized captions for a price breakdown.
type Labels struct {
	BasePrice       string
	PeakTime        string
	Weekend         string
	Distance        string
	ExtraPassengers string
	LastMinute      string
	Total           string
	PerPerson       string
}

// BreakdownLabels returns the breakdown captions for the given language.
func BreakdownLabels(lang types.Language) Labels {
	if lang == types.LangFR {
		return Labels{
			BasePrice:       "Prix de Base",
			PeakTime:        "Supplément Heures de Pointe",
			Weekend:         "Supplément Week-end",
			Distance:        "Frais de Distance",
			ExtraPassengers: "Passagers Supplémentaires",
			LastMinute:      "Supplément Dernière Minute",
			Total:           "Prix Total",
			PerPerson:       "par personne",
		}
	}
	return Labels{
		BasePrice:       "Base Price",
		PeakTime:        "Peak Time Surcharge",
		Weekend:         "Weekend Surcharge",
		Distance:        "Distance Fee",
		ExtraPassengers: "Additional Passengers",
		LastMinute:      "Last Minute Surcharge",
		Total:           "Total Price",
		PerPerson:       "per person",
	}
}
