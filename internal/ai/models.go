package ai

// TripRequest is the prepared input for a trip-plan generation call.
// All fields are display-ready strings except Passengers.
type TripRequest struct {
	Pickup      string
	Destination string
	Date        string // "2026-09-10" or empty
	Time        string // "14:00" or empty
	Passengers  int
	TripType    string
	Language    string // "en" or "fr"

	// RouteEstimate is an optional maps-derived driving estimate injected
	// into the prompt so the model grounds its numbers on real data.
	RouteEstimate string
}

// TripPlan captures the structured output from the AI model. The JSON
// shape matches the schema sent with the request.
type TripPlan struct {
	Route                 Route                 `json:"route"`
	VehicleRecommendation VehicleRecommendation `json:"vehicle_recommendation"`
	Schedule              Schedule              `json:"schedule"`
	Estimates             Estimates             `json:"estimates"`
	TravelTips            []string              `json:"travel_tips"`
	LocalInfo             string                `json:"local_info"`
}

type Route struct {
	Waypoints    []string `json:"waypoints"`
	Description  string   `json:"description"`
	TrafficNotes string   `json:"traffic_notes"`
}

type VehicleRecommendation struct {
	VehicleType string   `json:"vehicle_type"`
	Reason      string   `json:"reason"`
	Features    []string `json:"features"`
}

type Schedule struct {
	Departure string   `json:"departure"`
	Stops     []string `json:"stops"`
	Arrival   string   `json:"arrival"`
}

type Estimates struct {
	Duration string `json:"duration"`
	Distance string `json:"distance"`
}
