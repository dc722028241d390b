// README: Trip planner turns a customer itinerary into an AI-assisted plan.
package tripplan

// PlanRequest carries the raw customer input for a trip-plan request.
type PlanRequest struct {
	Pickup      string
	Destination string
	Date        string // "2026-09-10" or empty
	Time        string // "14:00" or empty
	Passengers  int
	TripType    string
	Language    string // "en" or "fr"
}
