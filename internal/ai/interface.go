package ai

import (
	"context"
)

// Provider defines the contract for trip-plan generation.
// This interface allows for swapping AI vendors (Gemini, OpenAI, etc.)
// without touching the trip-planning service.
type Provider interface {
	// SuggestTripPlan turns a prepared trip request into a structured plan.
	SuggestTripPlan(ctx context.Context, req TripRequest) (*TripPlan, error)
}
