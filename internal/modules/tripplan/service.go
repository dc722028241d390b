package tripplan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rentbus/internal/ai"
)

var (
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidPassengers = errors.New("invalid passenger count")
)

// RouteEstimator provides real driving estimates to ground the AI output.
type RouteEstimator interface {
	GetTravelEstimate(ctx context.Context, origin, destination, language string) (time.Duration, string, error)
}

type Service struct {
	assistant ai.Provider
	routes    RouteEstimator
	log       *zap.Logger
}

// NewService wires the trip planner. routes may be nil when no maps key is
// configured; the plan then relies on the model's own estimates.
func NewService(assistant ai.Provider, routes RouteEstimator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{assistant: assistant, routes: routes, log: log}
}

// Plan validates the request, enriches it with a driving estimate when
// available, and asks the assistant for a structured plan.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*ai.TripPlan, error) {
	if req.Pickup == "" || req.Destination == "" {
		return nil, ErrMissingField
	}
	if req.Passengers <= 0 {
		return nil, ErrInvalidPassengers
	}

	aiReq := ai.TripRequest{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Date:        req.Date,
		Time:        req.Time,
		Passengers:  req.Passengers,
		TripType:    req.TripType,
		Language:    req.Language,
	}

	if s.routes != nil {
		dur, dist, err := s.routes.GetTravelEstimate(ctx, req.Pickup, req.Destination, req.Language)
		if err != nil {
			// The plan is still useful without a measured estimate.
			s.log.Warn("route estimate unavailable",
				zap.String("pickup", req.Pickup),
				zap.String("destination", req.Destination),
				zap.Error(err))
		} else {
			aiReq.RouteEstimate = fmt.Sprintf("%s driving time, %s", dur.Round(time.Minute), dist)
		}
	}

	plan, err := s.assistant.SuggestTripPlan(ctx, aiReq)
	if err != nil {
		return nil, fmt.Errorf("trip plan generation: %w", err)
	}
	return plan, nil
}
