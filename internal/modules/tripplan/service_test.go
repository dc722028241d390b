package tripplan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rentbus/internal/ai"
)

type stubAssistant struct {
	lastReq ai.TripRequest
	plan    *ai.TripPlan
	err     error
}

func (s *stubAssistant) SuggestTripPlan(_ context.Context, req ai.TripRequest) (*ai.TripPlan, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

type stubEstimator struct {
	dur  time.Duration
	dist string
	err  error
}

func (s *stubEstimator) GetTravelEstimate(_ context.Context, _, _, _ string) (time.Duration, string, error) {
	return s.dur, s.dist, s.err
}

func validRequest() PlanRequest {
	return PlanRequest{
		Pickup:      "Grand Place, Brussels",
		Destination: "Bruges",
		Date:        "2026-09-10",
		Time:        "09:00",
		Passengers:  25,
		TripType:    "City Tour",
		Language:    "en",
	}
}

func TestPlanValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlanRequest)
		wantErr error
	}{
		{"missing pickup", func(r *PlanRequest) { r.Pickup = "" }, ErrMissingField},
		{"missing destination", func(r *PlanRequest) { r.Destination = "" }, ErrMissingField},
		{"zero passengers", func(r *PlanRequest) { r.Passengers = 0 }, ErrInvalidPassengers},
		{"negative passengers", func(r *PlanRequest) { r.Passengers = -3 }, ErrInvalidPassengers},
	}

	svc := NewService(&stubAssistant{}, nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if _, err := svc.Plan(context.Background(), req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPlanInjectsRouteEstimate(t *testing.T) {
	assistant := &stubAssistant{plan: &ai.TripPlan{LocalInfo: "ok"}}
	estimator := &stubEstimator{dur: 72 * time.Minute, dist: "98 km"}
	svc := NewService(assistant, estimator, nil)

	plan, err := svc.Plan(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if plan.LocalInfo != "ok" {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if !strings.Contains(assistant.lastReq.RouteEstimate, "98 km") {
		t.Fatalf("expected route estimate in request, got %q", assistant.lastReq.RouteEstimate)
	}
}

func TestPlanProceedsWithoutRouteEstimate(t *testing.T) {
	assistant := &stubAssistant{plan: &ai.TripPlan{}}
	estimator := &stubEstimator{err: errors.New("quota exceeded")}
	svc := NewService(assistant, estimator, nil)

	if _, err := svc.Plan(context.Background(), validRequest()); err != nil {
		t.Fatalf("expected plan despite maps failure, got %v", err)
	}
	if assistant.lastReq.RouteEstimate != "" {
		t.Fatalf("expected empty estimate, got %q", assistant.lastReq.RouteEstimate)
	}
}

func TestPlanPropagatesAssistantError(t *testing.T) {
	assistant := &stubAssistant{err: errors.New("model overloaded")}
	svc := NewService(assistant, nil, nil)

	if _, err := svc.Plan(context.Background(), validRequest()); err == nil {
		t.Fatal("expected error from assistant")
	}
}
