package ai

import (
	"strings"
	"testing"
)

func TestBuildTripPrompt(t *testing.T) {
	prompt := buildTripPrompt(TripRequest{
		Pickup:        "Brussels Central Station",
		Destination:   "Ghent",
		Date:          "2026-09-20",
		Time:          "08:30",
		Passengers:    40,
		TripType:      "Corporate Event",
		Language:      "fr",
		RouteEstimate: "1h2m driving time, 56 km",
	})

	for _, want := range []string{
		"Brussels Central Station",
		"Ghent",
		"Passengers: 40",
		"Corporate Event",
		"56 km",
		"Respond in French.",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildTripPromptDefaults(t *testing.T) {
	prompt := buildTripPrompt(TripRequest{
		Pickup:      "Brussels",
		Destination: "Antwerp",
		Passengers:  12,
	})
	if !strings.Contains(prompt, "Date: Not specified") {
		t.Error("missing date placeholder")
	}
	if !strings.Contains(prompt, "Trip Type: General transport") {
		t.Error("missing trip type default")
	}
	if !strings.Contains(prompt, "Respond in English.") {
		t.Error("expected English default")
	}
	if strings.Contains(prompt, "Measured driving estimate") {
		t.Error("estimate line should be absent when not provided")
	}
}

func TestCleanJSONString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tt := range tests {
		if got := cleanJSONString(tt.in); got != tt.want {
			t.Errorf("cleanJSONString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
