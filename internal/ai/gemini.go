package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON constrained to the trip-plan schema.
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = tripPlanSchema()
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SuggestTripPlan asks the model for a structured plan for the given trip.
func (p *GeminiProvider) SuggestTripPlan(ctx context.Context, req TripRequest) (*TripPlan, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(buildTripPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Schema mode should already return bare JSON; strip markdown fences anyway.
	cleanJSON := cleanJSONString(responseText.String())

	var plan TripPlan
	if err := json.Unmarshal([]byte(cleanJSON), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &plan, nil
}

// buildTripPrompt constructs the instructions for the AI.
func buildTripPrompt(req TripRequest) string {
	date := req.Date
	if date == "" {
		date = "Not specified"
	}
	tm := req.Time
	if tm == "" {
		tm = "Not specified"
	}
	tripType := req.TripType
	if tripType == "" {
		tripType = "General transport"
	}
	language := "English"
	if req.Language == "fr" {
		language = "French"
	}

	var routeHint string
	if req.RouteEstimate != "" {
		routeHint = fmt.Sprintf("\nMeasured driving estimate for this trip: %s. Base your duration and distance figures on it.\n", req.RouteEstimate)
	}

	return fmt.Sprintf(`You are an expert trip planning assistant for a Brussels shuttle and bus rental service.

User Trip Details:
- Pickup: %s
- Destination: %s
- Date: %s
- Time: %s
- Passengers: %d
- Trip Type: %s
%s
Please provide comprehensive trip planning recommendations including:
1. Optimal route with key waypoints and traffic considerations
2. Recommended vehicle type based on passenger count and trip purpose (options: Luxury Minibus 9-16 seats, Midi Coach 17-35 seats, Luxury Coach 36-60 seats, VIP Executive Coach 20-30 seats)
3. Suggested schedule with departure time, stops, and arrival time
4. Estimated duration and distance
5. Local travel tips and information about the destination
6. Best time to travel considering traffic patterns in Brussels

Respond in %s.`,
		req.Pickup, req.Destination, date, tm, req.Passengers, tripType, routeHint, language)
}

// tripPlanSchema mirrors the TripPlan JSON shape for Gemini's schema mode.
func tripPlanSchema() *genai.Schema {
	stringArray := func() *genai.Schema {
		return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"route": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"waypoints":     stringArray(),
					"description":   {Type: genai.TypeString},
					"traffic_notes": {Type: genai.TypeString},
				},
			},
			"vehicle_recommendation": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"vehicle_type": {Type: genai.TypeString},
					"reason":       {Type: genai.TypeString},
					"features":     stringArray(),
				},
			},
			"schedule": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"departure": {Type: genai.TypeString},
					"stops":     stringArray(),
					"arrival":   {Type: genai.TypeString},
				},
			},
			"estimates": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"duration": {Type: genai.TypeString},
					"distance": {Type: genai.TypeString},
				},
			},
			"travel_tips": stringArray(),
			"local_info":  {Type: genai.TypeString},
		},
	}
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
