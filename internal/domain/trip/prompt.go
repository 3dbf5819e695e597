package trip

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/Rushabh16-9/travel-planner/internal/infra/poi/amadeus"
)

// SystemPrompt pins the model to bare JSON output.
const SystemPrompt = "You are a travel assistant. Return ONLY valid JSON. No markdown, no code fences."

// PromptParams is everything the prompt builder needs; all values are
// already normalized by the service.
type PromptParams struct {
	Destination string
	Days        int
	Origin      string
	FromDate    string
	ToDate      string
	Guests      int
	Currency    string
	Budget      int
	WeatherLine string
	POIs        []amadeus.PointOfInterest
	BudgetText  string
}

// BuildUserPrompt composes the generation instruction: aggregated context,
// trip parameters, and the strict output-shape template.
func BuildUserPrompt(p PromptParams) string {
	var context strings.Builder
	fmt.Fprintf(&context, "Destination: %s\n", p.Destination)
	if p.BudgetText != "" {
		fmt.Fprintf(&context, "Budget Constraint: %s\n", p.BudgetText)
	}
	if p.WeatherLine != "" {
		fmt.Fprintf(&context, "Current Weather: %s\n", p.WeatherLine)
	}
	if len(p.POIs) > 0 {
		names := make([]string, 0, len(p.POIs))
		for _, poi := range p.POIs {
			if poi.Name != "" {
				names = append(names, poi.Name)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(&context, "Real Local Attractions: %s\n", strings.Join(names, ", "))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a %d-day trip itinerary for %q.\n", p.Days, p.Destination)
	fmt.Fprintf(&b, "Context: %s\n", context.String())
	if p.Origin != "" {
		fmt.Fprintf(&b, "Travelling from: %s\n", p.Origin)
	}
	fmt.Fprintf(&b, "Guests: %d\n", p.Guests)
	fmt.Fprintf(&b, "Currency: %s\n", p.Currency)
	fmt.Fprintf(&b, "Budget: %d %s\n", p.Budget, p.Currency)
	if p.FromDate != "" {
		fmt.Fprintf(&b, "Travel dates: %s to %s\n", p.FromDate, p.ToDate)
	}

	origin := p.Origin
	if origin == "" {
		origin = "a major hub"
	}

	fmt.Fprintf(&b, `
Output ONLY this JSON (no extra text):
{
  "destination": %q,
  "duration": %d,
  "totalCost": %d,
  "currency": %q,
  "flightEstimate": {
    "economy": 650,
    "business": 1800,
    "currency": %q
  },
  "itinerary": [
    {
      "day": 1,
      "date": "Day 1",
      "activities": [
        {
          "time": "09:00 AM",
          "title": "Activity Name",
          "description": "Brief engaging description",
          "vibe": "Culture",
          "estimatedCost": 50,
          "importance": "High",
          "transportFromPrevious": null
        },
        {
          "time": "11:30 AM",
          "title": "Second Activity",
          "description": "Brief engaging description",
          "vibe": "Foodie",
          "estimatedCost": 30,
          "importance": "Medium",
          "transportFromPrevious": { "mode": "Metro", "cost": 3 }
        }
      ]
    }
  ]
}

Rules:
- Include %d days, 4-5 activities each
- Vibe options: Adventure, Foodie, Culture, Chill
- transportFromPrevious is null for the first activity of each day; for subsequent activities use realistic local transport (Walk/Metro/Bus/Taxi) with realistic cost in %s
- flightEstimate should reflect realistic round-trip prices from %s to %s
- Fit activities to the %d %s budget
- Descriptions concise but engaging (1-2 sentences)`,
		p.Destination, p.Days, p.Budget, p.Currency, p.Currency,
		p.Days, p.Currency, origin, p.Destination, p.Budget, p.Currency)

	return b.String()
}

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// CountTokens estimates the token footprint of a prompt using the
// cl100k_base encoding. Returns 0 when the encoding is unavailable
// (the count is diagnostic only).
func CountTokens(text string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return 0
	}
	return len(encoding.Encode(text, nil, nil))
}
