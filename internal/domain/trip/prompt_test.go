package trip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rushabh16-9/travel-planner/internal/infra/poi/amadeus"
)

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt(PromptParams{
		Destination: "Rome, Italy",
		Days:        4,
		Origin:      "Berlin",
		FromDate:    "2026-09-10",
		ToDate:      "2026-09-14",
		Guests:      2,
		Currency:    "EUR",
		Budget:      2500,
		WeatherLine: "24°C, Clear sky",
		POIs: []amadeus.PointOfInterest{
			{Name: "Colosseum"},
			{Name: ""},
			{Name: "Pantheon"},
		},
		BudgetText: "EUR 2500",
	})

	require.Contains(t, prompt, `Create a 4-day trip itinerary for "Rome, Italy".`)
	require.Contains(t, prompt, "Budget Constraint: EUR 2500")
	require.Contains(t, prompt, "Current Weather: 24°C, Clear sky")
	require.Contains(t, prompt, "Real Local Attractions: Colosseum, Pantheon")
	require.Contains(t, prompt, "Travelling from: Berlin")
	require.Contains(t, prompt, "Travel dates: 2026-09-10 to 2026-09-14")
	require.Contains(t, prompt, "Budget: 2500 EUR")
	require.Contains(t, prompt, `"duration": 4`)
	require.Contains(t, prompt, "Include 4 days, 4-5 activities each")
	require.Contains(t, prompt, "from Berlin to Rome, Italy")
}

func TestBuildUserPromptOmitsMissingContext(t *testing.T) {
	prompt := BuildUserPrompt(PromptParams{
		Destination: "Tbilisi",
		Days:        3,
		Guests:      2,
		Currency:    "USD",
		Budget:      540,
	})

	require.NotContains(t, prompt, "Budget Constraint:")
	require.NotContains(t, prompt, "Current Weather:")
	require.NotContains(t, prompt, "Real Local Attractions:")
	require.NotContains(t, prompt, "Travelling from:")
	require.NotContains(t, prompt, "Travel dates:")
	// Without an origin the flight rule gets a generic anchor.
	require.Contains(t, prompt, "from a major hub to Tbilisi")
}

func TestSystemPromptDemandsBareJSON(t *testing.T) {
	require.True(t, strings.Contains(SystemPrompt, "ONLY valid JSON"))
}

func TestCountTokensNeverNegative(t *testing.T) {
	// The encoding may be unavailable offline; the count is best-effort
	// and must degrade to zero rather than fail.
	require.GreaterOrEqual(t, CountTokens("plan a trip to Rome"), 0)
	require.GreaterOrEqual(t, CountTokens(""), 0)
}
