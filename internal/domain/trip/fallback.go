package trip

import (
	"fmt"
	"math"
	"strings"
)

// activityTemplate is one entry of the static activity pool. Costs are in
// USD and converted at generation time.
type activityTemplate struct {
	time        string
	title       string
	description string
	costUSD     float64
}

// The pool holds ten templates; days draw four each with
// (dayIdx*4 + actIdx) mod 10 indexing, so later days reuse earlier
// templates once the pool is exhausted.
var activityTemplates = [...]activityTemplate{
	{"09:00 AM", "Morning City Tour of %s", "Start your adventure with a guided walk through the historic heart of %s, taking in iconic landmarks and local culture.", 25},
	{"11:30 AM", "Local Market Exploration", "Wander through a bustling local market in %s, sample street food, and pick up unique souvenirs.", 15},
	{"01:00 PM", "Lunch at a Top-Rated Restaurant", "Enjoy a leisurely lunch at one of %s's most celebrated eateries, savoring regional specialties.", 35},
	{"03:00 PM", "Museum & Cultural Heritage Visit", "Explore a world-class museum showcasing the art, history, and heritage of %s.", 20},
	{"05:30 PM", "Sunset Viewpoint", "Catch breathtaking golden-hour views from the most popular scenic spot in %s.", 0},
	{"08:00 PM", "Dinner & Local Entertainment", "Dine at a lively restaurant and experience the vibrant nightlife and entertainment of %s.", 50},
	{"10:00 AM", "Day Trip to Nearby Attraction", "Venture outside the city to discover a stunning natural or historical landmark near %s.", 40},
	{"02:00 PM", "Spa & Wellness Experience", "Recharge with a traditional local wellness treatment, a perfect mid-trip indulgence.", 60},
	{"10:30 AM", "Cooking Class", "Learn to prepare authentic local dishes in a hands-on cooking class with a professional chef from %s.", 55},
	{"04:00 PM", "Neighbourhood Walking Tour", "Explore a charming local neighbourhood, discovering hidden cafes, street art, and authentic daily life.", 10},
}

// transportModes are cycled for every activity after a day's first.
// Costs are USD and converted at generation time.
var transportModes = [...]Transport{
	{Mode: "Metro", Cost: 3},
	{Mode: "Bus", Cost: 2},
	{Mode: "Walk", Cost: 0},
	{Mode: "Taxi", Cost: 12},
}

// Destinations matching these substrings get the long-haul fare baseline.
var longHaulHubs = []string{
	"paris", "london", "new york", "tokyo", "dubai", "singapore", "sydney",
	"maldives", "europe", "usa",
}

const (
	longHaulEconomyUSD  = 850
	shortHaulEconomyUSD = 500
	businessFareMultiple = 2.8
	activitiesPerDay     = 4
)

// BuildStaticItinerary produces a schema-valid itinerary without any
// external dependency. It is pure computation over the template tables and
// never fails; callers use it when every provider in the chain has failed.
func BuildStaticItinerary(destination string, days, budget int, currency, origin string, guests int, fxRate float64) Itinerary {
	fx := func(usd float64) float64 {
		return math.Round(usd * fxRate)
	}

	out := make([]Day, 0, days)
	for dayIdx := 0; dayIdx < days; dayIdx++ {
		activities := make([]Activity, 0, activitiesPerDay)
		for actIdx := 0; actIdx < activitiesPerDay; actIdx++ {
			tpl := activityTemplates[(dayIdx*activitiesPerDay+actIdx)%len(activityTemplates)]

			var transport *Transport
			if actIdx > 0 {
				mode := transportModes[actIdx%len(transportModes)]
				transport = &Transport{Mode: mode.Mode, Cost: fx(mode.Cost)}
			}

			activities = append(activities, Activity{
				Time:                  tpl.time,
				Title:                 interpolate(tpl.title, destination),
				Description:           interpolate(tpl.description, destination),
				Vibe:                  vibes[actIdx%len(vibes)],
				EstimatedCost:         fx(tpl.costUSD),
				Importance:            importanceByPosition(actIdx),
				TransportFromPrevious: transport,
			})
		}
		out = append(out, Day{
			Day:        dayIdx + 1,
			Date:       fmt.Sprintf("Day %d", dayIdx+1),
			Activities: activities,
		})
	}

	economyUSD := float64(shortHaulEconomyUSD)
	if isLongHaul(destination) {
		economyUSD = longHaulEconomyUSD
	}

	return Itinerary{
		Destination: destination,
		Duration:    days,
		TotalCost:   float64(budget),
		Currency:    currency,
		FlightEstimate: &FlightEstimate{
			Economy:  fx(economyUSD),
			Business: fx(math.Round(economyUSD * businessFareMultiple)),
			Currency: currency,
		},
		Days:       out,
		IsFallback: true,
	}
}

func isLongHaul(destination string) bool {
	dest := strings.ToLower(destination)
	for _, hub := range longHaulHubs {
		if strings.Contains(dest, hub) {
			return true
		}
	}
	return false
}

func importanceByPosition(idx int) string {
	switch idx {
	case 0:
		return "High"
	case 1:
		return "Medium"
	default:
		return "Low"
	}
}

func interpolate(tpl, destination string) string {
	if strings.Contains(tpl, "%s") {
		return fmt.Sprintf(tpl, destination)
	}
	return tpl
}
