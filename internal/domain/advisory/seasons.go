package advisory

import (
	"fmt"
	"strings"
	"time"
)

// Destination classes for the static seasonal table.
var (
	monsoonDestinations = []string{
		"bali", "thailand", "bangkok", "phuket", "chiang mai", "vietnam",
		"hanoi", "ho chi minh", "mumbai", "goa", "india", "kerala",
		"sri lanka", "maldives", "philippines", "manila", "cambodia", "myanmar",
	}
	hurricaneDestinations = []string{
		"cancun", "caribbean", "bahamas", "mexico", "cuba", "jamaica",
		"barbados", "florida", "miami", "new orleans",
	}
	hotDesertDestinations = []string{
		"dubai", "abu dhabi", "doha", "qatar", "riyadh", "saudi", "oman",
		"muscat", "kuwait", "bahrain", "egypt", "cairo", "marrakech", "morocco",
	}
	coldDestinations = []string{
		"iceland", "norway", "sweden", "finland", "alaska", "canada",
		"montreal", "toronto", "moscow", "russia", "lapland",
	}
)

func monthIn(month time.Month, set ...time.Month) bool {
	for _, m := range set {
		if m == month {
			return true
		}
	}
	return false
}

func matchesAny(dest string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(dest, c) {
			return true
		}
	}
	return false
}

// staticAdvisory derives a verdict from month and destination-class
// heuristics alone; it needs no network and never fails.
func staticAdvisory(destination string, from time.Time) Advisory {
	dest := strings.ToLower(destination)
	month := from.Month()
	monthName := from.Month().String()

	isMonsoon := matchesAny(dest, monsoonDestinations)
	isHurricane := matchesAny(dest, hurricaneDestinations)
	isHotDesert := matchesAny(dest, hotDesertDestinations)
	isCold := matchesAny(dest, coldDestinations)

	switch {
	case isMonsoon && monthIn(month, time.June, time.July, time.August, time.September):
		return Advisory{
			Verdict:  VerdictWarning,
			Headline: "Monsoon season — expect heavy rain",
			Message:  fmt.Sprintf("%s brings heavy afternoon showers and high humidity to %s. Indoor activities and cultural sites are still great, but outdoor plans may be disrupted.", monthName, destination),
			Temp:     "30°C / 86°F",
			Season:   "Monsoon Season",
		}
	case isMonsoon && monthIn(month, time.November, time.December, time.January, time.February, time.March, time.April):
		return Advisory{
			Verdict:  VerdictGood,
			Headline: "Dry season — ideal conditions",
			Message:  fmt.Sprintf("%s is one of the best months to visit %s. Expect clear skies, comfortable temperatures, and vibrant local life.", monthName, destination),
			Temp:     "28°C / 82°F",
			Season:   "Dry Season",
		}
	case isHurricane && monthIn(month, time.August, time.September, time.October):
		return Advisory{
			Verdict:  VerdictWarning,
			Headline: "Hurricane season — monitor forecasts",
			Message:  fmt.Sprintf("%s falls within hurricane season for %s. Weather can be unpredictable — monitor local forecasts and consider travel insurance.", monthName, destination),
			Temp:     "29°C / 84°F",
			Season:   "Hurricane Season",
		}
	case isHotDesert && monthIn(month, time.June, time.July, time.August):
		return Advisory{
			Verdict:  VerdictWarning,
			Headline: "Extreme heat — plan indoor activities",
			Message:  fmt.Sprintf("Temperatures in %s can exceed 42°C (108°F) in %s. Outdoor sightseeing is best done early morning or evening. Many indoor attractions are excellent.", destination, monthName),
			Temp:     "42°C / 108°F",
			Season:   "Peak Summer",
		}
	case isHotDesert && monthIn(month, time.November, time.December, time.January, time.February, time.March):
		return Advisory{
			Verdict:  VerdictGood,
			Headline: "Perfect weather for sightseeing",
			Message:  fmt.Sprintf("%s is the best time to visit %s — warm, sunny days with cool evenings. Ideal for outdoor attractions and exploring the city.", monthName, destination),
			Temp:     "25°C / 77°F",
			Season:   "Cool Season",
		}
	case isCold && monthIn(month, time.December, time.January, time.February):
		return Advisory{
			Verdict:  VerdictWarning,
			Headline: "Cold & dark winter months",
			Message:  fmt.Sprintf("%s in %s brings sub-zero temperatures and limited daylight. Pack heavy layers — but it's magical for Northern Lights and snow activities!", destination, monthName),
			Temp:     "-5°C / 23°F",
			Season:   "Winter",
		}
	case monthIn(month, time.May, time.June, time.July, time.August, time.September):
		return Advisory{
			Verdict:  VerdictGood,
			Headline: "Great time to visit",
			Message:  fmt.Sprintf("%s offers pleasant weather and long days in %s. Popular with tourists — book accommodation and popular attractions in advance.", monthName, destination),
			Temp:     "24°C / 75°F",
			Season:   "Summer",
		}
	case monthIn(month, time.March, time.April, time.October, time.November):
		return Advisory{
			Verdict:  VerdictGood,
			Headline: "Shoulder season — great value",
			Message:  fmt.Sprintf("%s is a smart time to visit %s — fewer crowds, lower prices, and comfortable temperatures. A solid choice for budget-conscious travellers.", monthName, destination),
			Temp:     "20°C / 68°F",
			Season:   "Shoulder Season",
		}
	default:
		return Advisory{
			Verdict:  VerdictGood,
			Headline: "Mild winter — pleasant to explore",
			Message:  fmt.Sprintf("%s brings cooler, comfortable temperatures to %s. A quieter time with fewer tourists and good value on accommodation.", monthName, destination),
			Temp:     "18°C / 64°F",
			Season:   "Winter",
		}
	}
}
