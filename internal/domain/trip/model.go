package trip

// Request carries the user's trip parameters. Field names match the
// frontend payload; zero values are normalized before use.
type Request struct {
	Destination    string `json:"destination"`
	Days           int    `json:"days"`
	Budget         string `json:"budget"`
	Origin         string `json:"origin"`
	FromDate       string `json:"fromDate"`
	ToDate         string `json:"toDate"`
	Guests         int    `json:"guests"`
	Currency       string `json:"currency"`
	AdjustedBudget int    `json:"adjustedBudget"`
}

// Itinerary is the sole output artifact of the planner.
type Itinerary struct {
	Destination    string          `json:"destination"`
	Duration       int             `json:"duration"`
	TotalCost      float64         `json:"totalCost"`
	Currency       string          `json:"currency"`
	FlightEstimate *FlightEstimate `json:"flightEstimate,omitempty"`
	Days           []Day           `json:"itinerary"`
	Image          string          `json:"image,omitempty"`
	Coordinates    *Coordinates    `json:"coordinates,omitempty"`
	IsFallback     bool            `json:"_isFallback,omitempty"`
}

// Valid reports whether a parsed itinerary is structurally usable.
func (it Itinerary) Valid() bool {
	return it.Duration > 0 && len(it.Days) > 0
}

// FlightEstimate holds round-trip fare guesses in the resolved currency.
type FlightEstimate struct {
	Economy  float64 `json:"economy"`
	Business float64 `json:"business"`
	Currency string  `json:"currency"`
}

// Day is one itinerary day with its ordered activities.
type Day struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is a single scheduled item within a day.
type Activity struct {
	Time                  string     `json:"time"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Vibe                  string     `json:"vibe"`
	EstimatedCost         float64    `json:"estimatedCost"`
	Importance            string     `json:"importance"`
	TransportFromPrevious *Transport `json:"transportFromPrevious"`
}

// Transport describes how to reach an activity from the previous one.
type Transport struct {
	Mode string  `json:"mode"`
	Cost float64 `json:"cost"`
}

// Coordinates are injected into the response when geocoding succeeded.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid vibe values the model is instructed to use; the deterministic
// generator cycles through them in this order.
var vibes = [...]string{"Culture", "Foodie", "Adventure", "Chill"}
