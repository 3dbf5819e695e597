package advisory

// Request identifies the trip window to advise on.
type Request struct {
	Destination string `json:"destination"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
}

// Advisory is the seasonal verdict for a destination and travel window.
type Advisory struct {
	Verdict  string `json:"verdict"`
	Headline string `json:"headline,omitempty"`
	Message  string `json:"message"`
	Temp     string `json:"temp,omitempty"`
	Season   string `json:"season,omitempty"`
}

// Verdict values.
const (
	VerdictGood    = "good"
	VerdictWarning = "warning"
	VerdictPoor    = "poor"
	VerdictNeutral = "neutral"
)
