package openmeteo

// wmoLabels maps the WMO weather interpretation codes Open-Meteo emits to
// the condition labels shown to the model and to users.
var wmoLabels = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	95: "Thunderstorm",
}

// CodeLabel returns the label for a WMO code, or "Variable" for codes the
// table does not cover.
func CodeLabel(code int) string {
	if label, ok := wmoLabels[code]; ok {
		return label
	}
	return "Variable"
}
