package domain

// Forecast is the typed view of one weather service response. All defaults
// are applied once at the adapter boundary: text fields fall back to
// "Unknown" or "N/A", numeric fields to 0, and Location to the query
// string itself.
type Forecast struct {
	Location string
	Current  Conditions
	Today    Outlook
	Tomorrow DaySummary
	DayAfter DaySummary
}

// Conditions describes the weather at a single point in time.
type Conditions struct {
	Description string
	Code        int
	TempF       int
	TempC       int
	Humidity    string
}

// Outlook carries a day's temperature range.
type Outlook struct {
	HighF int
	LowF  int
}

// DaySummary pairs a day's outlook with its noon conditions.
type DaySummary struct {
	Outlook
	Noon Conditions
}
