package wttr

import (
	"strconv"
	"strings"

	"github.com/bnema/wttrbot/internal/domain"
)

// noonSlot indexes the 3-hourly forecast buckets; slot 4 is 12:00.
const noonSlot = 4

// The j1 payload carries every value as a string inside one-element
// wrapper arrays. Every access below tolerates absence: missing text
// degrades to "Unknown"/"N/A", unparseable numbers to 0.

type response struct {
	NearestArea      []area        `json:"nearest_area"`
	CurrentCondition []observation `json:"current_condition"`
	Weather          []day         `json:"weather"`
}

type area struct {
	AreaName []value `json:"areaName"`
}

type value struct {
	Value string `json:"value"`
}

type observation struct {
	TempF       string  `json:"temp_F"`
	TempC       string  `json:"temp_C"`
	Humidity    string  `json:"humidity"`
	WeatherDesc []value `json:"weatherDesc"`
	WeatherCode string  `json:"weatherCode"`
}

type day struct {
	MaxTempF string `json:"maxtempF"`
	MinTempF string `json:"mintempF"`
	Hourly   []hour `json:"hourly"`
}

type hour struct {
	TempF       string  `json:"tempF"`
	TempC       string  `json:"tempC"`
	Humidity    string  `json:"humidity"`
	WeatherDesc []value `json:"weatherDesc"`
	WeatherCode string  `json:"weatherCode"`
}

func (r response) toForecast(fallbackLabel string) domain.Forecast {
	forecast := domain.Forecast{
		Location: fallbackLabel,
		Current:  defaultConditions(),
		Tomorrow: domain.DaySummary{Noon: defaultConditions()},
		DayAfter: domain.DaySummary{Noon: defaultConditions()},
	}
	if len(r.NearestArea) > 0 {
		if name := textOr(r.NearestArea[0].AreaName, ""); name != "" {
			forecast.Location = name
		}
	}
	if len(r.CurrentCondition) > 0 {
		forecast.Current = r.CurrentCondition[0].toConditions()
	}
	forecast.Today = dayAt(r.Weather, 0).outlook()
	forecast.Tomorrow = dayAt(r.Weather, 1).toSummary()
	forecast.DayAfter = dayAt(r.Weather, 2).toSummary()
	return forecast
}

func (o observation) toConditions() domain.Conditions {
	return domain.Conditions{
		Description: textOr(o.WeatherDesc, "Unknown"),
		Code:        intOr(o.WeatherCode, 0),
		TempF:       intOr(o.TempF, 0),
		TempC:       intOr(o.TempC, 0),
		Humidity:    stringOr(o.Humidity, "N/A"),
	}
}

func (h hour) toConditions() domain.Conditions {
	return domain.Conditions{
		Description: textOr(h.WeatherDesc, "Unknown"),
		Code:        intOr(h.WeatherCode, 0),
		TempF:       intOr(h.TempF, 0),
		TempC:       intOr(h.TempC, 0),
		Humidity:    stringOr(h.Humidity, "N/A"),
	}
}

func (d day) outlook() domain.Outlook {
	return domain.Outlook{
		HighF: intOr(d.MaxTempF, 0),
		LowF:  intOr(d.MinTempF, 0),
	}
}

func (d day) toSummary() domain.DaySummary {
	summary := domain.DaySummary{
		Outlook: d.outlook(),
		Noon:    defaultConditions(),
	}
	if noonSlot < len(d.Hourly) {
		summary.Noon = d.Hourly[noonSlot].toConditions()
	}
	return summary
}

func dayAt(days []day, i int) day {
	if i < len(days) {
		return days[i]
	}
	return day{}
}

func defaultConditions() domain.Conditions {
	return domain.Conditions{Description: "Unknown", Humidity: "N/A"}
}

func textOr(values []value, fallback string) string {
	if len(values) == 0 || values[0].Value == "" {
		return fallback
	}
	return values[0].Value
}

func stringOr(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

func intOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}
