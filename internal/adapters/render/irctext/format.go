// Package irctext renders a forecast as a single mIRC-decorated line.
package irctext

import (
	"fmt"

	"github.com/bnema/wttrbot/internal/domain"
)

// mIRC control codes: colorCode is followed by a two-digit palette index,
// resetCode clears all styling.
const (
	colorCode = "\x03"
	resetCode = "\x0f"
)

// Render produces the three-day summary: current conditions plus today's
// range, then tomorrow and the day after at noon. The caller prefixes the
// requester and chunks the result; a color sequence may therefore end up
// split across two chunks, which the protocol tolerates.
func Render(f domain.Forecast) string {
	return fmt.Sprintf("%s: %s | Tomorrow: %s | Day After: %s",
		f.Location,
		currentSegment(f.Current, f.Today),
		daySegment(f.Tomorrow),
		daySegment(f.DayAfter))
}

func currentSegment(c domain.Conditions, o domain.Outlook) string {
	color := tempColor(c.TempF)
	return fmt.Sprintf(
		"Conditions: %s %s%s%s. Humidity: %s%%. Temp: %s%s%s%d°F %dC%s. High: %s%s%s%d°F%s. Low: %s%s%s%d°F%s",
		conditionEmoji(c.Code), colorCode, color, c.Description,
		c.Humidity,
		tempEmoji(c.TempF), colorCode, color, c.TempF, c.TempC, resetCode,
		tempEmoji(o.HighF), colorCode, tempColor(o.HighF), o.HighF, resetCode,
		tempEmoji(o.LowF), colorCode, tempColor(o.LowF), o.LowF, resetCode)
}

func daySegment(d domain.DaySummary) string {
	return fmt.Sprintf(
		"Conditions: %s%s. Humidity: %s%%. Noon: %s%s%s%d°F %dC%s. High: %s%s%s%d°F%s. Low: %s%s%s%d°F%s",
		conditionEmoji(d.Noon.Code), d.Noon.Description,
		d.Noon.Humidity,
		tempEmoji(d.Noon.TempF), colorCode, tempColor(d.Noon.TempF), d.Noon.TempF, d.Noon.TempC, resetCode,
		tempEmoji(d.HighF), colorCode, tempColor(d.HighF), d.HighF, resetCode,
		tempEmoji(d.LowF), colorCode, tempColor(d.LowF), d.LowF, resetCode)
}

// tempEmoji bands a Fahrenheit reading. The >=70 bound intentionally
// differs from tempColor's >70.
func tempEmoji(temp int) string {
	switch {
	case temp > 85:
		return "\U0001f975 " // hot face
	case temp >= 70:
		return "\U0001f60e " // sunglasses
	case temp < 32:
		return "\U0001f976 " // cold face
	default:
		return "\U0001f9e5 " // coat
	}
}

// tempColor picks the mIRC palette index for a Fahrenheit reading.
func tempColor(temp int) string {
	switch {
	case temp > 85:
		return "04" // red
	case temp > 70:
		return "07" // orange
	case temp < 32:
		return "12" // light blue
	default:
		return "03" // green
	}
}

// conditionEmoji maps WWO weather codes onto a glyph.
func conditionEmoji(code int) string {
	switch code {
	case 113:
		return "☀️" // sunny
	case 116:
		return "⛅️" // partly cloudy
	case 119, 122:
		return "☁️" // cloudy
	case 143, 248, 260:
		return "\U0001f32b️" // fog
	case 176, 179, 182, 185, 263, 266, 281, 284, 293, 296, 299, 302,
		305, 308, 311, 314, 317, 350, 353, 359, 362, 365, 374, 377:
		return "\U0001f327️" // showers through light sleet
	case 200, 386, 389:
		return "\U0001f329️\U0001f327️" // thundery showers
	case 392:
		return "\U0001f329️\U0001f328️" // thundery snow
	case 227, 320, 323, 326, 368:
		return "\U0001f328️" // snow
	case 230, 329, 332, 335, 338, 371, 395:
		return "\U0001f328️❄️" // heavy snow
	}
	return "✨" // unknown code
}
