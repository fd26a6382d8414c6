// Package console renders a forecast for the terminal, used by the
// preview command so a query can be checked without connecting to the
// relay.
package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wttrbot/internal/domain"
)

func Render(f domain.Forecast) string {
	s := newStyles()
	lines := []string{
		s.title.Render(f.Location),
		currentLine(f, s),
		dayLine("Tomorrow", f.Tomorrow, s),
		dayLine("Day After", f.DayAfter, s),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func currentLine(f domain.Forecast, s styles) string {
	temp := s.tempStyle(f.Current.TempF).Render(fmt.Sprintf("%d°F / %d°C", f.Current.TempF, f.Current.TempC))
	return fmt.Sprintf("%s %s, %s, humidity %s%%, high %s low %s",
		s.label.Render("Now:"),
		temp,
		s.detail.Render(f.Current.Description),
		f.Current.Humidity,
		s.tempStyle(f.Today.HighF).Render(fmt.Sprintf("%d°F", f.Today.HighF)),
		s.tempStyle(f.Today.LowF).Render(fmt.Sprintf("%d°F", f.Today.LowF)))
}

func dayLine(label string, d domain.DaySummary, s styles) string {
	noon := s.tempStyle(d.Noon.TempF).Render(fmt.Sprintf("%d°F / %d°C", d.Noon.TempF, d.Noon.TempC))
	return fmt.Sprintf("%s noon %s, %s, humidity %s%%, high %s low %s",
		s.label.Render(label+":"),
		noon,
		s.detail.Render(d.Noon.Description),
		d.Noon.Humidity,
		s.tempStyle(d.HighF).Render(fmt.Sprintf("%d°F", d.HighF)),
		s.tempStyle(d.LowF).Render(fmt.Sprintf("%d°F", d.LowF)))
}
