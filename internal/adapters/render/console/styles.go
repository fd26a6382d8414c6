package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	detail lipgloss.Style
	hot    lipgloss.Style
	warm   lipgloss.Style
	mild   lipgloss.Style
	cold   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		hot:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		warm:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		mild:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		cold:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	}
}

func (s styles) tempStyle(temp int) lipgloss.Style {
	switch {
	case temp > 85:
		return s.hot
	case temp > 70:
		return s.warm
	case temp < 32:
		return s.cold
	}
	return s.mild
}
