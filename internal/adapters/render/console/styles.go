package console

import (
	"github.com/bnema/graph-presence-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	card        lipgloss.Style
	cardTitle   lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	busy        lipgloss.Style
	success     lipgloss.Style
	destructive lipgloss.Style
	tones       map[domain.Tone]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		cardTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		busy:        lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		success:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		destructive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		tones: map[domain.Tone]lipgloss.Style{
			domain.ToneGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			domain.ToneRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			domain.ToneYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			domain.ToneGrey:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}

func (s styles) tone(t domain.Tone) lipgloss.Style {
	if style, ok := s.tones[t]; ok {
		return style
	}
	return s.tones[domain.ToneGrey]
}
